package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/service"
)

// SettlementHandler handles the payment lifecycle actions on the
// back-office surface: settling a payment and issuing its voucher.
type SettlementHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewSettlementHandler creates a new SettlementHandler instance
func NewSettlementHandler(svc service.Service, log *logrus.Logger) *SettlementHandler {
	return &SettlementHandler{
		service: svc,
		log:     log,
	}
}

// paymentID resolves the target payment from the URL. The actions are
// mounted on the generic entity path, so anything but a payment is an
// unknown entity.
func (h *SettlementHandler) paymentID(c *gin.Context) (uint, bool) {
	if c.Param("entity") != "payment" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown entity",
		})
		return 0, false
	}
	return parseID(c)
}

// SettlePayment marks a payment as paid and stamps the settlement time
func (h *SettlementHandler) SettlePayment(c *gin.Context) {
	id, ok := h.paymentID(c)
	if !ok {
		return
	}

	payment, err := h.service.SettlePayment(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// IssueVoucher issues the travel voucher for a settled payment
func (h *SettlementHandler) IssueVoucher(c *gin.Context) {
	id, ok := h.paymentID(c)
	if !ok {
		return
	}

	var in struct {
		TransferIncluded bool   `json:"transfer_included"`
		Transport        string `json:"transport"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid voucher format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid voucher format",
		})
		return
	}

	voucher, err := h.service.IssueVoucher(c, id, in.TransferIncluded, models.TransportType(in.Transport))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, voucher)
}
