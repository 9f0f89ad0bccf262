package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/serializers"
	"example.com/travelagency/internal/service"
)

// PassportHandler handles passport-related requests
type PassportHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewPassportHandler creates a new PassportHandler instance
func NewPassportHandler(svc service.Service, log *logrus.Logger) *PassportHandler {
	return &PassportHandler{
		service: svc,
		log:     log,
	}
}

// ListPassports handles listing all passports
func (h *PassportHandler) ListPassports(c *gin.Context) {
	passports, err := h.service.ListPassports(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to list passports")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passports)
}

// GetPassport handles passport retrieval
func (h *PassportHandler) GetPassport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	passport, err := h.service.GetPassport(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passport)
}

// CreatePassport handles passport creation
func (h *PassportHandler) CreatePassport(c *gin.Context) {
	var in serializers.PassportSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid passport format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid passport format",
		})
		return
	}

	passport, err := h.service.CreatePassport(c, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, passport)
}

// ReplacePassport handles full passport updates
func (h *PassportHandler) ReplacePassport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in serializers.PassportSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid passport format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid passport format",
		})
		return
	}

	passport, err := h.service.ReplacePassport(c, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passport)
}

// UpdatePassport handles partial passport updates
func (h *PassportHandler) UpdatePassport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in serializers.PassportSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid passport format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid passport format",
		})
		return
	}

	passport, err := h.service.UpdatePassport(c, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, passport)
}

// DeletePassport handles passport deletion. Clients holding the
// passport are removed along with it.
func (h *PassportHandler) DeletePassport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePassport(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
