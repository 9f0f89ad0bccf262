package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/serializers"
	"example.com/travelagency/internal/service"
)

// ClientHandler handles client-related requests
type ClientHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewClientHandler creates a new ClientHandler instance
func NewClientHandler(svc service.Service, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{
		service: svc,
		log:     log,
	}
}

// ListClients handles listing all clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c)
	if err != nil {
		h.log.WithError(err).Error("Failed to list clients")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient handles client retrieval
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, err := h.service.GetClient(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// CreateClient handles client creation
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var in serializers.ClientSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid client format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client format",
		})
		return
	}

	client, err := h.service.CreateClient(c, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ReplaceClient handles full client updates
func (h *ClientHandler) ReplaceClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in serializers.ClientSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid client format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client format",
		})
		return
	}

	client, err := h.service.ReplaceClient(c, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient handles partial client updates
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in serializers.ClientSerializer
	if err := c.ShouldBindJSON(&in); err != nil {
		h.log.WithError(err).Warn("Invalid client format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client format",
		})
		return
	}

	client, err := h.service.UpdateClient(c, id, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient handles client deletion
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClient(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts a numeric record ID from the URL
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID",
		})
		return 0, false
	}
	return uint(id), true
}
