package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/admin"
)

// AdminHandler dispatches back-office requests to the resource
// registered under the entity name in the URL.
type AdminHandler struct {
	registry *admin.Registry
	log      *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(registry *admin.Registry, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		registry: registry,
		log:      log,
	}
}

// ListEntities returns the names of the manageable entities
func (h *AdminHandler) ListEntities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entities": h.registry.Names(),
	})
}

func (h *AdminHandler) resource(c *gin.Context) (*admin.Resource, bool) {
	name := c.Param("entity")
	res, ok := h.registry.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown entity",
		})
		return nil, false
	}
	return res, true
}

// List handles listing all records of an entity
func (h *AdminHandler) List(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}

	items, err := res.List(c)
	if err != nil {
		h.log.WithError(err).WithField("entity", res.Name).Error("Failed to list records")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles retrieval of a single record
func (h *AdminHandler) Get(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := res.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Create handles record creation
func (h *AdminHandler) Create(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to read request body",
		})
		return
	}

	item, err := res.Create(c, body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Replace handles full record updates
func (h *AdminHandler) Replace(c *gin.Context) {
	h.update(c, false)
}

// Update handles partial record updates
func (h *AdminHandler) Update(c *gin.Context) {
	h.update(c, true)
}

func (h *AdminHandler) update(c *gin.Context, partial bool) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to read request body",
		})
		return
	}

	item, err := res.Update(c, id, body, partial)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles record deletion
func (h *AdminHandler) Delete(c *gin.Context) {
	res, ok := h.resource(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := res.Delete(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
