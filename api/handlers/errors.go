package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"example.com/travelagency/internal/models"
	"example.com/travelagency/internal/repository"
)

// respondError maps domain errors onto HTTP statuses. Validation
// failures carry the external field name so the caller knows which
// field to fix.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": vErr.Message,
			"field": vErr.Field,
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "record not found",
		})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"error": "record conflicts with an existing one",
		})
	case errors.Is(err, repository.ErrProtected):
		c.JSON(http.StatusConflict, gin.H{
			"error": "record is referenced by other records",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
		})
	}
}
