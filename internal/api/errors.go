package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quillpress/quillpress/internal/blog"
	"github.com/quillpress/quillpress/pkg/logging"
)

// writeError maps a domain error onto the HTTP response. NotFound and
// Forbidden stay distinct outcomes; validation failures carry the
// offending field so an edit form can be re-rendered around it.
func writeError(c *gin.Context, err error) {
	var validationErr *blog.ValidationError
	switch {
	case errors.Is(err, blog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, blog.ErrForbidden):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"field":  validationErr.Field,
			"reason": validationErr.Reason,
		})
	default:
		logging.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
