package http

import (
	"net/http"

	"openshelf/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Anything the domain does
// not recognize is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case entity.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case entity.IsInvalidState(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case entity.IsAuth(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case entity.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case entity.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
