package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "contact-manager/pkg/errors"
)

// SuccessResponse writes the success envelope {"data": <payload>}.
func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// ErrorResponse writes the error envelope {"errors": <payload>} with the
// status carried by the error. Validation errors render their violation list;
// anything outside the request error taxonomy becomes a generic 500.
func ErrorResponse(c *gin.Context, err error) {
	switch e := err.(type) {
	case *apperrors.ValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"errors": e.Violations})
	case *apperrors.RequestError:
		c.JSON(e.Status, gin.H{"errors": e.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "Internal Server Error"})
	}
}
