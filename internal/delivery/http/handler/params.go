package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "contact-manager/pkg/errors"
)

// pathID parses a numeric route parameter. Non-numeric or non-positive values
// are validation failures, not lookups that happened to miss.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(apperrors.FieldViolation{
			Field:   name,
			Message: "must be a positive integer",
		})
	}
	return id, nil
}
