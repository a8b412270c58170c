// Package controllers maps HTTP requests onto the service engines. Handlers
// bind input, read the verified caller id set by the auth middleware, call one
// service method and translate typed failures into status codes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/models"
)

func callerID(c *gin.Context) string {
	return c.GetString("user_id")
}

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are logged and masked as a plain 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrCommentNotFound),
		errors.Is(err, models.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotAuthorized),
		errors.Is(err, models.ErrAgeRestricted):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyParticipant),
		errors.Is(err, models.ErrNotParticipant),
		errors.Is(err, models.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrProfileCooldown):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
