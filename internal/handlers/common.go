package handlers

import (
	"errors"
	"net/http"

	"carpool/internal/services"
	"carpool/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// handleServiceError maps the service layer's error kinds to HTTP statuses
// and machine-readable codes.
func handleServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c)
	case errors.Is(err, services.ErrEmailTaken):
		utils.ConflictResponse(c, "EMAIL_TAKEN", "email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
	case errors.Is(err, services.ErrNoSeatsAvailable):
		utils.ConflictResponse(c, "NO_SEATS_AVAILABLE", "no seats available on this ride")
	case errors.Is(err, services.ErrDuplicateRequest):
		utils.ConflictResponse(c, "DUPLICATE_REQUEST", "a pending request for this ride already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, "INVALID_TRANSITION", "illegal status transition")
	case errors.Is(err, services.ErrRideNotActive):
		utils.ConflictResponse(c, "RIDE_NOT_ACTIVE", "ride is not active")
	case errors.Is(err, services.ErrInvalidCoordinates):
		utils.ErrorResponse(c, http.StatusBadRequest, "INVALID_COORDINATES", "coordinates out of range")
	default:
		utils.InternalServerErrorResponse(c)
	}
}

// currentUserID returns the authenticated user's id placed on the context by
// the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}

func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
