package handlers

import (
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingService services.TrackingService
	logger          *logger.Logger
}

func NewTrackingHandler(trackingService services.TrackingService, log *logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		logger:          log.WithComponent("tracking_handler"),
	}
}

func (h *TrackingHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.TrackingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	tracking, err := h.trackingService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "tracking updated", tracking)
}

func (h *TrackingHandler) GetByRide(c *gin.Context) {
	rideID, ok := parseIDParam(c, "ride_id")
	if !ok {
		return
	}

	tracking, err := h.trackingService.GetByRide(c.Request.Context(), rideID)
	if err != nil {
		handleServiceError(c, err, "tracking")
		return
	}

	utils.SuccessResponse(c, "tracking retrieved", tracking)
}
