package handlers

import (
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RoutePointHandler struct {
	routePointService services.RoutePointService
	logger            *logger.Logger
}

func NewRoutePointHandler(routePointService services.RoutePointService, log *logger.Logger) *RoutePointHandler {
	return &RoutePointHandler{
		routePointService: routePointService,
		logger:            log.WithComponent("route_point_handler"),
	}
}

func (h *RoutePointHandler) Replace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	rideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.RoutePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	points, err := h.routePointService.Replace(c.Request.Context(), userID, rideID, &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "route points replaced", points)
}

func (h *RoutePointHandler) ListByRide(c *gin.Context) {
	rideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	points, err := h.routePointService.ListByRide(c.Request.Context(), rideID)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "route points retrieved", points)
}
