package handlers

import (
	"carpool/internal/models"
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	assignmentService services.AssignmentService
	logger            *logger.Logger
}

func NewAssignmentHandler(assignmentService services.AssignmentService, log *logger.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		logger:            log.WithComponent("assignment_handler"),
	}
}

func (h *AssignmentHandler) ListForRide(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	rideID, ok := parseIDParam(c, "ride_id")
	if !ok {
		return
	}

	assignments, err := h.assignmentService.ListForRide(c.Request.Context(), userID, rideID)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "assignments retrieved", assignments)
}

func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.AssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	assignment, err := h.assignmentService.UpdateStatus(c.Request.Context(), userID, assignmentID, models.AssignmentStatus(req.Status))
	if err != nil {
		handleServiceError(c, err, "assignment")
		return
	}

	utils.SuccessResponse(c, "assignment status updated", assignment)
}

func (h *AssignmentHandler) UpdateRoute(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.AssignmentRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	route := make([]models.Coordinate, 0, len(req.Route))
	for _, p := range req.Route {
		route = append(route, models.Coordinate{Lat: p.Lat, Lng: p.Lng})
	}

	assignment, err := h.assignmentService.UpdateRoute(c.Request.Context(), userID, assignmentID, route)
	if err != nil {
		handleServiceError(c, err, "assignment")
		return
	}

	utils.SuccessResponse(c, "assignment route updated", assignment)
}
