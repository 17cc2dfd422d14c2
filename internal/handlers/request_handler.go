package handlers

import (
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService services.RequestService
	logger         *logger.Logger
}

func NewRequestHandler(requestService services.RequestService, log *logger.Logger) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		logger:         log.WithComponent("request_handler"),
	}
}

func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.RequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.CreatedResponse(c, "ride request created", request)
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	utils.SuccessResponse(c, "ride request retrieved", request)
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	requests, total, err := h.requestService.ListByPassenger(c.Request.Context(), userID, params)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	utils.SuccessResponseWithMeta(c, "ride requests retrieved", requests, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *RequestHandler) ListByRide(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	rideID, ok := parseIDParam(c, "ride_id")
	if !ok {
		return
	}

	requests, err := h.requestService.ListByRide(c.Request.Context(), userID, rideID)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "ride requests retrieved", requests)
}

func (h *RequestHandler) Accept(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.requestService.Accept(c.Request.Context(), userID, requestID)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	utils.CreatedResponse(c, "ride request accepted", assignment)
}

func (h *RequestHandler) Reject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.Reject(c.Request.Context(), userID, requestID)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	utils.SuccessResponse(c, "ride request rejected", request)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	requestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		handleServiceError(c, err, "request")
		return
	}

	utils.SuccessResponse(c, "ride request cancelled", request)
}
