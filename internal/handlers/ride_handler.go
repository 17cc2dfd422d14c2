package handlers

import (
	"carpool/internal/models"
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rideService       services.RideService
	suggestionService services.SuggestionService
	logger            *logger.Logger
}

func NewRideHandler(rideService services.RideService, suggestionService services.SuggestionService, log *logger.Logger) *RideHandler {
	return &RideHandler{
		rideService:       rideService,
		suggestionService: suggestionService,
		logger:            log.WithComponent("ride_handler"),
	}
}

func (h *RideHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.RideCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	ride, err := h.rideService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.CreatedResponse(c, "ride offering created", ride)
}

func (h *RideHandler) GetByID(c *gin.Context) {
	rideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ride, err := h.rideService.GetByID(c.Request.Context(), rideID)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "ride retrieved", ride)
}

func (h *RideHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	params := utils.GetPaginationParams(c)
	rides, total, err := h.rideService.ListByDriver(c.Request.Context(), userID, params)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponseWithMeta(c, "rides retrieved", rides, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	})
}

func (h *RideHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	rideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.RideUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	ride, err := h.rideService.Update(c.Request.Context(), userID, rideID, &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "ride updated", ride)
}

func (h *RideHandler) ChangeStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}
	rideID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validators.RideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	ride, err := h.rideService.ChangeStatus(c.Request.Context(), userID, rideID, models.RideStatus(req.Status))
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponse(c, "ride status updated", ride)
}

func (h *RideHandler) ListActive(c *gin.Context) {
	rides, err := h.rideService.ListActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponseWithMeta(c, "rides retrieved", rides, &utils.Meta{Count: len(rides)})
}

func (h *RideHandler) Suggestions(c *gin.Context) {
	var req validators.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	rides, err := h.suggestionService.Suggest(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponseWithMeta(c, "ride suggestions retrieved", rides, &utils.Meta{Count: len(rides)})
}

func (h *RideHandler) Search(c *gin.Context) {
	var req validators.RideSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	rides, err := h.suggestionService.Search(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err, "ride")
		return
	}

	utils.SuccessResponseWithMeta(c, "rides retrieved", rides, &utils.Meta{Count: len(rides)})
}
