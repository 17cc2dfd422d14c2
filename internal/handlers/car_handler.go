package handlers

import (
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carService services.CarService
	logger     *logger.Logger
}

func NewCarHandler(carService services.CarService, log *logger.Logger) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     log.WithComponent("car_handler"),
	}
}

func (h *CarHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req validators.CarCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	car, err := h.carService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err, "car")
		return
	}

	utils.CreatedResponse(c, "car registered", car)
}

func (h *CarHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	cars, err := h.carService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err, "car")
		return
	}

	utils.SuccessResponse(c, "cars retrieved", cars)
}

func (h *CarHandler) GetByID(c *gin.Context) {
	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	car, err := h.carService.GetByID(c.Request.Context(), carID)
	if err != nil {
		handleServiceError(c, err, "car")
		return
	}

	utils.SuccessResponse(c, "car retrieved", car)
}
