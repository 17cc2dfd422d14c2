package handlers

import (
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	userService services.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService services.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      log.WithComponent("user_handler"),
	}
}

// users may only read and write their own profile; admins may touch any.
func (h *UserHandler) requireSelfOrAdmin(c *gin.Context) (primitive.ObjectID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return primitive.NilObjectID, false
	}
	if targetID != userID && c.GetString("user_role") != "admin" {
		utils.ForbiddenResponse(c)
		return primitive.NilObjectID, false
	}
	return targetID, true
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	targetID, ok := h.requireSelfOrAdmin(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), targetID)
	if err != nil {
		handleServiceError(c, err, "user")
		return
	}

	utils.SuccessResponse(c, "profile retrieved", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	targetID, ok := h.requireSelfOrAdmin(c)
	if !ok {
		return
	}

	var req validators.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateStruct(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), targetID, &req)
	if err != nil {
		handleServiceError(c, err, "user")
		return
	}

	utils.SuccessResponse(c, "profile updated", user)
}
