package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrovskiy/construction-supervision-api/internal/dto"
	apierrors "github.com/ostrovskiy/construction-supervision-api/internal/errors"
	"github.com/ostrovskiy/construction-supervision-api/internal/models"
	"github.com/ostrovskiy/construction-supervision-api/internal/services"
)

// UserHandler coordinates user registration HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterUser registers a new user with a unique login.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	type RegisterUserRequest struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), services.RegisterUserInput{
		Login:    req.Login,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IDResponse{ID: user.ID})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrLoginTaken):
		apierrors.DuplicateLogin(c, err.Error())
	case errors.Is(err, services.ErrInvalidRole):
		apierrors.InvalidEnumValue(c, err.Error())
	case errors.Is(err, services.ErrLoginRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		respondStorageError(c, err)
	}
}
