package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-manager/internal/middleware"
	"contact-manager/internal/usecase/user"
	apperrors "contact-manager/pkg/errors"
	"contact-manager/pkg/utils"
)

type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterPublicRoutes wires the routes reachable without a session token.
func (h *UserHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
	}
}

// RegisterRoutes wires the routes that require an authenticated user.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/current", h.Current)
		users.PATCH("/current", h.Update)
		users.DELETE("/current", h.Logout)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	response, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, response)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	response, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *UserHandler) Current(c *gin.Context) {
	response, err := h.service.Current(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	response, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *UserHandler) Logout(c *gin.Context) {
	response, err := h.service.Logout(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}
