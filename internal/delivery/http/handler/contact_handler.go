package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-manager/internal/middleware"
	"contact-manager/internal/usecase/contact"
	apperrors "contact-manager/pkg/errors"
	"contact-manager/pkg/utils"
)

type ContactHandler struct {
	service *contact.Service
}

func NewContactHandler(service *contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contacts := router.Group("/contacts")
	{
		contacts.POST("", h.Create)
		contacts.GET("", h.Search)
		contacts.GET("/:contactId", h.Get)
		contacts.PUT("/:contactId", h.Update)
		contacts.DELETE("/:contactId", h.Delete)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	response, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	response, err := h.service.Get(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *ContactHandler) Update(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req contact.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	req.ID = contactID

	response, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), contactID); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OK")
}

// Search writes the page and paging block side by side, outside the usual
// data envelope.
func (h *ContactHandler) Search(c *gin.Context) {
	var req contact.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid query parameters"))
		return
	}

	response, err := h.service.Search(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
