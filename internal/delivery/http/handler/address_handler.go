package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contact-manager/internal/middleware"
	"contact-manager/internal/usecase/address"
	apperrors "contact-manager/pkg/errors"
	"contact-manager/pkg/utils"
)

type AddressHandler struct {
	service *address.Service
}

func NewAddressHandler(service *address.Service) *AddressHandler {
	return &AddressHandler{service: service}
}

func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup) {
	addresses := router.Group("/contacts/:contactId/addresses")
	{
		addresses.POST("", h.Create)
		addresses.GET("", h.List)
		addresses.GET("/:addressId", h.Get)
		addresses.PUT("/:addressId", h.Update)
		addresses.DELETE("/:addressId", h.Delete)
	}
}

func (h *AddressHandler) Create(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req address.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	req.ContactID = contactID

	response, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *AddressHandler) Get(c *gin.Context) {
	req, err := addressIDs(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	response, err := h.service.Get(c.Request.Context(), middleware.CurrentUser(c), &address.GetAddressRequest{
		ID:        req.ID,
		ContactID: req.ContactID,
	})
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *AddressHandler) List(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	response, err := h.service.List(c.Request.Context(), middleware.CurrentUser(c), contactID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *AddressHandler) Update(c *gin.Context) {
	ids, err := addressIDs(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	var req address.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperrors.NewRequestError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	req.ID = ids.ID
	req.ContactID = ids.ContactID

	response, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c), &req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, response)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	ids, err := addressIDs(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	err = h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), &address.DeleteAddressRequest{
		ID:        ids.ID,
		ContactID: ids.ContactID,
	})
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OK")
}

func addressIDs(c *gin.Context) (*address.GetAddressRequest, error) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return nil, err
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		return nil, err
	}
	return &address.GetAddressRequest{ID: addressID, ContactID: contactID}, nil
}
