package inquiries

import (
	"errors"
	"net/http"

	"mtour/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateInquiry(ctx *gin.Context) {
	var req CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	inquiry, err := c.service.CreateInquiry(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create inquiry", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Inquiry submitted successfully", inquiry, nil)
}

func (c *Controller) GetInquiry(ctx *gin.Context) {
	id := ctx.Param("id")

	inquiry, err := c.service.GetInquiry(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInquiryNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get inquiry", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiry retrieved successfully", inquiry, nil)
}

func (c *Controller) ListInquiries(ctx *gin.Context) {
	var query InquiryListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	inquiries, err := c.service.ListInquiries(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list inquiries", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiries retrieved successfully", inquiries, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	inquiry, err := c.service.UpdateStatus(ctx.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to update inquiry", nil, err.Error())
		case errors.Is(err, ErrInvalidTransition):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Invalid status transition", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update inquiry", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiry status updated successfully", inquiry, nil)
}

func (c *Controller) DeleteInquiry(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteInquiry(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInquiryNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete inquiry", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiry deleted successfully", nil, nil)
}
