package dates

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

func (c *Controller) CreateDate(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	date, err := c.service.CreateDate(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create tour date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Tour date created successfully", date, nil)
}

func (c *Controller) GetDate(ctx *gin.Context) {
	id := ctx.Param("id")

	date, err := c.service.GetDate(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDateNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get tour date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour date retrieved successfully", date, nil)
}

func (c *Controller) GetDatesByTour(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	// Public callers only see upcoming departures; the builder needs all
	if ctx.Query("include_past") == "true" {
		dates, err := c.service.GetDatesByTour(ctx.Request.Context(), tourID)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get tour dates", nil, err.Error())
			return
		}
		response.RespondJSON(ctx, "success", http.StatusOK, "Tour dates retrieved successfully", dates, nil)
		return
	}

	dates, err := c.service.GetUpcomingDatesByTour(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get tour dates", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour dates retrieved successfully", dates, nil)
}

func (c *Controller) UpdateDate(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	date, err := c.service.UpdateDate(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDateNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update tour date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour date updated successfully", date, nil)
}

func (c *Controller) DeleteDate(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteDate(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrDateNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete tour date", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour date deleted successfully", nil, nil)
}
