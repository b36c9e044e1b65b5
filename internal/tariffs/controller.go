package tariffs

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

func (c *Controller) CreateTariff(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateTariffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	tariff, err := c.service.CreateTariff(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create tariff", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Tariff created successfully", tariff, nil)
}

func (c *Controller) GetTariff(ctx *gin.Context) {
	id := ctx.Param("id")

	tariff, err := c.service.GetTariff(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTariffNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get tariff", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tariff retrieved successfully", tariff, nil)
}

func (c *Controller) GetTariffsByTour(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	tariffs, err := c.service.GetTariffsByTour(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get tariffs", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tariffs retrieved successfully", tariffs, nil)
}

func (c *Controller) UpdateTariff(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateTariffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	tariff, err := c.service.UpdateTariff(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTariffNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update tariff", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tariff updated successfully", tariff, nil)
}

func (c *Controller) DeleteTariff(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteTariff(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTariffNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete tariff", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tariff deleted successfully", nil, nil)
}
