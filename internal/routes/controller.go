package routes

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

// ROUTES

func (c *Controller) CreateRoute(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	route, err := c.service.CreateRoute(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Route created successfully", route, nil)
}

func (c *Controller) GetRoute(ctx *gin.Context) {
	id := ctx.Param("id")

	route, err := c.service.GetRoute(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrRouteNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route retrieved successfully", route, nil)
}

func (c *Controller) GetRoutesByTour(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	routes, err := c.service.GetRoutesByTour(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get routes", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Routes retrieved successfully", routes, nil)
}

func (c *Controller) UpdateRoute(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	route, err := c.service.UpdateRoute(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrRouteNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route updated successfully", route, nil)
}

func (c *Controller) DeleteRoute(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteRoute(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrRouteNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete route", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Route deleted successfully", nil, nil)
}

// PICKUP STOPS

func (c *Controller) CreateStop(ctx *gin.Context) {
	routeID := ctx.Param("id")

	var req CreateStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	stop, err := c.service.CreateStop(ctx.Request.Context(), routeID, req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrRouteNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to create pickup stop", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Pickup stop created successfully", stop, nil)
}

func (c *Controller) UpdateStop(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateStopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	stop, err := c.service.UpdateStop(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrStopNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update pickup stop", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pickup stop updated successfully", stop, nil)
}

func (c *Controller) DeleteStop(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteStop(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrStopNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete pickup stop", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Pickup stop deleted successfully", nil, nil)
}
