package tours

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

func (c *Controller) CreateTour(ctx *gin.Context) {
	var req CreateTourRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	userID := ctx.GetString("user_id")

	tour, err := c.service.CreateTour(ctx.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Tour created successfully", tour, nil)
}

func (c *Controller) GetTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	tour, err := c.service.GetTour(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour retrieved successfully", tour, nil)
}

func (c *Controller) GetPublishedTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	tour, err := c.service.GetPublishedTour(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour retrieved successfully", tour, nil)
}

func (c *Controller) GetTourBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	tour, err := c.service.GetPublishedTourBySlug(ctx.Request.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour retrieved successfully", tour, nil)
}

func (c *Controller) ListPublishedTours(ctx *gin.Context) {
	var query TourListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	tours, err := c.service.ListPublishedTours(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list tours", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tours retrieved successfully", tours, nil)
}

func (c *Controller) ListTours(ctx *gin.Context) {
	var query TourListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	tours, err := c.service.ListTours(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list tours", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tours retrieved successfully", tours, nil)
}

func (c *Controller) UpdateTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	var req UpdateTourRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	userID := ctx.GetString("user_id")

	tour, err := c.service.UpdateTour(ctx.Request.Context(), id, userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour updated successfully", tour, nil)
}

func (c *Controller) DeleteTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	if err := c.service.DeleteTour(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour deleted successfully", nil, nil)
}

func (c *Controller) ValidateTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	findings, err := c.service.Validate(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTourNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to validate tour", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Validation completed", gin.H{
		"errors":   BlockingErrors(findings),
		"warnings": warningsOf(findings),
	}, nil)
}

func (c *Controller) PublishTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	result, err := c.service.Publish(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrTourNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to publish tour", nil, err.Error())
		case errors.Is(err, ErrPublishBlocked):
			response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Tour is not ready to publish", result, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to publish tour", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour published successfully", result, nil)
}

func (c *Controller) UnpublishTour(ctx *gin.Context) {
	id := ctx.Param("tourId")

	tour, err := c.service.Unpublish(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrTourNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to unpublish tour", nil, err.Error())
		case errors.Is(err, ErrNotPublished):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Tour is not published", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to unpublish tour", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tour unpublished successfully", tour, nil)
}
