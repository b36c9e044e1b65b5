package content

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

// ============= INCLUSIONS =============

func (c *Controller) CreateInclusion(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateInclusionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	inclusion, err := c.service.CreateInclusion(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create inclusion", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Inclusion created successfully", inclusion, nil)
}

func (c *Controller) GetGroupedInclusions(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	grouped, err := c.service.GetGroupedInclusions(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get inclusions", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inclusions retrieved successfully", grouped, nil)
}

func (c *Controller) UpdateInclusion(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateInclusionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.service.UpdateInclusion(ctx.Request.Context(), id, req); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInclusionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update inclusion", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inclusion updated successfully", nil, nil)
}

func (c *Controller) DeleteInclusion(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteInclusion(ctx.Request.Context(), id); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete inclusion", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inclusion deleted successfully", nil, nil)
}

// ============= LEGAL SECTIONS =============

func (c *Controller) CreateLegalSection(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateLegalSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	section, err := c.service.CreateLegalSection(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create legal section", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Legal section created successfully", section, nil)
}

func (c *Controller) GetLegalSections(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	sections, err := c.service.GetLegalSections(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get legal sections", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Legal sections retrieved successfully", sections, nil)
}

func (c *Controller) UpdateLegalSection(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateLegalSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.service.UpdateLegalSection(ctx.Request.Context(), id, req); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrLegalSectionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update legal section", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Legal section updated successfully", nil, nil)
}

func (c *Controller) DeleteLegalSection(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteLegalSection(ctx.Request.Context(), id); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete legal section", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Legal section deleted successfully", nil, nil)
}

// ============= LUGGAGE ADDONS =============

func (c *Controller) CreateLuggageAddon(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	var req CreateLuggageAddonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	addon, err := c.service.CreateLuggageAddon(ctx.Request.Context(), tourID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create luggage addon", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Luggage addon created successfully", addon, nil)
}

func (c *Controller) GetLuggageAddons(ctx *gin.Context) {
	tourID := ctx.Param("tourId")

	addons, err := c.service.GetLuggageAddons(ctx.Request.Context(), tourID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get luggage addons", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Luggage addons retrieved successfully", addons, nil)
}

func (c *Controller) UpdateLuggageAddon(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateLuggageAddonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	if err := c.service.UpdateLuggageAddon(ctx.Request.Context(), id, req); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrLuggageAddonNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update luggage addon", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Luggage addon updated successfully", nil, nil)
}

func (c *Controller) DeleteLuggageAddon(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.DeleteLuggageAddon(ctx.Request.Context(), id); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete luggage addon", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Luggage addon deleted successfully", nil, nil)
}
