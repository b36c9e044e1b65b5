package ops

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

func (c *Controller) ReportVehiclePosition(ctx *gin.Context) {
	var req VehiclePositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	pos, err := c.service.ReportVehiclePosition(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to report vehicle position", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle position updated", pos, nil)
}

func (c *Controller) ListVehiclePositions(ctx *gin.Context) {
	positions, err := c.service.GetVehiclePositions(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get vehicle positions", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Vehicle positions retrieved successfully", positions, nil)
}

func (c *Controller) CreateIncident(ctx *gin.Context) {
	var req CreateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	incident, err := c.service.CreateIncident(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create incident", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Incident created successfully", incident, nil)
}

func (c *Controller) ListIncidents(ctx *gin.Context) {
	incidents, err := c.service.GetIncidents(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to get incidents", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Incidents retrieved successfully", incidents, nil)
}

func (c *Controller) UpdateIncidentStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var req UpdateIncidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	incident, err := c.service.UpdateIncidentStatus(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrIncidentNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update incident", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Incident updated successfully", incident, nil)
}

func (c *Controller) RecordTicketScan(ctx *gin.Context) {
	var req TicketScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	scan, err := c.service.RecordTicketScan(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to record ticket scan", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Ticket scan recorded", scan, nil)
}

func (c *Controller) StartDriverShift(ctx *gin.Context) {
	var req StartShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	shift, err := c.service.StartDriverShift(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to start driver shift", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Driver shift started", shift, nil)
}

func (c *Controller) CompleteDriverShift(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.service.CompleteDriverShift(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrShiftNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to complete driver shift", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Driver shift completed", nil, nil)
}

func (c *Controller) ListDriverShifts(ctx *gin.Context) {
	shifts, err := c.service.GetDriverShifts(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get driver shifts", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Driver shifts retrieved successfully", shifts, nil)
}

func (c *Controller) SetSystemStatus(ctx *gin.Context) {
	var req SystemStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	status, err := c.service.SetSystemStatus(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to set system status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "System status updated", status, nil)
}

func (c *Controller) GetSystemStatus(ctx *gin.Context) {
	rows, err := c.service.GetSystemStatus(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get system status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "System status retrieved successfully", rows, nil)
}

func (c *Controller) GetKPISnapshot(ctx *gin.Context) {
	snapshot, err := c.service.GetKPISnapshot(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get KPI snapshot", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "KPI snapshot retrieved successfully", snapshot, nil)
}
