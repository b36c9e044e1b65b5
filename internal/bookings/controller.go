package bookings

import (
	"errors"
	"net/http"

	"mtour/internal/dates"
	"mtour/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CheckoutQuote(ctx *gin.Context) {
	var query CheckoutQuoteQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	quote, err := c.service.CheckoutQuote(ctx.Request.Context(), query)
	if err != nil {
		statusCode := http.StatusBadRequest
		if errors.Is(err, ErrBookingNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to compute quote", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Quote computed successfully", quote, nil)
}

func (c *Controller) CreateBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	booking, err := c.service.CreateBooking(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, dates.ErrInsufficientSeats):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Not enough seats available", nil, err.Error())
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to create booking", nil, err.Error())
		case errors.Is(err, ErrDateUnavailable), errors.Is(err, ErrTourMismatch), errors.Is(err, ErrPassengerCount):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create booking", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

func (c *Controller) GetBookingByNumber(ctx *gin.Context) {
	number := ctx.Param("number")

	booking, err := c.service.GetBookingByNumber(ctx.Request.Context(), number)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrBookingNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) GetBooking(ctx *gin.Context) {
	id := ctx.Param("id")

	booking, err := c.service.GetBooking(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrBookingNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get booking", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (c *Controller) ListBookings(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	bookings, err := c.service.ListBookings(ctx.Request.Context(), query)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list bookings", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (c *Controller) CancelBooking(ctx *gin.Context) {
	id := ctx.Param("id")

	booking, err := c.service.CancelBooking(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to cancel booking", nil, err.Error())
		case errors.Is(err, ErrAlreadyCancelled):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Booking is already cancelled", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to cancel booking", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func (c *Controller) CreateHold(ctx *gin.Context) {
	var req HoldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	hold, err := c.service.CreateHold(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrHoldUnavailable):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Not enough free seats to hold", nil, err.Error())
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Failed to create hold", nil, err.Error())
		case errors.Is(err, ErrDateUnavailable):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create hold", nil, err.Error())
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create hold", nil, err.Error())
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats held successfully", hold, nil)
}

func (c *Controller) ReleaseHold(ctx *gin.Context) {
	holdID := ctx.Param("holdId")
	dateID := ctx.Query("date_id")
	if dateID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date_id query parameter is required", nil, nil)
		return
	}

	if err := c.service.ReleaseHold(ctx.Request.Context(), dateID, holdID); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to release hold", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hold released successfully", nil, nil)
}
