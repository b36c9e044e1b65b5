package bookings

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public checkout flow
	checkout := rg.Group("/checkout")
	{
		checkout.GET("/quote", controller.CheckoutQuote)
		checkout.POST("/holds", controller.CreateHold)
		checkout.DELETE("/holds/:holdId", controller.ReleaseHold)
	}

	public := rg.Group("/bookings")
	{
		public.POST("", controller.CreateBooking)
		// Confirmation page lookup by booking number
		public.GET("/number/:number", controller.GetBookingByNumber)
	}

	// Admin console
	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "STAFF"))
	{
		admin.GET("", controller.ListBookings)
		admin.GET("/:id", controller.GetBooking)
		admin.POST("/:id/cancel", controller.CancelBooking)
	}
}
