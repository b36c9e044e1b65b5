package routes

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRouteRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public read access for checkout pickup selection
	public := rg.Group("/tours/:tourId/routes")
	{
		public.GET("", controller.GetRoutesByTour)
	}

	// Tour builder routes
	admin := rg.Group("/admin/tours/:tourId/routes")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateRoute)
	}

	r := rg.Group("/admin/routes")
	r.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		r.GET("/:id", controller.GetRoute)
		r.PUT("/:id", controller.UpdateRoute)
		r.DELETE("/:id", controller.DeleteRoute)
		r.POST("/:id/stops", controller.CreateStop)
	}

	stops := rg.Group("/admin/stops")
	stops.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		stops.PUT("/:id", controller.UpdateStop)
		stops.DELETE("/:id", controller.DeleteStop)
	}
}
