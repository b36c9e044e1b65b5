package tours

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTourRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public catalog
	public := rg.Group("/tours")
	{
		public.GET("", controller.ListPublishedTours)
		public.GET("/slug/:slug", controller.GetTourBySlug)
		public.GET("/:tourId", controller.GetPublishedTour)
	}

	// Tour builder console
	admin := rg.Group("/admin/tours")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListTours)
		admin.POST("", controller.CreateTour)
		admin.GET("/:tourId", controller.GetTour)
		admin.PUT("/:tourId", controller.UpdateTour)
		admin.DELETE("/:tourId", controller.DeleteTour)
		admin.GET("/:tourId/validation", controller.ValidateTour)
		admin.POST("/:tourId/publish", controller.PublishTour)
		admin.POST("/:tourId/unpublish", controller.UnpublishTour)
	}
}
