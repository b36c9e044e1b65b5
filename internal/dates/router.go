package dates

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupDateRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public read access for checkout and tour pages
	public := rg.Group("/tours/:tourId/dates")
	{
		public.GET("", controller.GetDatesByTour)
	}

	// Tour builder routes
	admin := rg.Group("/admin/tours/:tourId/dates")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateDate)
	}

	d := rg.Group("/admin/dates")
	d.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		d.GET("/:id", controller.GetDate)
		d.PUT("/:id", controller.UpdateDate)
		d.DELETE("/:id", controller.DeleteDate)
	}
}
