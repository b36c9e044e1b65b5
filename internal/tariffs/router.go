package tariffs

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTariffRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public read access for checkout and tour pages
	public := rg.Group("/tours/:tourId/tariffs")
	{
		public.GET("", controller.GetTariffsByTour)
	}

	// Tour builder routes
	admin := rg.Group("/admin/tours/:tourId/tariffs")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateTariff)
	}

	tariffs := rg.Group("/admin/tariffs")
	tariffs.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		tariffs.GET("/:id", controller.GetTariff)
		tariffs.PUT("/:id", controller.UpdateTariff)
		tariffs.DELETE("/:id", controller.DeleteTariff)
	}
}
