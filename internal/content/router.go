package content

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public reads for tour pages and checkout
	public := rg.Group("/tours/:tourId")
	{
		public.GET("/inclusions", controller.GetGroupedInclusions)
		public.GET("/legal", controller.GetLegalSections)
		public.GET("/luggage-addons", controller.GetLuggageAddons)
	}

	// Tour builder routes
	admin := rg.Group("/admin/tours/:tourId")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/inclusions", controller.CreateInclusion)
		admin.POST("/legal", controller.CreateLegalSection)
		admin.POST("/luggage-addons", controller.CreateLuggageAddon)
	}

	items := rg.Group("/admin")
	items.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		items.PUT("/inclusions/:id", controller.UpdateInclusion)
		items.DELETE("/inclusions/:id", controller.DeleteInclusion)
		items.PUT("/legal/:id", controller.UpdateLegalSection)
		items.DELETE("/legal/:id", controller.DeleteLegalSection)
		items.PUT("/luggage-addons/:id", controller.UpdateLuggageAddon)
		items.DELETE("/luggage-addons/:id", controller.DeleteLuggageAddon)
	}
}
