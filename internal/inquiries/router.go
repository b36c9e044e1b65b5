package inquiries

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupInquiryRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public contact form
	rg.POST("/inquiries", controller.CreateInquiry)

	// Admin console
	admin := rg.Group("/admin/inquiries")
	admin.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "STAFF"))
	{
		admin.GET("", controller.ListInquiries)
		admin.GET("/:id", controller.GetInquiry)
		admin.PUT("/:id/status", controller.UpdateStatus)
		admin.DELETE("/:id", controller.DeleteInquiry)
	}
}
