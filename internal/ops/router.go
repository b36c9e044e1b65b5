package ops

import (
	"mtour/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOpsRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin/ops")
	admin.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "STAFF"))
	{
		admin.GET("/kpis", controller.GetKPISnapshot)

		admin.GET("/vehicles", controller.ListVehiclePositions)
		admin.POST("/vehicles/position", controller.ReportVehiclePosition)

		admin.GET("/incidents", controller.ListIncidents)
		admin.POST("/incidents", controller.CreateIncident)
		admin.PUT("/incidents/:id/status", controller.UpdateIncidentStatus)

		admin.POST("/scans", controller.RecordTicketScan)

		admin.GET("/shifts", controller.ListDriverShifts)
		admin.POST("/shifts", controller.StartDriverShift)
		admin.POST("/shifts/:id/complete", controller.CompleteDriverShift)

		admin.GET("/status", controller.GetSystemStatus)
		admin.PUT("/status", controller.SetSystemStatus)
	}
}
