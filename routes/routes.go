package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sociobooks/sociobooks-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	v1.Use(handlers.RequireAccount())
	{
		// Partner ledger endpoints
		v1.GET("/partners", handlers.ListPartners)
		v1.POST("/partners", handlers.AddPartner)
		v1.GET("/partners/total-participation", handlers.GetTotalParticipation)
		v1.GET("/partners/:id", handlers.GetPartner)
		v1.PUT("/partners/:id", handlers.EditPartner)
		v1.DELETE("/partners/:id", handlers.DeletePartner)

		// Cost settlement endpoints
		v1.GET("/costs", handlers.ListCosts)
		v1.POST("/costs", handlers.AddCost)
		v1.PUT("/costs/:id", handlers.EditCost)
		v1.DELETE("/costs/:id", handlers.DeleteCost)
		v1.POST("/costs/:id/payments/:partnerId/toggle", handlers.ToggleCostPayment)

		// Profit distribution endpoints
		v1.GET("/profits", handlers.ListProfits)
		v1.POST("/profits", handlers.AddProfit)
		v1.PUT("/profits/:id", handlers.EditProfit)
		v1.DELETE("/profits/:id", handlers.DeleteProfit)

		// Dashboard and export endpoints
		v1.GET("/summary", handlers.GetSummary)
		v1.GET("/reports/books", handlers.ExportBooks)
	}
}
