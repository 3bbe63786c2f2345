package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "pos-analytics-backend/internal/handlers"
	"pos-analytics-backend/internal/repository"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	closureRepo := repository.NewCashClosureRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	analyticsHandler := handler.NewAnalyticsHandler(closureRepo, saleRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Cash register routes
	cashRegister := api.Group("/cash-register")
	cashRegister.POST("/closures", analyticsHandler.CreateClosure)
	cashRegister.GET("/closures", analyticsHandler.ListClosures)
	cashRegister.GET("/statistics", analyticsHandler.GetClosureStatistics)

	// Sales routes
	sales := api.Group("/sales")
	{
		sales.POST("", analyticsHandler.CreateSale)
		sales.GET("", analyticsHandler.ListSales)
		sales.GET("/periods", analyticsHandler.GetSalesPeriods)
	}
}
