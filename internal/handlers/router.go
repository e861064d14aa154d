package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pocketledger/internal/middleware"
	"pocketledger/internal/store"
)

// NewRouter wires middleware, swagger, and all API routes over one ledger
// store handle.
func NewRouter(s *store.Store) *gin.Engine {
	transactionHandler := NewTransactionHandler(s)
	categoryHandler := NewCategoryHandler(s)
	settingHandler := NewSettingHandler(s)
	backupHandler := NewBackupHandler(s)
	statsHandler := NewStatsHandler(s)
	exportHandler := NewExportHandler(s)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	settings := v1.Group("/settings")
	settings.GET("", settingHandler.ListSettings)
	settings.PUT("/:key", settingHandler.PutSetting)
	settings.GET("/:key", settingHandler.GetSetting)
	settings.DELETE("/:key", settingHandler.DeleteSetting)

	backups := v1.Group("/backups")
	backups.POST("", backupHandler.CreateBackup)
	backups.GET("", backupHandler.ListBackups)
	backups.GET("/:id", backupHandler.GetBackup)
	backups.DELETE("/:id", backupHandler.DeleteBackup)
	backups.POST("/:id/restore", backupHandler.RestoreBackup)

	stats := v1.Group("/stats")
	stats.GET("", statsHandler.Statistics)
	stats.GET("/daily", statsHandler.DailyTotals)
	stats.GET("/monthly", statsHandler.MonthlyTotals)
	stats.GET("/categories", statsHandler.CategoryTotals)

	v1.GET("/export", exportHandler.Export)
	v1.POST("/import", exportHandler.Import)

	return router
}
