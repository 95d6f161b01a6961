package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvpress/internal/layout"
	"cvpress/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	measurer layout.Measurer,
	allowedOrigins []string,
) {
	layoutHandler := NewLayoutHandler(measurer)
	matchHandler := NewMatchHandler()
	exportHandler := NewExportHandler(db, asynqClient, storageClient)
	wsHandler := NewWsHandler(redisClient, logger, allowedOrigins)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.POST("/layout", layoutHandler.ComputeLayout)
		v1.POST("/match", matchHandler.ScoreMatch)
		v1.POST("/ats-check", matchHandler.CheckATS)

		exportGroup := v1.Group("/export")
		{
			exportGroup.POST("", exportHandler.CreateExport)
			exportGroup.GET("/:id", exportHandler.GetExport)
			exportGroup.GET("/:id/download", exportHandler.DownloadExport)
			exportGroup.DELETE("/:id", exportHandler.DeleteExport)
		}
	}
}
