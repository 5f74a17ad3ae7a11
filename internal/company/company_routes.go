package company

import (
	"mployee/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	settings := r.Group("/settings")
	settings.Use(middleware.ContextLogger(logger))
	{
		settings.GET("", handler.Get)
		settings.PUT("", handler.Update)
		settings.POST("/logo", handler.UploadLogo)
	}
}
