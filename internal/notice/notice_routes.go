package notice

import (
	"mployee/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	notices := r.Group("/notices")
	notices.Use(middleware.ContextLogger(logger))
	{
		notices.GET("", handler.GetAll)
		notices.POST("", handler.Create)
		notices.DELETE("/:id", handler.Delete)
	}
}
