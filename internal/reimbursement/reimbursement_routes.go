package reimbursement

import (
	"mployee/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	reimbursements := r.Group("/reimbursements")
	reimbursements.Use(middleware.ContextLogger(logger))
	{
		reimbursements.GET("", handler.GetAll)
		reimbursements.POST("", handler.Create)
		reimbursements.DELETE("/:id", handler.Delete)
	}
}
