package payroll

import (
	"mployee/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.POST("/calculate", handler.Calculate)
		payroll.GET("/payslip/:id", handler.Payslip)
	}
}
