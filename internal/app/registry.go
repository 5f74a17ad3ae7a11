package app

import (
	"mployee/internal/company"
	"mployee/internal/employee"
	"mployee/internal/middleware"
	"mployee/internal/notice"
	"mployee/internal/payroll"
	"mployee/internal/reimbursement"
	"mployee/internal/state"
	"mployee/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	appState *state.State,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Services ---
	employeeService := employee.NewService(appState.Employees, appState, rdb, logger)
	payrollService := payroll.NewService(appState.Employees, appState.Settings, logger)
	companyService := company.NewService(appState.Settings, appState, logger)
	reimbursementService := reimbursement.NewService(appState.Reimbursements, appState, logger)
	noticeService := notice.NewService(appState.Notices, appState, logger)
	transferService := transfer.NewService(appState.Employees, appState, appState.Settings, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	reimbursementHandler := reimbursement.NewHandler(reimbursementService, logger)
	noticeHandler := notice.NewHandler(noticeService, logger)
	transferHandler := transfer.NewHandler(transferService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		transfer.RegisterRoutes(api, transferHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, logger)
		company.RegisterRoutes(api, companyHandler, logger)
		reimbursement.RegisterRoutes(api, reimbursementHandler, logger)
		notice.RegisterRoutes(api, noticeHandler, logger)
	}
}
