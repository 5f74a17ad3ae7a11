package payroll

import (
	"context"
	"fmt"
	"time"

	"mployee/internal/company"
	"mployee/internal/employee"
	payrollerrors "mployee/internal/payroll/errors"
	"mployee/internal/shared/contextutil"

	"go.uber.org/zap"
)

// EmployeeDirectory is the read-only slice of the employee registry the
// calculator needs.
type EmployeeDirectory interface {
	Find(id string) (employee.Employee, bool)
}

// CompanyInfo supplies the settings printed on payslip headers.
type CompanyInfo interface {
	Current() company.Settings
}

type Service interface {
	Calculate(ctx context.Context, req CalculateRequest) (ProRateResult, error)
	Payslip(ctx context.Context, employeeID, month string) (PayslipResponse, error)
	PayslipPDF(ctx context.Context, employeeID, month string) ([]byte, string, error)
}

type service struct {
	directory EmployeeDirectory
	companies CompanyInfo
	logger    *zap.Logger
}

func NewService(directory EmployeeDirectory, companies CompanyInfo, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		directory: directory,
		companies: companies,
		logger:    l,
	}
}

func (s *service) Calculate(ctx context.Context, req CalculateRequest) (ProRateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("salary calculation requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days_worked", req.DaysWorked),
	)

	monthly := req.MonthlySalary
	if monthly == 0 && req.EmployeeID != "" {
		emp, ok := s.directory.Find(req.EmployeeID)
		if !ok {
			return ProRateResult{}, payrollerrors.ErrEmployeeNotFound
		}
		monthly = emp.MonthlySalary
	}

	result, err := ProRate(monthly, req.DaysWorked, req.TotalDays)
	if err != nil {
		s.logger.Warn("salary calculation rejected", zap.String("request_id", rid), zap.Error(err))
		return ProRateResult{}, err
	}
	return result, nil
}

func (s *service) Payslip(ctx context.Context, employeeID, month string) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("payslip requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("month", month),
	)

	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidMonth
	}

	emp, ok := s.directory.Find(employeeID)
	if !ok {
		return PayslipResponse{}, payrollerrors.ErrEmployeeNotFound
	}

	settings := s.companies.Current()

	return PayslipResponse{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		Designation:    emp.Designation,
		DateOfJoining:  emp.DateOfJoining,
		PANNumber:      emp.PANNumber,
		EPFNumber:      emp.EPFNumber,
		Month:          month,
		MonthName:      monthStart.Format("January 2006"),
		CompanyName:    settings.CompanyName,
		CompanyAddress: settings.CompanyAddress,
		Breakdown:      PayslipBreakdown(emp.MonthlySalary),
		GeneratedAt:    time.Now().Format("2006-01-02"),
	}, nil
}

func (s *service) PayslipPDF(ctx context.Context, employeeID, month string) ([]byte, string, error) {
	slip, err := s.Payslip(ctx, employeeID, month)
	if err != nil {
		return nil, "", err
	}

	data, err := renderPayslipPDF(slip)
	if err != nil {
		s.logger.Error("payslip pdf render failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, "", err
	}

	filename := fmt.Sprintf("salary_slip_%s_%s.pdf", slip.EmployeeName, slip.MonthName)
	s.logger.Info("payslip pdf generated",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
	)
	return data, filename, nil
}
