package payroll_test

import (
	"bytes"
	"context"
	"testing"

	"mployee/internal/company"
	"mployee/internal/employee"
	"mployee/internal/payroll"
	payrollerrors "mployee/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

type fakeDirectory struct {
	records map[string]employee.Employee
}

func (f *fakeDirectory) Find(id string) (employee.Employee, bool) {
	emp, ok := f.records[id]
	return emp, ok
}

type fakeCompany struct {
	settings company.Settings
}

func (f *fakeCompany) Current() company.Settings { return f.settings }

func newPayrollService(records map[string]employee.Employee) payroll.Service {
	return payroll.NewService(
		&fakeDirectory{records: records},
		&fakeCompany{settings: company.Settings{CompanyName: "Acme Pvt Ltd", CompanyAddress: "Pune"}},
	)
}

func TestPayrollService_Calculate(t *testing.T) {
	t.Run("explicit salary wins over lookup", func(t *testing.T) {
		svc := newPayrollService(nil)

		res, err := svc.Calculate(context.Background(), payroll.CalculateRequest{
			MonthlySalary: 30000,
			DaysWorked:    15,
			TotalDays:     30,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(15000), res.CalculatedSalary)
	})

	t.Run("salary resolved from employee", func(t *testing.T) {
		svc := newPayrollService(map[string]employee.Employee{
			"EMP001": {ID: "EMP001", Name: "Asha Rao", MonthlySalary: 60000},
		})

		res, err := svc.Calculate(context.Background(), payroll.CalculateRequest{
			EmployeeID: "EMP001",
			DaysWorked: 30,
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(60000), res.CalculatedSalary)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := newPayrollService(nil)

		_, err := svc.Calculate(context.Background(), payroll.CalculateRequest{
			EmployeeID: "EMP404",
			DaysWorked: 10,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})
}

func TestPayrollService_Payslip(t *testing.T) {
	records := map[string]employee.Employee{
		"EMP001": {
			ID:            "EMP001",
			Name:          "Asha Rao",
			Designation:   "Engineer",
			PANNumber:     "ABCDE1234F",
			MonthlySalary: 20000,
		},
	}

	t.Run("success", func(t *testing.T) {
		svc := newPayrollService(records)

		slip, err := svc.Payslip(context.Background(), "EMP001", "2026-08")

		assert.NoError(t, err)
		assert.Equal(t, "August 2026", slip.MonthName)
		assert.Equal(t, "Acme Pvt Ltd", slip.CompanyName)
		assert.Equal(t, float64(24600), slip.Breakdown.NetSalary)
	})

	t.Run("negative bad month", func(t *testing.T) {
		svc := newPayrollService(records)

		_, err := svc.Payslip(context.Background(), "EMP001", "August")
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		svc := newPayrollService(records)

		_, err := svc.Payslip(context.Background(), "EMP404", "2026-08")
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})
}

func TestPayrollService_PayslipPDF(t *testing.T) {
	svc := newPayrollService(map[string]employee.Employee{
		"EMP001": {ID: "EMP001", Name: "Asha Rao", MonthlySalary: 20000},
	})

	data, filename, err := svc.PayslipPDF(context.Background(), "EMP001", "2026-08")

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "salary_slip_Asha Rao_August 2026.pdf", filename)
}
