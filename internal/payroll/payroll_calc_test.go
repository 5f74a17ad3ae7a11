package payroll_test

import (
	"testing"

	"mployee/internal/payroll"
	payrollerrors "mployee/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestProRate(t *testing.T) {
	t.Run("full month earns full salary", func(t *testing.T) {
		res, err := payroll.ProRate(30000, 30, 30)

		assert.NoError(t, err)
		assert.Equal(t, float64(30000), res.CalculatedSalary)
		assert.Equal(t, float64(0), res.Deduction)
		assert.Equal(t, float64(1000), res.DailyRate)
	})

	t.Run("half month earns half salary", func(t *testing.T) {
		res, err := payroll.ProRate(30000, 15, 30)

		assert.NoError(t, err)
		assert.Equal(t, float64(15000), res.CalculatedSalary)
		assert.Equal(t, float64(15000), res.Deduction)
	})

	t.Run("total days defaults to 30", func(t *testing.T) {
		res, err := payroll.ProRate(30000, 15, 0)

		assert.NoError(t, err)
		assert.Equal(t, 30, res.TotalDays)
		assert.Equal(t, float64(15000), res.CalculatedSalary)
	})

	t.Run("negative zero salary rejected", func(t *testing.T) {
		_, err := payroll.ProRate(0, 10, 30)
		assert.ErrorIs(t, err, payrollerrors.ErrSalaryRequired)
	})

	t.Run("negative zero days worked rejected", func(t *testing.T) {
		_, err := payroll.ProRate(30000, 0, 30)
		assert.ErrorIs(t, err, payrollerrors.ErrDaysWorkedRequired)
	})
}

func TestPayslipBreakdown(t *testing.T) {
	b := payroll.PayslipBreakdown(20000)

	assert.Equal(t, float64(20000), b.BasicSalary)
	assert.Equal(t, float64(8000), b.HRA)
	assert.Equal(t, float64(2000), b.DA)
	assert.Equal(t, float64(30000), b.GrossSalary)
	assert.Equal(t, float64(2400), b.ProvidentFund)
	assert.Equal(t, float64(3000), b.Tax)
	assert.Equal(t, float64(5400), b.TotalDeductions)
	assert.Equal(t, float64(24600), b.NetSalary)
}
