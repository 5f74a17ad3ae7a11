package payroll

import (
	payrollerrors "mployee/internal/payroll/errors"
)

// Fixed-percentage salary model. These multipliers and their order of
// operations are load-bearing: payslip figures are derived from them and
// changing either would silently change every net salary.
const (
	HRARate = 0.40
	DARate  = 0.10
	PFRate  = 0.12
	TaxRate = 0.10

	DefaultPeriodDays = 30
)

type ProRateResult struct {
	MonthlySalary    float64 `json:"monthlySalary"`
	DailyRate        float64 `json:"dailyRate"`
	DaysWorked       int     `json:"daysWorked"`
	TotalDays        int     `json:"totalDays"`
	CalculatedSalary float64 `json:"calculatedSalary"`
	Deduction        float64 `json:"deduction"`
}

type PayslipBreakdownResult struct {
	BasicSalary     float64 `json:"basicSalary"`
	HRA             float64 `json:"hra"`
	DA              float64 `json:"da"`
	GrossSalary     float64 `json:"grossSalary"`
	ProvidentFund   float64 `json:"providentFund"`
	Tax             float64 `json:"tax"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
}

// ProRate computes the partial-period salary. totalDays falls back to a
// 30-day period when non-positive; a non-positive salary or days-worked is
// a caller error, never silently clamped. Results are unrounded: rounding
// happens at presentation only.
func ProRate(monthlySalary float64, daysWorked, totalDays int) (ProRateResult, error) {
	if monthlySalary <= 0 {
		return ProRateResult{}, payrollerrors.ErrSalaryRequired
	}
	if daysWorked <= 0 {
		return ProRateResult{}, payrollerrors.ErrDaysWorkedRequired
	}
	if totalDays <= 0 {
		totalDays = DefaultPeriodDays
	}

	dailyRate := monthlySalary / float64(totalDays)
	calculated := dailyRate * float64(daysWorked)

	return ProRateResult{
		MonthlySalary:    monthlySalary,
		DailyRate:        dailyRate,
		DaysWorked:       daysWorked,
		TotalDays:        totalDays,
		CalculatedSalary: calculated,
		Deduction:        monthlySalary - calculated,
	}, nil
}

// PayslipBreakdown decomposes a monthly salary into the fixed earnings and
// deduction components.
func PayslipBreakdown(monthlySalary float64) PayslipBreakdownResult {
	basic := monthlySalary
	hra := basic * HRARate
	da := basic * DARate
	gross := basic + hra + da
	pf := basic * PFRate
	tax := gross * TaxRate
	totalDeductions := pf + tax

	return PayslipBreakdownResult{
		BasicSalary:     basic,
		HRA:             hra,
		DA:              da,
		GrossSalary:     gross,
		ProvidentFund:   pf,
		Tax:             tax,
		TotalDeductions: totalDeductions,
		NetSalary:       gross - totalDeductions,
	}
}
