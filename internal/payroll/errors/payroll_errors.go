package payrollerrors

import (
	"net/http"

	"mployee/internal/shared/apperror"
)

var (
	ErrSalaryRequired = apperror.New(
		apperror.CodeValidation,
		"Monthly salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrDaysWorkedRequired = apperror.New(
		apperror.CodeValidation,
		"Days worked must be greater than zero",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeValidation,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)
)
