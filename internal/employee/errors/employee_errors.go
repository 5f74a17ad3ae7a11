package employeeerrors

import (
	"net/http"

	"mployee/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDTaken = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeValidation,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrIDRequired = apperror.New(
		apperror.CodeValidation,
		"Employee ID is required",
		http.StatusBadRequest,
	)
)
