package reimbursementerrors

import (
	"net/http"

	"mployee/internal/shared/apperror"
)

var (
	ErrReimbursementNotFound = apperror.New(
		apperror.CodeNotFound,
		"Reimbursement not found",
		http.StatusNotFound,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeValidation,
		"Employee is required",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeValidation,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrDescriptionRequired = apperror.New(
		apperror.CodeValidation,
		"Description is required",
		http.StatusBadRequest,
	)
)
