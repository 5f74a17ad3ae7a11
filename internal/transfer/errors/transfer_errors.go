package transfererrors

import (
	"net/http"

	"mployee/internal/shared/apperror"
)

var (
	ErrNothingToExport = apperror.New(
		apperror.CodeValidation,
		"No employees to export",
		http.StatusBadRequest,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeValidation,
		"Unsupported export format",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeValidation,
		"Import file is required",
		http.StatusBadRequest,
	)
	ErrUnsupportedFile = apperror.New(
		apperror.CodeValidation,
		"Import file must be .xlsx or .csv",
		http.StatusBadRequest,
	)
)
