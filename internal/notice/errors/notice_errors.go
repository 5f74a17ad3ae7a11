package noticeerrors

import (
	"net/http"

	"mployee/internal/shared/apperror"
)

var (
	ErrNoticeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notice not found",
		http.StatusNotFound,
	)
	ErrTitleRequired = apperror.New(
		apperror.CodeValidation,
		"Title is required",
		http.StatusBadRequest,
	)
	ErrContentRequired = apperror.New(
		apperror.CodeValidation,
		"Content is required",
		http.StatusBadRequest,
	)
)
