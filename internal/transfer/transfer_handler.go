package transfer

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"mployee/internal/shared/apperror"
	"mployee/internal/shared/response"
	transfererrors "mployee/internal/transfer/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxImportBytes caps uploaded spreadsheets.
const maxImportBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("transfer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("transfer request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Import accepts a multipart .xlsx or .csv upload and applies its rows to
// the employee registry.
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, transfererrors.ErrFileRequired)
		return
	}
	if fileHeader.Size > maxImportBytes {
		h.writeServiceError(c, apperror.Validation("Import file exceeds the 10MB limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, apperror.IO(err))
		return
	}
	defer f.Close()

	var rows []Row
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, err = DecodeXLSX(f)
	case ".csv":
		rows, err = DecodeCSV(f)
	default:
		h.writeServiceError(c, transfererrors.ErrUnsupportedFile)
		return
	}
	if err != nil {
		h.logger.Warn("http import decode failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		h.writeServiceError(c, apperror.IO(err))
		return
	}

	imported, err := h.service.Import(c.Request.Context(), rows)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"imported": imported}, nil)
}

// Export streams the registry as a downloadable file. format defaults to
// xlsx.
func (h *Handler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
