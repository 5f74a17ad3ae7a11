package employee

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"mployee/internal/shared/apperror"
	"mployee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxPhotoBytes caps uploaded photos; they are stored inline as data URIs.
const maxPhotoBytes = 2 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("q")
	status := c.Query("status")

	resp, err := h.service.GetAll(ctx, term, status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	sortBy := c.Query("sort_by")
	order := c.DefaultQuery("order", "asc")
	if sortBy != "" {
		sortEmployees(resp, sortBy, order == "desc")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if pageSize < 1 {
		pageSize = 50
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetNextID(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.NextID(c.Request.Context()), nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// sortEmployees orders the list projection in place. Unknown sort keys
// leave the registry order untouched.
func sortEmployees(list []EmployeeResponse, sortBy string, desc bool) {
	var less func(a, b EmployeeResponse) bool
	switch sortBy {
	case "name":
		less = func(a, b EmployeeResponse) bool { return a.Name < b.Name }
	case "id":
		less = func(a, b EmployeeResponse) bool { return a.ID < b.ID }
	case "designation":
		less = func(a, b EmployeeResponse) bool { return a.Designation < b.Designation }
	case "salary":
		less = func(a, b EmployeeResponse) bool { return a.MonthlySalary < b.MonthlySalary }
	default:
		return
	}
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

// UploadPhoto accepts a multipart image and stores it on the employee as a
// self-contained data URI, the same shape the export/import paths carry.
func (h *Handler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		h.writeServiceError(c, apperror.RequiredField("Photo"))
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		h.writeServiceError(c, apperror.Validation("Photo exceeds the 2MB limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, apperror.IO(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.writeServiceError(c, apperror.IO(err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	if err := h.service.AttachPhoto(c.Request.Context(), id, dataURI); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"photo": true}, nil)
}
