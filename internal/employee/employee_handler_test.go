package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mployee/internal/employee"
	employeeerrors "mployee/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn      func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn      func(ctx context.Context, term, status string) ([]employee.EmployeeResponse, error)
	getOptionsFn  func(ctx context.Context) ([]employee.EmployeeOption, error)
	getByIDFn     func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	nextIDFn      func(ctx context.Context) employee.NextIDResponse
	updateFn      func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn      func(ctx context.Context, id string) error
	attachPhotoFn func(ctx context.Context, id, dataURI string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, term, status string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, term, status)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) NextID(ctx context.Context) employee.NextIDResponse {
	return f.nextIDFn(ctx)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeEmployeeService) AttachPhoto(ctx context.Context, id, dataURI string) error {
	return f.attachPhotoFn(ctx, id, dataURI)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Asha Rao", req.Name)
				return employee.EmployeeResponse{ID: "EMP001", Name: req.Name, Status: employee.StatusActive}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Asha Rao"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "EMP001", got.ID)
	})

	t.Run("negative missing name", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative duplicate id maps to conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeIDTaken
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"id":"EMP001","name":"Asha Rao"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("negative unexpected error stays generic", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("boom")
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Asha Rao"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("passes filters through and paginates", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, term, status string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "smith", term)
				assert.Equal(t, employee.StatusActive, status)
				return []employee.EmployeeResponse{{ID: "EMP001", Name: "John Smith"}}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=smith&status=Active", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
	})

	t.Run("sorts by salary descending", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, term, status string) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{ID: "EMP001", MonthlySalary: 20000},
					{ID: "EMP002", MonthlySalary: 50000},
				}, nil
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?sort_by=salary&order=desc", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got []employee.EmployeeResponse
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "EMP002", got[0].ID)
	})
}

func TestEmployeeHandler_GetNextID(t *testing.T) {
	svc := &fakeEmployeeService{
		nextIDFn: func(ctx context.Context) employee.NextIDResponse {
			return employee.NextIDResponse{NextID: "EMP009"}
		},
	}
	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/next-id", nil)

	h.GetNextID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.JSONEq(t, `{"nextId":"EMP009"}`, string(env.Data))
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/EMP404", nil)
		c.Params = gin.Params{{Key: "id", Value: "EMP404"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "EMP001", id)
			return nil
		},
	}
	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees/EMP001", nil)
	c.Params = gin.Params{{Key: "id", Value: "EMP001"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
