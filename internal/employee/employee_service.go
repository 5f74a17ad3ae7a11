package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	employeeerrors "mployee/internal/employee/errors"
	"mployee/internal/shared/apperror"
	"mployee/internal/shared/contextutil"
	"mployee/internal/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "mployee:cache:employee_options"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, term, status string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	NextID(ctx context.Context) NextIDResponse
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	AttachPhoto(ctx context.Context, id, dataURI string) error
}

type service struct {
	registry *Registry
	flusher  storage.Flusher
	rdb      *redis.Client
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(registry *Registry, flusher storage.Flusher, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		registry: registry,
		flusher:  flusher,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	emp := fromCreateRequest(req)
	if emp.ID == "" {
		emp.ID = s.registry.NextID()
	}

	if err := s.registry.Add(emp); err != nil {
		s.logger.Warn("create employee rejected", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.flush(ctx); err != nil {
		// Roll the record back so in-memory state matches the store.
		_, _ = s.registry.Delete(emp.ID)
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID),
	)
	return mapToResponse(emp), nil
}

func (s *service) GetAll(ctx context.Context, term, status string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("term", term),
		zap.String("status", status),
	)
	return mapToListResponse(s.registry.Search(term, status)), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var opts []EmployeeOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		records := s.registry.List()
		opts := make([]EmployeeOption, len(records))
		for i, emp := range records {
			opts[i] = EmployeeOption{
				ID:    emp.ID,
				Label: fmt.Sprintf("%s (%s)", emp.Name, emp.ID),
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, time.Hour)
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, ok := s.registry.Find(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(emp), nil
}

func (s *service) NextID(ctx context.Context) NextIDResponse {
	return NextIDResponse{NextID: s.registry.NextID()}
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	prev, ok := s.registry.Find(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	emp := fromUpdateRequest(id, req)
	if err := s.registry.Update(id, emp); err != nil {
		return EmployeeResponse{}, err
	}

	if err := s.flush(ctx); err != nil {
		_ = s.registry.Update(id, prev)
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	pos := s.registry.position(id)
	removed, err := s.registry.Delete(id)
	if err != nil {
		return err
	}

	if err := s.flush(ctx); err != nil {
		s.registry.restore(removed, pos)
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) AttachPhoto(ctx context.Context, id, dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:") {
		return apperror.Validation("Photo must be a data URI")
	}

	prev, ok := s.registry.Find(id)
	if !ok {
		return employeeerrors.ErrEmployeeNotFound
	}

	emp := prev
	emp.Photo = dataURI
	if err := s.registry.Update(id, emp); err != nil {
		return err
	}

	if err := s.flush(ctx); err != nil {
		_ = s.registry.Update(id, prev)
		return err
	}

	s.logger.Info("employee photo attached", zap.String("employee_id", id))
	return nil
}

// flush mirrors the whole application state after a mutation. The sequence
// is always mutate, persist, re-derive; a failure surfaces as IO_ERROR and
// the caller compensates the mutation.
func (s *service) flush(ctx context.Context) error {
	if err := s.flusher.Flush(ctx); err != nil {
		s.logger.Error("state flush failed", zap.Error(err))
		return apperror.IO(err)
	}
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func fromCreateRequest(req CreateEmployeeRequest) Employee {
	return normalize(Employee{
		ID:                   strings.TrimSpace(req.ID),
		Name:                 strings.TrimSpace(req.Name),
		ContactNumber:        req.ContactNumber,
		Email:                req.Email,
		Address:              req.Address,
		Designation:          req.Designation,
		DateOfJoining:        req.DateOfJoining,
		DateOfBirth:          req.DateOfBirth,
		AadharNumber:         req.AadharNumber,
		PANNumber:            req.PANNumber,
		EPFNumber:            req.EPFNumber,
		Status:               req.Status,
		MonthlySalary:        req.MonthlySalary,
		AnnualSalary:         req.AnnualSalary,
		PerformanceLastMonth: req.PerformanceLastMonth,
		PerformanceLastQtr:   req.PerformanceLastQtr,
		PerformanceLastYear:  req.PerformanceLastYear,
		PerformanceOverall:   req.PerformanceOverall,
		Photo:                req.Photo,
	})
}

func fromUpdateRequest(id string, req UpdateEmployeeRequest) Employee {
	return normalize(Employee{
		ID:                   id,
		Name:                 strings.TrimSpace(req.Name),
		ContactNumber:        req.ContactNumber,
		Email:                req.Email,
		Address:              req.Address,
		Designation:          req.Designation,
		DateOfJoining:        req.DateOfJoining,
		DateOfBirth:          req.DateOfBirth,
		AadharNumber:         req.AadharNumber,
		PANNumber:            req.PANNumber,
		EPFNumber:            req.EPFNumber,
		Status:               req.Status,
		MonthlySalary:        req.MonthlySalary,
		AnnualSalary:         req.AnnualSalary,
		PerformanceLastMonth: req.PerformanceLastMonth,
		PerformanceLastQtr:   req.PerformanceLastQtr,
		PerformanceLastYear:  req.PerformanceLastYear,
		PerformanceOverall:   req.PerformanceOverall,
		Photo:                req.Photo,
	})
}

// normalize fills the enumerated defaults the same way the import path
// does: Active status, Good ratings.
func normalize(emp Employee) Employee {
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	if emp.PerformanceLastMonth == "" {
		emp.PerformanceLastMonth = DefaultRating
	}
	if emp.PerformanceLastQtr == "" {
		emp.PerformanceLastQtr = DefaultRating
	}
	if emp.PerformanceLastYear == "" {
		emp.PerformanceLastYear = DefaultRating
	}
	if emp.PerformanceOverall == "" {
		emp.PerformanceOverall = DefaultRating
	}
	return emp
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   emp.ID,
		Name:                 emp.Name,
		ContactNumber:        emp.ContactNumber,
		Email:                emp.Email,
		Address:              emp.Address,
		Designation:          emp.Designation,
		DateOfJoining:        emp.DateOfJoining,
		DateOfBirth:          emp.DateOfBirth,
		AadharNumber:         emp.AadharNumber,
		PANNumber:            emp.PANNumber,
		EPFNumber:            emp.EPFNumber,
		Status:               emp.Status,
		MonthlySalary:        emp.MonthlySalary,
		AnnualSalary:         emp.AnnualSalary,
		PerformanceLastMonth: emp.PerformanceLastMonth,
		PerformanceLastQtr:   emp.PerformanceLastQtr,
		PerformanceLastYear:  emp.PerformanceLastYear,
		PerformanceOverall:   emp.PerformanceOverall,
		Photo:                emp.Photo,
	}
}

func mapToListResponse(records []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(records))
	for i, emp := range records {
		res[i] = mapToResponse(emp)
	}
	return res
}
