package reimbursement

import (
	"context"

	"mployee/internal/shared/apperror"
	"mployee/internal/shared/contextutil"
	"mployee/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateReimbursementRequest) (ReimbursementResponse, error)
	GetAll(ctx context.Context) ([]ReimbursementResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	registry *Registry
	flusher  storage.Flusher
	logger   *zap.Logger
}

func NewService(registry *Registry, flusher storage.Flusher, logger ...*zap.Logger) Service {
	l := zap.L().Named("reimbursement.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reimbursement.service")
	}
	return &service{registry: registry, flusher: flusher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateReimbursementRequest) (ReimbursementResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create reimbursement requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Float64("amount", req.Amount),
	)

	rec, err := s.registry.Add(Reimbursement{
		EmployeeID:  req.EmployeeID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	})
	if err != nil {
		s.logger.Warn("create reimbursement rejected", zap.String("request_id", rid), zap.Error(err))
		return ReimbursementResponse{}, err
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.registry.dropLast()
		s.logger.Error("reimbursement flush failed", zap.Error(err))
		return ReimbursementResponse{}, apperror.IO(err)
	}

	s.logger.Info("create reimbursement success",
		zap.String("request_id", rid),
		zap.String("reimbursement_id", rec.ID),
	)
	return mapToResponse(rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]ReimbursementResponse, error) {
	records := s.registry.List()
	out := make([]ReimbursementResponse, len(records))
	for i, rec := range records {
		out[i] = mapToResponse(rec)
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	removed, pos, err := s.registry.Delete(id)
	if err != nil {
		return err
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.registry.restore(removed, pos)
		s.logger.Error("reimbursement flush failed", zap.Error(err))
		return apperror.IO(err)
	}

	s.logger.Info("delete reimbursement success", zap.String("reimbursement_id", id))
	return nil
}

func mapToResponse(rec Reimbursement) ReimbursementResponse {
	return ReimbursementResponse{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		Amount:      rec.Amount,
		Description: rec.Description,
		Date:        rec.Date,
		Status:      rec.Status,
	}
}
