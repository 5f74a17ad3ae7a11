package notice

import (
	"context"

	"mployee/internal/shared/apperror"
	"mployee/internal/shared/contextutil"
	"mployee/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error)
	GetAll(ctx context.Context) ([]NoticeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	registry *Registry
	flusher  storage.Flusher
	logger   *zap.Logger
}

func NewService(registry *Registry, flusher storage.Flusher, logger ...*zap.Logger) Service {
	l := zap.L().Named("notice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notice.service")
	}
	return &service{registry: registry, flusher: flusher, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create notice requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
		zap.String("priority", req.Priority),
	)

	rec, err := s.registry.Add(Notice{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		Date:     req.Date,
	})
	if err != nil {
		s.logger.Warn("create notice rejected", zap.String("request_id", rid), zap.Error(err))
		return NoticeResponse{}, err
	}

	if err := s.flusher.Flush(ctx); err != nil {
		s.registry.dropLast()
		s.logger.Error("notice flush failed", zap.Error(err))
		return NoticeResponse{}, apperror.IO(err)
	}

	s.logger.Info("create notice success",
		zap.String("request_id", rid),
		zap.String("notice_id", rec.ID),
	)
	return mapToResponse(rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]NoticeResponse, error) {
	records := s.registry.List()
	out := make([]NoticeResponse, len(records))
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
		s.logger.Error("notice flush failed", zap.Error(err))
		return apperror.IO(err)
	}

	s.logger.Info("delete notice success", zap.String("notice_id", id))
	return nil
}

func mapToResponse(rec Notice) NoticeResponse {
	return NoticeResponse{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		Priority:  rec.Priority,
		Date:      rec.Date,
		CreatedAt: rec.CreatedAt,
	}
}
