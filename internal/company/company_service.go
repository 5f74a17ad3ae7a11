package company

import (
	"context"
	"strings"

	"mployee/internal/shared/apperror"
	"mployee/internal/shared/contextutil"
	"mployee/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
	AttachLogo(ctx context.Context, dataURI string) error
}

type service struct {
	store   *SettingsStore
	flusher storage.Flusher
	logger  *zap.Logger
}

func NewService(store *SettingsStore, flusher storage.Flusher, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{store: store, flusher: flusher, logger: l}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	return mapToResponse(s.store.Current()), nil
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update settings requested", zap.String("request_id", rid))

	settings := Settings{
		CompanyName:    strings.TrimSpace(req.CompanyName),
		EmployerName:   req.EmployerName,
		ContactNumber:  req.ContactNumber,
		CompanyAddress: req.CompanyAddress,
		Logo:           req.Logo,
	}

	prev := s.store.Replace(settings)
	if err := s.flusher.Flush(ctx); err != nil {
		s.store.Replace(prev)
		s.logger.Error("settings flush failed", zap.Error(err))
		return SettingsResponse{}, apperror.IO(err)
	}

	s.logger.Info("update settings success", zap.String("request_id", rid))
	return mapToResponse(settings), nil
}

func (s *service) AttachLogo(ctx context.Context, dataURI string) error {
	if !strings.HasPrefix(dataURI, "data:") {
		return apperror.Validation("Logo must be a data URI")
	}

	settings := s.store.Current()
	settings.Logo = dataURI

	prev := s.store.Replace(settings)
	if err := s.flusher.Flush(ctx); err != nil {
		s.store.Replace(prev)
		s.logger.Error("logo flush failed", zap.Error(err))
		return apperror.IO(err)
	}

	s.logger.Info("company logo attached")
	return nil
}

func mapToResponse(settings Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:    settings.CompanyName,
		EmployerName:   settings.EmployerName,
		ContactNumber:  settings.ContactNumber,
		CompanyAddress: settings.CompanyAddress,
		Logo:           settings.Logo,
	}
}
