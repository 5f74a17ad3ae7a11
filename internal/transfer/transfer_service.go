package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mployee/internal/company"
	"mployee/internal/employee"
	"mployee/internal/shared/apperror"
	"mployee/internal/shared/contextutil"
	"mployee/internal/storage"
	transfererrors "mployee/internal/transfer/errors"

	"go.uber.org/zap"
)

// CompanyInfo supplies the settings printed on the roster PDF header.
type CompanyInfo interface {
	Current() company.Settings
}

// ExportFile is an encoded download: content plus the headers the client
// needs to save it.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

type Service interface {
	Import(ctx context.Context, rows []Row) (int, error)
	Export(ctx context.Context, format string) (ExportFile, error)
}

type service struct {
	registry *employee.Registry
	flusher  storage.Flusher
	com      CompanyInfo
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(registry *employee.Registry, flusher storage.Flusher, com CompanyInfo, logger ...*zap.Logger) Service {
	l := zap.L().Named("transfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.service")
	}
	return &service{registry: registry, flusher: flusher, com: com, now: time.Now, logger: l}
}

// Import upserts every row carrying a name and reports how many were
// applied. Rows without a name are skipped, not errors. The whole batch is
// flushed once; on a flush failure the registry is rolled back to its
// pre-import contents.
func (s *service) Import(ctx context.Context, rows []Row) (int, error) {
	rid := contextutil.GetRequestID(ctx)

	prior := s.registry.List()
	imported := 0
	for _, row := range rows {
		if strings.TrimSpace(row["Name"]) == "" {
			continue
		}
		emp := rowToEmployee(row)
		if emp.ID == "" {
			emp.ID = s.registry.NextID()
		}
		applyImportDefaults(&emp)
		if _, err := s.registry.Upsert(emp); err != nil {
			s.registry.Hydrate(prior)
			return 0, err
		}
		imported++
	}

	if imported > 0 {
		if err := s.flusher.Flush(ctx); err != nil {
			s.registry.Hydrate(prior)
			s.logger.Error("import flush failed", zap.Error(err))
			return 0, apperror.IO(err)
		}
	}

	s.logger.Info("import employees success",
		zap.String("request_id", rid),
		zap.Int("imported", imported),
		zap.Int("rows", len(rows)),
	)
	return imported, nil
}

func (s *service) Export(ctx context.Context, format string) (ExportFile, error) {
	records := s.registry.List()
	if len(records) == 0 {
		return ExportFile{}, transfererrors.ErrNothingToExport
	}

	stamp := s.now().Format("2006-01-02")
	switch format {
	case "xlsx", "":
		rows := make([]Row, len(records))
		for i, emp := range records {
			rows[i] = employeeToRow(emp)
		}
		content, err := EncodeXLSX(rows)
		if err != nil {
			return ExportFile{}, apperror.IO(err)
		}
		return ExportFile{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    fmt.Sprintf("employees_%s.xlsx", stamp),
		}, nil
	case "csv":
		rows := make([]Row, len(records))
		for i, emp := range records {
			rows[i] = employeeToRow(emp)
		}
		content, err := EncodeCSV(rows)
		if err != nil {
			return ExportFile{}, apperror.IO(err)
		}
		return ExportFile{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("employees_%s.csv", stamp),
		}, nil
	case "pdf":
		content, err := renderRosterPDF(records, s.com.Current(), s.now())
		if err != nil {
			return ExportFile{}, apperror.IO(err)
		}
		return ExportFile{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("employees_%s.pdf", stamp),
		}, nil
	default:
		return ExportFile{}, transfererrors.ErrUnknownFormat
	}
}

func applyImportDefaults(emp *employee.Employee) {
	if emp.Status == "" {
		emp.Status = employee.StatusActive
	}
	if emp.PerformanceLastMonth == "" {
		emp.PerformanceLastMonth = employee.DefaultRating
	}
	if emp.PerformanceLastQtr == "" {
		emp.PerformanceLastQtr = employee.DefaultRating
	}
	if emp.PerformanceLastYear == "" {
		emp.PerformanceLastYear = employee.DefaultRating
	}
	if emp.PerformanceOverall == "" {
		emp.PerformanceOverall = employee.DefaultRating
	}
}
