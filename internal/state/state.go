package state

import (
	"context"
	"encoding/json"
	"fmt"

	"mployee/internal/company"
	"mployee/internal/employee"
	"mployee/internal/notice"
	"mployee/internal/reimbursement"
	"mployee/internal/storage"

	"go.uber.org/zap"
)

const (
	keyEmployees      = "employees"
	keyReimbursements = "reimbursements"
	keyNotices        = "notices"
	keySettings       = "settings"
)

// State owns the in-memory registries and mirrors them into a KV store as
// four JSON documents. Load hydrates from the store at startup; Flush writes
// all four documents back in one atomic batch so the store never holds a
// partially updated snapshot.
type State struct {
	Employees      *employee.Registry
	Reimbursements *reimbursement.Registry
	Notices        *notice.Registry
	Settings       *company.SettingsStore

	store  storage.KV
	prefix string
	logger *zap.Logger
}

func New(store storage.KV, prefix string, logger ...*zap.Logger) *State {
	l := zap.L().Named("state")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("state")
	}
	if prefix == "" {
		prefix = "mployee"
	}
	return &State{
		Employees:      employee.NewRegistry(),
		Reimbursements: reimbursement.NewRegistry(),
		Notices:        notice.NewRegistry(),
		Settings:       company.NewSettingsStore(),
		store:          store,
		prefix:         prefix,
		logger:         l,
	}
}

func (s *State) key(name string) string {
	return s.prefix + ":" + name
}

// Load hydrates every registry from the store. A missing key leaves the
// corresponding registry empty; a corrupt document is an error so a bad
// snapshot is never silently discarded.
func (s *State) Load(ctx context.Context) error {
	var employees []employee.Employee
	if err := s.load(ctx, keyEmployees, &employees); err != nil {
		return err
	}
	s.Employees.Hydrate(employees)

	var reimbursements []reimbursement.Reimbursement
	if err := s.load(ctx, keyReimbursements, &reimbursements); err != nil {
		return err
	}
	s.Reimbursements.Hydrate(reimbursements)

	var notices []notice.Notice
	if err := s.load(ctx, keyNotices, &notices); err != nil {
		return err
	}
	s.Notices.Hydrate(notices)

	var settings company.Settings
	if err := s.load(ctx, keySettings, &settings); err != nil {
		return err
	}
	s.Settings.Hydrate(settings)

	s.logger.Info("state hydrated",
		zap.Int("employees", s.Employees.Len()),
		zap.Int("reimbursements", len(s.Reimbursements.List())),
		zap.Int("notices", len(s.Notices.List())),
	)
	return nil
}

func (s *State) load(ctx context.Context, name string, out any) error {
	raw, ok, err := s.store.Get(ctx, s.key(name))
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Flush serializes all four documents and writes them in a single batch.
func (s *State) Flush(ctx context.Context) error {
	entries := make(map[string]string, 4)
	if err := s.put(entries, keyEmployees, s.Employees.List()); err != nil {
		return err
	}
	if err := s.put(entries, keyReimbursements, s.Reimbursements.List()); err != nil {
		return err
	}
	if err := s.put(entries, keyNotices, s.Notices.List()); err != nil {
		return err
	}
	if err := s.put(entries, keySettings, s.Settings.Current()); err != nil {
		return err
	}

	if err := s.store.SetAll(ctx, entries); err != nil {
		return fmt.Errorf("flush state: %w", err)
	}
	return nil
}

func (s *State) put(entries map[string]string, name string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	entries[s.key(name)] = string(raw)
	return nil
}
