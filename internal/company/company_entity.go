package company

import "sync"

// Settings is the singleton company record. It has no identifier and is
// replaced wholesale on every save.
type Settings struct {
	CompanyName    string `json:"companyName"`
	EmployerName   string `json:"employerName"`
	ContactNumber  string `json:"contactNumber"`
	CompanyAddress string `json:"companyAddress"`
	// Logo is a self-contained data URI, or empty when none was uploaded.
	Logo string `json:"logo,omitempty"`
}

// SettingsStore guards the in-memory singleton.
type SettingsStore struct {
	mu       sync.RWMutex
	settings Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

func (s *SettingsStore) Hydrate(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *SettingsStore) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Replace swaps the whole record and returns the previous one so callers
// can restore it when a flush fails.
func (s *SettingsStore) Replace(settings Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.settings
	s.settings = settings
	return prev
}
