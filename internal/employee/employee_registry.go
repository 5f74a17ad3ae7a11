package employee

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	employeeerrors "mployee/internal/employee/errors"
)

const idPrefix = "EMP"

// Registry owns the in-memory employee list. Records keep their insertion
// order; an index map backs exact lookups. The registry never touches the
// store itself; persistence is the service layer's job.
type Registry struct {
	mu      sync.RWMutex
	records []Employee
	index   map[string]int
	next    int
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
		next:  1,
	}
}

// Hydrate replaces the registry contents with the persisted records and
// recomputes the allocation counter as max numeric suffix + 1.
func (r *Registry) Hydrate(records []Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make([]Employee, len(records))
	copy(r.records, records)
	r.index = make(map[string]int, len(records))
	r.next = 1
	for i, emp := range r.records {
		r.index[emp.ID] = i
		if n, ok := idSuffix(emp.ID); ok && n >= r.next {
			r.next = n + 1
		}
	}
}

// NextID returns the identifier the next registry-generated add would use.
// It never mutates the counter; only a successful Add advances it.
func (r *Registry) NextID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return formatID(r.next)
}

func (r *Registry) Add(emp Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(emp.Name) == "" {
		return employeeerrors.ErrNameRequired
	}
	if strings.TrimSpace(emp.ID) == "" {
		return employeeerrors.ErrIDRequired
	}
	if _, exists := r.index[emp.ID]; exists {
		return employeeerrors.ErrEmployeeIDTaken
	}

	r.insert(emp)
	return nil
}

// Update replaces the record wholesale. The identifier is immutable: the
// stored ID always stays the one the record was created under.
func (r *Registry) Update(id string, emp Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, exists := r.index[id]
	if !exists {
		return employeeerrors.ErrEmployeeNotFound
	}
	if strings.TrimSpace(emp.Name) == "" {
		return employeeerrors.ErrNameRequired
	}

	emp.ID = id
	r.records[pos] = emp
	return nil
}

// Delete removes the record and returns it so callers can restore it if a
// later step fails. Absent identifiers are an error, matching Update.
func (r *Registry) Delete(id string) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, exists := r.index[id]
	if !exists {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	removed := r.records[pos]
	r.records = append(r.records[:pos], r.records[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.records); i++ {
		r.index[r.records[i].ID] = i
	}
	return removed, nil
}

// Upsert replaces an existing record or appends a new one. Used by bulk
// import, where an already-known identifier means "overwrite".
func (r *Registry) Upsert(emp Employee) (created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(emp.Name) == "" {
		return false, employeeerrors.ErrNameRequired
	}
	if strings.TrimSpace(emp.ID) == "" {
		return false, employeeerrors.ErrIDRequired
	}

	if pos, exists := r.index[emp.ID]; exists {
		r.records[pos] = emp
		return false, nil
	}
	r.insert(emp)
	return true, nil
}

func (r *Registry) Find(id string) (Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.index[id]
	if !exists {
		return Employee{}, false
	}
	return r.records[pos], true
}

func (r *Registry) List() []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Search matches term case-insensitively as a substring of name, ID or
// designation; status, when set, is an exact-match AND condition. Relative
// order is preserved and the registry is never mutated.
func (r *Registry) Search(term, status string) []Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	out := make([]Employee, 0, len(r.records))
	for _, emp := range r.records {
		matchesTerm := term == "" ||
			strings.Contains(strings.ToLower(emp.Name), term) ||
			strings.Contains(strings.ToLower(emp.ID), term) ||
			strings.Contains(strings.ToLower(emp.Designation), term)
		matchesStatus := status == "" || emp.Status == status

		if matchesTerm && matchesStatus {
			out = append(out, emp)
		}
	}
	return out
}

// insert appends and advances the counter past any EMP-style suffix, so a
// registry-generated ID bumps it by one and a hand-entered higher ID can
// never collide with a later allocation. Callers hold the write lock.
func (r *Registry) insert(emp Employee) {
	r.index[emp.ID] = len(r.records)
	r.records = append(r.records, emp)
	if n, ok := idSuffix(emp.ID); ok && n >= r.next {
		r.next = n + 1
	}
}

// restore reinserts a previously deleted record at its old position. Used
// only for flush-failure compensation.
func (r *Registry) restore(emp Employee, pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos < 0 || pos > len(r.records) {
		pos = len(r.records)
	}
	r.records = append(r.records, Employee{})
	copy(r.records[pos+1:], r.records[pos:])
	r.records[pos] = emp
	for i := pos; i < len(r.records); i++ {
		r.index[r.records[i].ID] = i
	}
}

// position reports the current slice index of an identifier.
func (r *Registry) position(id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, exists := r.index[id]
	if !exists {
		return -1
	}
	return pos
}

func formatID(n int) string {
	return fmt.Sprintf("%s%03d", idPrefix, n)
}

func idSuffix(id string) (int, bool) {
	if !strings.HasPrefix(id, idPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
