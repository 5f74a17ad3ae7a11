package reimbursement

import (
	"strconv"
	"strings"
	"sync"
	"time"

	reimbursementerrors "mployee/internal/reimbursement/errors"
)

// Registry is an append-mostly list in insertion order. Identifiers are
// derived from the creation instant in milliseconds; two adds within the
// same millisecond can collide, which matches the historical data and is
// deliberately not papered over here.
type Registry struct {
	mu      sync.RWMutex
	records []Reimbursement
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{now: time.Now}
}

// NewRegistryWithClock lets tests pin the creation instant.
func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{now: now}
}

func (r *Registry) Hydrate(records []Reimbursement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]Reimbursement, len(records))
	copy(r.records, records)
}

// Add validates the required fields, assigns a timestamp-derived ID and
// appends. Status defaults to Pending.
func (r *Registry) Add(rec Reimbursement) (Reimbursement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.EmployeeID) == "" {
		return Reimbursement{}, reimbursementerrors.ErrEmployeeRequired
	}
	if rec.Amount <= 0 {
		return Reimbursement{}, reimbursementerrors.ErrAmountRequired
	}
	if strings.TrimSpace(rec.Description) == "" {
		return Reimbursement{}, reimbursementerrors.ErrDescriptionRequired
	}

	rec.ID = strconv.FormatInt(r.now().UnixMilli(), 10)
	if rec.Status == "" {
		rec.Status = StatusPending
	}
	if rec.Date == "" {
		rec.Date = r.now().Format("2006-01-02")
	}

	r.records = append(r.records, rec)
	return rec, nil
}

func (r *Registry) List() []Reimbursement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Reimbursement, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Registry) Find(id string) (Reimbursement, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Reimbursement{}, false
}

// Delete removes the first record with the identifier and returns it with
// its position, for flush-failure compensation.
func (r *Registry) Delete(id string) (Reimbursement, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return rec, i, nil
		}
	}
	return Reimbursement{}, -1, reimbursementerrors.ErrReimbursementNotFound
}

func (r *Registry) restore(rec Reimbursement, pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos < 0 || pos > len(r.records) {
		pos = len(r.records)
	}
	r.records = append(r.records, Reimbursement{})
	copy(r.records[pos+1:], r.records[pos:])
	r.records[pos] = rec
}

func (r *Registry) dropLast() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) > 0 {
		r.records = r.records[:len(r.records)-1]
	}
}
