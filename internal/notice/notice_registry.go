package notice

import (
	"strconv"
	"strings"
	"sync"
	"time"

	noticeerrors "mployee/internal/notice/errors"
)

// Registry keeps notices in insertion order. Identifiers share the
// timestamp-derived scheme with reimbursements, same collision caveat.
type Registry struct {
	mu      sync.RWMutex
	records []Notice
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{now: time.Now}
}

func NewRegistryWithClock(now func() time.Time) *Registry {
	return &Registry{now: now}
}

func (r *Registry) Hydrate(records []Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make([]Notice, len(records))
	copy(r.records, records)
}

func (r *Registry) Add(rec Notice) (Notice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.Title) == "" {
		return Notice{}, noticeerrors.ErrTitleRequired
	}
	if strings.TrimSpace(rec.Content) == "" {
		return Notice{}, noticeerrors.ErrContentRequired
	}

	now := r.now()
	rec.ID = strconv.FormatInt(now.UnixMilli(), 10)
	rec.CreatedAt = now.UTC().Format(time.RFC3339)
	if rec.Priority == "" {
		rec.Priority = PriorityLow
	}
	if rec.Date == "" {
		rec.Date = now.Format("2006-01-02")
	}

	r.records = append(r.records, rec)
	return rec, nil
}

func (r *Registry) List() []Notice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Notice, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Registry) Delete(id string) (Notice, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return rec, i, nil
		}
	}
	return Notice{}, -1, noticeerrors.ErrNoticeNotFound
}

func (r *Registry) restore(rec Notice, pos int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos < 0 || pos > len(r.records) {
		pos = len(r.records)
	}
	r.records = append(r.records, Notice{})
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
