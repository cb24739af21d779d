package repository

import (
	"sort"
	"sync"
	"time"

	"cctv_estimator/internal/domain/entities"
)

// monotonicClock never hands out a timestamp earlier than the previous one,
// so ordering by CreatedAt matches creation order on this process even if the
// wall clock steps backwards.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	if now == nil {
		now = time.Now
	}
	return &monotonicClock{now: now}
}

func (c *monotonicClock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UTC()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}

// observe moves the clock forward to t when t is later than anything seen.
func (c *monotonicClock) observe(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.After(c.last) {
		c.last = t.UTC()
	}
}

// coalesceInquiry replaces a missing or unknown status with pending and a
// missing or unknown type with one inferred from the estimate details.
func coalesceInquiry(in entities.Inquiry) entities.Inquiry {
	if !in.Status.Valid() {
		in.Status = entities.InquiryStatusPending
	}
	if !in.Type.Valid() {
		in.Type = entities.InquiryTypeContact
		if in.EstimateDetails != nil {
			in.Type = entities.InquiryTypeEstimate
		}
	}
	return in
}

func sortNewestFirst(list []entities.Inquiry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
