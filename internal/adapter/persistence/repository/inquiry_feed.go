package repository

import (
	"sync"

	"cctv_estimator/internal/domain/entities"
	"cctv_estimator/internal/usecase/interfaces"
)

// inquiryFeed fans inquiry snapshots out to subscribers of one process.
type inquiryFeed struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]interfaces.InquiryListener
}

func newInquiryFeed() *inquiryFeed {
	return &inquiryFeed{listeners: make(map[int]interfaces.InquiryListener)}
}

func (f *inquiryFeed) subscribe(l interfaces.InquiryListener) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = l
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.listeners, id)
			f.mu.Unlock()
		})
	}
}

func (f *inquiryFeed) active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners) > 0
}

// publish calls every listener with its own copy of the snapshot. Listeners
// run outside the lock so they may unsubscribe from inside the callback.
func (f *inquiryFeed) publish(snapshot []entities.Inquiry) {
	f.mu.Lock()
	ls := make([]interfaces.InquiryListener, 0, len(f.listeners))
	for _, l := range f.listeners {
		ls = append(ls, l)
	}
	f.mu.Unlock()

	for _, l := range ls {
		cp := make([]entities.Inquiry, len(snapshot))
		copy(cp, snapshot)
		l(cp)
	}
}
