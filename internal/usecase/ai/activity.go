package ai

import (
	"sync"
	"sync/atomic"
)

// Activity counts external service calls in flight across the orchestrator,
// chat sessions and template conversions. It drives the processing flag and
// is independent of the run status.
type Activity struct {
	inflight atomic.Int64
}

func NewActivity() *Activity {
	return &Activity{}
}

// Begin records a call and returns the func that ends it.
func (a *Activity) Begin() func() {
	if a == nil {
		return func() {}
	}
	a.inflight.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { a.inflight.Add(-1) })
	}
}

// Processing reports whether any call is in flight.
func (a *Activity) Processing() bool {
	if a == nil {
		return false
	}
	return a.inflight.Load() > 0
}

// InFlight returns the number of calls in flight.
func (a *Activity) InFlight() int64 {
	if a == nil {
		return 0
	}
	return a.inflight.Load()
}
