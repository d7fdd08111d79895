// Package events publishes change notifications for jobs and companies.
// Publishing is best effort: callers log a failed publish and carry on.
package events

import (
	"context"
	"sync"
)

// Channel names. The event type doubles as the Redis channel.
const (
	JobCreated     = "EVENT_JOB_CREATED"
	JobUpdated     = "EVENT_JOB_UPDATED"
	JobDeleted     = "EVENT_JOB_DELETED"
	CompanyCreated = "EVENT_COMPANY_CREATED"
	CompanyUpdated = "EVENT_COMPANY_UPDATED"
	CompanyDeleted = "EVENT_COMPANY_DELETED"
)

// Event is the JSON payload sent on a channel.
type Event struct {
	Type          string `json:"type"`
	JobID         int64  `json:"jobId,omitempty"`
	CompanyHandle string `json:"companyHandle,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, ev)
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
