package httpserver

import (
	"sync"
	"time"

	"github.com/tinytelemetry/doseorb/internal/model"
)

// Publisher holds the most recent indicator frame. The UI loop writes it
// every frame; HTTP handlers read it.
type Publisher struct {
	mu        sync.RWMutex
	status    model.IndicatorStatus
	updatedAt time.Time
	frames    uint64
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish records a rendered frame.
func (p *Publisher) Publish(status model.IndicatorStatus) {
	p.mu.Lock()
	p.status = status
	p.updatedAt = time.Now()
	p.frames++
	p.mu.Unlock()
}

// Latest returns the last frame; ok is false before the first frame.
func (p *Publisher) Latest() (status model.IndicatorStatus, updatedAt time.Time, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status, p.updatedAt, p.frames > 0
}

// Frames returns how many frames have been published.
func (p *Publisher) Frames() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frames
}
