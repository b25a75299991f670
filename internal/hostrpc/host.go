package hostrpc

import (
	"errors"
	"sync"

	"github.com/tinytelemetry/doseorb/internal/model"
)

// ErrClosed is returned when a tick arrives after the host was closed.
var ErrClosed = errors.New("hostrpc: host closed")

// DefaultTickQueue bounds how many undelivered ticks may be pending.
const DefaultTickQueue = 64

// RemoteHost is a model.Host fed by a game client over RPC. Reads return the
// most recently pushed snapshot.
type RemoteHost struct {
	mu    sync.RWMutex
	state model.HostSnapshot
	ticks uint64

	tickCh    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewRemoteHost creates a host with an empty (orb-less) state.
func NewRemoteHost(queue int) *RemoteHost {
	if queue <= 0 {
		queue = DefaultTickQueue
	}
	return &RemoteHost{
		tickCh: make(chan struct{}, queue),
		done:   make(chan struct{}),
	}
}

// Ticks delivers one value per tick notification, in arrival order.
func (h *RemoteHost) Ticks() <-chan struct{} { return h.tickCh }

// Done is closed when the host is closed.
func (h *RemoteHost) Done() <-chan struct{} { return h.done }

// Close stops accepting ticks. Pending ticks stay readable.
func (h *RemoteHost) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// PushTick queues a tick notification and returns the running count.
func (h *RemoteHost) PushTick() (uint64, error) {
	select {
	case <-h.done:
		return 0, ErrClosed
	default:
	}

	select {
	case h.tickCh <- struct{}{}:
	case <-h.done:
		return 0, ErrClosed
	}

	h.mu.Lock()
	h.ticks++
	n := h.ticks
	h.mu.Unlock()
	return n, nil
}

// SetState replaces the current snapshot.
func (h *RemoteHost) SetState(s model.HostSnapshot) {
	s.DrainRates = append([]float64(nil), s.DrainRates...)
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (h *RemoteHost) Snapshot() model.HostSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s := h.state
	s.DrainRates = append([]float64(nil), s.DrainRates...)
	return s
}

func (h *RemoteHost) Prayer() model.ResourceState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Resource
}

func (h *RemoteHost) ActiveDrainRates() []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.ActiveDrainRates()
}

func (h *RemoteHost) Restorative() model.RestorativeProfile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Restoratives
}

func (h *RemoteHost) OrbBounds() (model.Rect, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Orb, h.state.OrbVisible
}

func (h *RemoteHost) MousePosition() model.Point {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state.Pointer
}
