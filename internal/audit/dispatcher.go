package audit

import (
	"sync"

	"github.com/rs/zerolog"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink persists audit events.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink   Sink
	logger *zerolog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, logger *zerolog.Logger) *Dispatcher {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.logger.Error().Err(err).
				Str("action", ev.Action).
				Str("entity", ev.Entity).
				Str("entity_id", ev.EntityID).
				Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request path; events are dropped when the
// queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
