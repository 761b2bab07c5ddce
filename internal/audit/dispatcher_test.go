package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "loan_created", Entity: "loan", EntityID: "1"})
	d.Dispatch(Event{Action: "loan_returned", Entity: "loan", EntityID: "1"})
	d.Close()

	if assert.Len(t, sink.events, 2) {
		assert.Equal(t, "loan_created", sink.events[0].Action)
		assert.Equal(t, "loan_returned", sink.events[1].Action)
	}
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	sink := &memorySink{err: errors.New("db down")}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	assert.Len(t, sink.events, 2)
}

func TestDispatcher_CloseTwice(t *testing.T) {
	d := NewDispatcher(&memorySink{}, nil)
	d.Close()
	assert.NotPanics(t, d.Close)
}
