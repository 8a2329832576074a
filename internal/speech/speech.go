package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// EventKind classifies worker events.
type EventKind int

const (
	// EventStarted fires when playback of a text begins.
	EventStarted EventKind = iota
	// EventFinished fires when playback completes normally.
	EventFinished
	// EventFailed fires when the engine reports a playback failure.
	EventFailed
)

// Event is a typed message the worker emits for the foreground context. The
// worker never touches foreground-owned data directly.
type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// Engine produces audio for a text. Speak blocks until playback finishes or
// ctx is cancelled; cancellation is best effort.
type Engine interface {
	Speak(ctx context.Context, text string) error
}

// Queue is a single-worker, single-slot coalescing speech queue. A pending
// request is a single replaceable cell, not an unbounded queue: when
// requests arrive faster than the worker consumes them, only the most
// recently requested text is spoken. A new request also cancels any
// in-flight playback.
type Queue struct {
	engine Engine
	events chan Event

	mu         sync.Mutex
	cond       *sync.Cond
	pending    string
	hasPending bool
	cancel     context.CancelFunc // in-flight playback, nil when idle
	started    bool
}

// NewQueue builds a queue around the given engine. The worker is not started
// until Start or the first request.
func NewQueue(engine Engine) *Queue {
	q := &Queue{
		engine: engine,
		events: make(chan Event, 16),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Start launches the worker. It is idempotent: repeated calls never spawn a
// second worker. The worker lives until process exit.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true
	go q.run()
}

// Events returns the channel the worker reports on. Consumed by the
// foreground context at its own pace; events are dropped rather than ever
// blocking the worker.
func (q *Queue) Events() <-chan Event {
	return q.events
}

// RequestSpeak asks the worker to speak text. It never blocks: the request
// replaces any not-yet-started pending one, and any in-progress playback is
// cancelled so the newest text starts as soon as possible. Empty text is a
// no-op.
func (q *Queue) RequestSpeak(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	q.Start()

	q.mu.Lock()
	q.pending = text
	q.hasPending = true
	if q.cancel != nil {
		q.cancel()
	}
	q.cond.Signal()
	q.mu.Unlock()
}

func (q *Queue) run() {
	for {
		q.mu.Lock()
		for !q.hasPending {
			q.cond.Wait()
		}
		text := q.pending
		q.hasPending = false
		ctx, cancel := context.WithCancel(context.Background())
		q.cancel = cancel
		q.mu.Unlock()

		q.emit(Event{Kind: EventStarted, Text: text})
		err := q.engine.Speak(ctx, text)

		q.mu.Lock()
		q.cancel = nil
		q.mu.Unlock()
		cancel()

		switch {
		case err == nil:
			q.emit(Event{Kind: EventFinished, Text: text})
		case errors.Is(err, context.Canceled):
			// Superseded by a newer request; the worker loops around and
			// speaks it.
		default:
			q.emit(Event{Kind: EventFailed, Text: text, Err: err})
		}
	}
}

func (q *Queue) emit(ev Event) {
	select {
	case q.events <- ev:
	default:
	}
}
