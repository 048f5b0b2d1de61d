// Package event delivers identity lifecycle events to an outbound sink
// without ever blocking or failing the operation that produced them.
package event

import (
	"context"
	"sync"

	"github.com/akarpov/storefront/internal/logger"
	"github.com/akarpov/storefront/internal/model"
)

var _ model.EventEmitter = (*Emitter)(nil)

// Emitter queues events on a buffered channel and drains them to a Sink from
// a background goroutine. Delivery failures are logged and swallowed; a full
// buffer drops the event with an error log rather than blocking the caller.
type Emitter struct {
	sink   model.EventSink
	queue  chan model.IdentityEvent
	logger *logger.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

// NewEmitter creates an emitter with the given sink and buffer size.
func NewEmitter(sink model.EventSink, bufferSize int, logger *logger.Logger) *Emitter {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Emitter{
		sink:   sink,
		queue:  make(chan model.IdentityEvent, bufferSize),
		logger: logger,
	}
}

// Start launches the delivery goroutine. The context only bounds individual
// publish calls; shutdown is driven by Close so queued events still drain.
func (e *Emitter) Start(ctx context.Context) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for ev := range e.queue {
			if err := e.sink.Publish(ctx, ev); err != nil {
				e.logger.Error("event emitter: delivery failed",
					"event_type", ev.Type,
					"user_id", ev.UserID,
					"error", err.Error())
			}
		}
	}()
}

// Emit enqueues an event for delivery. It never blocks.
func (e *Emitter) Emit(ev model.IdentityEvent) {
	select {
	case e.queue <- ev:
	default:
		e.logger.Error("event emitter: buffer full, event dropped",
			"event_type", ev.Type,
			"user_id", ev.UserID)
	}
}

// Close stops accepting events and waits for the queue to drain.
func (e *Emitter) Close() {
	e.once.Do(func() {
		close(e.queue)
	})
	e.wg.Wait()
}

var _ model.EventSink = (*LogSink)(nil)

// LogSink publishes events to the application log. It stands in until a real
// broker transport is wired behind the Sink boundary.
type LogSink struct {
	logger *logger.Logger
}

// NewLogSink creates a sink writing to the given logger.
func NewLogSink(logger *logger.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Publish logs the event.
func (s *LogSink) Publish(_ context.Context, ev model.IdentityEvent) error {
	s.logger.Info("publishing identity event",
		"event_type", ev.Type,
		"user_id", ev.UserID,
		"email", ev.Email,
		"updated_fields", ev.UpdatedFields,
		"timestamp", ev.Timestamp)
	return nil
}
