package audit

import "go.uber.org/zap"

type Event struct {
	LawyerID uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher decouples audit writes from the request path: events go
// through a buffered channel to a single worker goroutine. A full
// queue drops the event rather than blocking the API.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.LawyerID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			zap.L().Error("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

// Dispatch is nil-safe so use cases under test run without an audit
// backend.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		zap.L().Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
