package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gtkpad369/LegalSch/internal/models"
)

// Sender delivers one message to one phone number.
type Sender interface {
	Send(ctx context.Context, toPhone, message string) error
}

// Dispatcher fans appointment notifications out to a worker goroutine.
// Fire-and-forget: delivery failures are logged, never returned to the
// booking flow.
type Dispatcher struct {
	sender Sender
	queue  chan job
}

type job struct {
	toPhone string
	message string
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for j := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := d.sender.Send(ctx, j.toPhone, j.message); err != nil {
			zap.L().Error("notification delivery failed",
				zap.String("to", j.toPhone),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// NotifyNewBooking tells the lawyer about a fresh public booking.
// Nil-safe; private appointments are not announced.
func (d *Dispatcher) NotifyNewBooking(ap *models.Appointment, lawyerPhone string) {
	if d == nil || !ap.IsPublic {
		return
	}

	msg := "Novo agendamento!\n" +
		"Data: " + ap.Date.Format("02/01/2006") + " " + ap.StartTime + "-" + ap.EndTime + "\n" +
		"Cliente: " + ap.ClientName + "\n" +
		"Motivo: " + ap.AppointmentReason

	select {
	case d.queue <- job{toPhone: lawyerPhone, message: msg}:
	default:
		zap.L().Warn("notification queue full, dropping message")
	}
}
