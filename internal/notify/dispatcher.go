package notify

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

// Sender delivers an order summary.
type Sender interface {
	Send(ctx context.Context, s Summary) error
}

// Dispatcher sends summaries off the caller's path. Failures are logged to
// the dispatcher's own sink and never surfaced to the purchaser; a failed
// notification must not fail the order.
type Dispatcher struct {
	sender  Sender
	logger  *log.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher wraps sender. A nil logger discards failure logs.
func NewDispatcher(sender Sender, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dispatcher{sender: sender, logger: logger, timeout: 30 * time.Second}
}

// Dispatch queues the summary for delivery and returns immediately.
func (d *Dispatcher) Dispatch(s Summary) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sender.Send(ctx, s); err != nil {
			d.logger.Printf("order notification failed: order=%s error=%v", s.OrderID, err)
		}
	}()
}

// Wait blocks until all in-flight notifications finish. Used at shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
