package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"remit/internal/notify"
)

type delivery struct {
	recipient string
	payload   notify.Payload
}

// dispatch fans a burst of notifications out in the background. The caller's
// response never waits on delivery, a failure for one recipient does not
// affect the others, and the whole burst is bounded by the notify timeout so a
// stalled push endpoint cannot stall request processing. Failures are logged
// and counted, nothing more: state already committed stays committed.
func (e *Engine) dispatch(requestID string, deliveries []delivery) {
	if len(deliveries) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.notifyTimeout)
		defer cancel()

		var g errgroup.Group
		for _, d := range deliveries {
			d := d
			g.Go(func() error {
				if err := e.notifier.Notify(ctx, d.recipient, d.payload); err != nil {
					e.logger.Warn("notification delivery failed",
						"request_id", requestID,
						"error", err,
					)
				}
				return nil
			})
		}
		_ = g.Wait()

		if e.dispatched != nil {
			e.dispatched <- struct{}{}
		}
	}()
}
