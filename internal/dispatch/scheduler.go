package dispatch

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartSweeper runs Sweep every interval until the scheduler is shut down.
// A slow sweep is never overlapped by the next one.
func StartSweeper(d *Dispatcher, every time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), every)
			defer cancel()
			res, err := d.Sweep(ctx)
			if err != nil {
				log.Printf("[dispatch] sweep: %v", err)
				return
			}
			if res.Created > 0 || res.Offered > 0 {
				log.Printf("[dispatch] sweep created=%d offered=%d", res.Created, res.Offered)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	s.Start()
	log.Printf("[dispatch] offer sweep every %s", every)
	return s, nil
}
