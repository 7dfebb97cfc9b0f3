package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const sweepInterval = 10 * time.Minute

// NoticeExpirer is satisfied by repository.NoticeRepository.
type NoticeExpirer interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// StartNoticeSweep launches a goroutine that switches off notices whose
// expires_at has passed. It stops when ctx is cancelled.
func StartNoticeSweep(ctx context.Context, notices NoticeExpirer) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		log.Info().Dur("interval", sweepInterval).Msg("notice_sweep: started")
		sweepExpired(ctx, notices, time.Now())

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("notice_sweep: shutting down")
				return
			case now := <-ticker.C:
				sweepExpired(ctx, notices, now)
			}
		}
	}()
}

func sweepExpired(ctx context.Context, notices NoticeExpirer, now time.Time) {
	n, err := notices.DeactivateExpired(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("notice_sweep: failed to deactivate expired notices")
		return
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("notice_sweep: expired notices deactivated")
	}
}
