package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the dead-letter list of each queue: dlq:<queue>.
const DLQPrefix = "dlq:"

// DeadJob is a job that will not be retried. Email jobs also carry the
// notice and recipient so a failed broadcast can be traced to its contact.
type DeadJob struct {
	Queue     string          `json:"queue"`
	Type      string          `json:"type"`
	NoticeID  uint            `json:"notice_id,omitempty"`
	Recipient string          `json:"recipient,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	Reason    string          `json:"reason"`
	Attempts  int             `json:"attempts"`
	FailedAt  time.Time       `json:"failed_at"`
}

func newDeadJob(queue string, job Job, reason string) DeadJob {
	d := DeadJob{
		Queue:    queue,
		Type:     job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		Attempts: job.Attempt,
		FailedAt: time.Now().UTC(),
	}
	if job.Type == JobTypeEmail {
		var e EmailJob
		if json.Unmarshal(job.Payload, &e) == nil {
			d.NoticeID, d.Recipient = e.NoticeID, e.To
		}
	}
	return d
}

// bury moves a job to its dead-letter list. Failures are logged only; the job
// is already off the work queue.
func bury(ctx context.Context, rdb redis.Cmdable, queue string, job Job, reason string) {
	dead := newDeadJob(queue, job, reason)
	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to marshal dead job")
		return
	}

	key := DLQPrefix + queue
	if err := rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Uint("notice_id", dead.NoticeID).Msg("dlq: push failed, job dropped")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("type", dead.Type).
		Uint("notice_id", dead.NoticeID).
		Str("recipient", dead.Recipient).
		Str("reason", reason).
		Int("attempts", dead.Attempts).
		Msg("dlq: job moved to dead letter queue")
}

// DLQLength returns the number of dead jobs for a queue.
func DLQLength(ctx context.Context, rdb redis.Cmdable, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}

// DeadJobs returns up to limit dead jobs for a queue, newest first.
func DeadJobs(ctx context.Context, rdb redis.Cmdable, queue string, limit int64) ([]DeadJob, error) {
	raws, err := rdb.LRange(ctx, DLQPrefix+queue, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]DeadJob, 0, len(raws))
	for _, raw := range raws {
		var d DeadJob
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
