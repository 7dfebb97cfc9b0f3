package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// EmailJob is the payload of a QueueEmail job: one notice for one contact.
type EmailJob struct {
	NoticeID uint   `json:"notice_id"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// Mailer is satisfied by infra.Mailer.
type Mailer interface {
	SendNotice(to, subject, body string) error
}

type EmailWorker struct {
	mailer Mailer
}

func NewEmailWorker(mailer Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var job EmailJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return Permanent(fmt.Errorf("email_worker: invalid payload: %w", err))
	}
	if job.To == "" {
		log.Warn().Uint("notice_id", job.NoticeID).Msg("email_worker: empty recipient, skipping")
		return nil
	}

	if err := w.mailer.SendNotice(job.To, job.Subject, job.Body); err != nil {
		return err
	}
	log.Info().Uint("notice_id", job.NoticeID).Str("to", job.To).Msg("email_worker: notice sent")
	return nil
}
