package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobQueued = "queued"
	JobSent   = "sent"
	JobFailed = "failed"
	JobDead   = "dead"
)

// NotificationJob is one outbox row.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    string
	Attempts  int32
	LastError *string
}

// Retry reschedules a failed delivery, or buries it once maxAttempts is reached.
func (j *NotificationJob) Retry(cause error, now time.Time, backoff time.Duration, maxAttempts int32) {
	j.Attempts++
	msg := cause.Error()
	j.LastError = &msg
	if j.Attempts >= maxAttempts {
		j.Status = JobDead
		return
	}
	j.Status = JobFailed
	j.RunAt = now.Add(backoff * time.Duration(1<<(j.Attempts-1)))
}

func (j *NotificationJob) Delivered() {
	j.Attempts++
	j.Status = JobSent
	j.LastError = nil
}
