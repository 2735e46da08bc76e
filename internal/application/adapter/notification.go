// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// NotificationQueueRepository defines the interface for the persisted
// notification queue consumed by the background worker.
type NotificationQueueRepository interface {
	// Enqueue stores a new pending job.
	Enqueue(ctx context.Context, job *entity.NotificationJob) error

	// GetPendingJobs retrieves up to limit pending jobs, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error)

	// Update persists a job's status transition.
	Update(ctx context.Context, job *entity.NotificationJob) error
}

// SMSSender sends a text message through the configured gateway.
// Delivery is fire-and-forget from the ledger's perspective.
type SMSSender interface {
	Send(ctx context.Context, toPhoneNumber, message string) error
}

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender sends receipt emails.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) error
}

// ReminderGate rate-limits due reminders so one member receives at most
// one reminder per day, across processes.
type ReminderGate interface {
	// FirstToday reports whether this is the first reminder attempt for
	// the member today, and claims the slot if so.
	FirstToday(ctx context.Context, memberID uuid.UUID) (bool, error)
}
