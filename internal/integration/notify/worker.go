package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// Worker drains the notification queue and delivers jobs through the
// configured SMS and email senders.
type Worker struct {
	queue        adapter.NotificationQueueRepository
	smsSender    adapter.SMSSender
	emailSender  adapter.EmailSender
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(queue adapter.NotificationQueueRepository, smsSender adapter.SMSSender, emailSender adapter.EmailSender, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		smsSender:    smsSender,
		emailSender:  emailSender,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending jobs.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending notification jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing notification batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob delivers a single notification job.
func (w *Worker) processJob(ctx context.Context, job *entity.NotificationJob) {
	logger := slog.With(
		"job_id", job.ID,
		"channel", job.Channel,
		"recipient", job.Recipient,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	if err := w.deliver(ctx, job); err != nil {
		logger.Error("Failed to deliver notification", "error", err)

		var notifyErr *domainerror.NotificationError
		permanent := errors.As(err, &notifyErr) && notifyErr.IsPermanent()

		w.handleFailure(ctx, job, err, permanent)
		return
	}

	job.MarkSent()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Notification delivered")
}

// deliver routes the job to its channel's sender.
func (w *Worker) deliver(ctx context.Context, job *entity.NotificationJob) error {
	if job.Recipient == "" {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNoRecipient,
			"notification has no recipient",
			domainerror.ErrNoRecipient,
		)
	}

	switch job.Channel {
	case entity.NotificationChannelSMS:
		return w.smsSender.Send(ctx, job.Recipient, job.Message)
	case entity.NotificationChannelEmail:
		return w.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      job.Recipient,
			Subject: job.Subject,
			Text:    job.Message,
		})
	default:
		return domainerror.NewNotificationError(
			domainerror.ErrCodePermanentDeliveryFailure,
			"unknown notification channel",
			nil,
		)
	}
}

// handleFailure records a failed delivery.
func (w *Worker) handleFailure(ctx context.Context, job *entity.NotificationJob, err error, permanent bool) {
	job.MarkFailed(err.Error(), permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.NotificationStatusFailed {
		slog.Warn("Notification job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Notification job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
		)
	}
}

// ProcessNow processes all pending jobs immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
