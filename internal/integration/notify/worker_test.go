package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

type fakeQueue struct {
	jobs []*entity.NotificationJob
}

func (q *fakeQueue) Enqueue(_ context.Context, job *entity.NotificationJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.NotificationJob, error) {
	var pending []*entity.NotificationJob
	for _, job := range q.jobs {
		if job.Status == entity.NotificationStatusPending {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(_ context.Context, _ *entity.NotificationJob) error {
	return nil
}

type fakeSMSSender struct {
	sent []string
	err  error
}

func (s *fakeSMSSender) Send(_ context.Context, toPhoneNumber, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, toPhoneNumber)
	return nil
}

type fakeEmailSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeEmailSender) Send(_ context.Context, input adapter.SendEmailInput) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, input)
	return nil
}

func newTestWorker(queue *fakeQueue, sms *fakeSMSSender, email *fakeEmailSender) *Worker {
	return NewWorker(queue, sms, email, DefaultWorkerConfig())
}

func TestWorker_ProcessNow(t *testing.T) {
	t.Run("should deliver sms and email jobs through their channels", func(t *testing.T) {
		queue := &fakeQueue{}
		sms := &fakeSMSSender{}
		email := &fakeEmailSender{}

		smsJob := entity.NewNotificationJob(entity.NotificationChannelSMS, "9876543210", "", "your due is pending", nil)
		emailJob := entity.NewNotificationJob(entity.NotificationChannelEmail, "member@example.com", "Payment receipt", "receipt body", nil)
		require.NoError(t, queue.Enqueue(context.Background(), smsJob))
		require.NoError(t, queue.Enqueue(context.Background(), emailJob))

		newTestWorker(queue, sms, email).ProcessNow(context.Background())

		assert.Equal(t, []string{"9876543210"}, sms.sent)
		require.Len(t, email.sent, 1)
		assert.Equal(t, "member@example.com", email.sent[0].To)
		assert.Equal(t, "Payment receipt", email.sent[0].Subject)
		assert.Equal(t, entity.NotificationStatusSent, smsJob.Status)
		assert.Equal(t, entity.NotificationStatusSent, emailJob.Status)
		assert.NotNil(t, smsJob.SentAt)
	})

	t.Run("should retry temporary failures until attempts are exhausted", func(t *testing.T) {
		queue := &fakeQueue{}
		sms := &fakeSMSSender{err: domainerror.NewNotificationError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"gateway timed out",
			nil,
		)}

		job := entity.NewNotificationJob(entity.NotificationChannelSMS, "9876543210", "", "your due is pending", nil)
		require.NoError(t, queue.Enqueue(context.Background(), job))

		worker := newTestWorker(queue, sms, &fakeEmailSender{})

		worker.ProcessNow(context.Background())
		assert.Equal(t, entity.NotificationStatusPending, job.Status)
		assert.Equal(t, 1, job.Attempts)

		worker.ProcessNow(context.Background())
		worker.ProcessNow(context.Background())
		assert.Equal(t, entity.NotificationStatusFailed, job.Status)
		assert.Equal(t, entity.MaxNotificationAttempts, job.Attempts)
		assert.Contains(t, job.LastError, "gateway timed out")
	})

	t.Run("should fail permanently on the first permanent error", func(t *testing.T) {
		queue := &fakeQueue{}
		email := &fakeEmailSender{err: domainerror.NewNotificationError(
			domainerror.ErrCodePermanentDeliveryFailure,
			"invalid recipient address",
			nil,
		)}

		job := entity.NewNotificationJob(entity.NotificationChannelEmail, "not-an-address", "Payment receipt", "receipt body", nil)
		require.NoError(t, queue.Enqueue(context.Background(), job))

		newTestWorker(queue, &fakeSMSSender{}, email).ProcessNow(context.Background())

		assert.Equal(t, entity.NotificationStatusFailed, job.Status)
		assert.Equal(t, 1, job.Attempts)
	})

	t.Run("should fail permanently when the job has no recipient", func(t *testing.T) {
		queue := &fakeQueue{}
		sms := &fakeSMSSender{}

		job := entity.NewNotificationJob(entity.NotificationChannelSMS, "", "", "your due is pending", nil)
		require.NoError(t, queue.Enqueue(context.Background(), job))

		newTestWorker(queue, sms, &fakeEmailSender{}).ProcessNow(context.Background())

		assert.Empty(t, sms.sent)
		assert.Equal(t, entity.NotificationStatusFailed, job.Status)
	})
}
