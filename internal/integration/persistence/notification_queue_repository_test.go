package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

func TestNotificationQueueRepository_GetPendingJobs(t *testing.T) {
	t.Run("should return pending jobs oldest first up to the limit", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationQueueRepository(db)

		oldest := entity.NewNotificationJob(entity.NotificationChannelSMS, "9876500001", "", "due reminder", nil)
		oldest.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
		middle := entity.NewNotificationJob(entity.NotificationChannelSMS, "9876500002", "", "due reminder", nil)
		middle.CreatedAt = time.Now().UTC().Add(-time.Hour)
		newest := entity.NewNotificationJob(entity.NotificationChannelEmail, "m@example.com", "Receipt", "receipt body", nil)

		for _, job := range []*entity.NotificationJob{newest, oldest, middle} {
			require.NoError(t, repo.Enqueue(context.Background(), job))
		}

		jobs, err := repo.GetPendingJobs(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, oldest.ID, jobs[0].ID)
		assert.Equal(t, middle.ID, jobs[1].ID)
	})

	t.Run("should not return sent jobs", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewNotificationQueueRepository(db)

		job := entity.NewNotificationJob(entity.NotificationChannelSMS, "9876500003", "", "due reminder", nil)
		require.NoError(t, repo.Enqueue(context.Background(), job))

		job.MarkProcessing()
		job.MarkSent()
		require.NoError(t, repo.Update(context.Background(), job))

		jobs, err := repo.GetPendingJobs(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}
