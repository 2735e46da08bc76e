package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// notificationQueueRepository implements the adapter.NotificationQueueRepository interface.
type notificationQueueRepository struct {
	db *gorm.DB
}

// NewNotificationQueueRepository creates a new notification queue repository instance.
func NewNotificationQueueRepository(db *gorm.DB) adapter.NotificationQueueRepository {
	return &notificationQueueRepository{
		db: db,
	}
}

// Enqueue stores a new pending job.
func (r *notificationQueueRepository) Enqueue(ctx context.Context, job *entity.NotificationJob) error {
	return r.db.WithContext(ctx).Create(model.NotificationJobFromEntity(job)).Error
}

// GetPendingJobs retrieves up to limit pending jobs, oldest first.
func (r *notificationQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var jobModels []model.NotificationJobModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.NotificationStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.NotificationJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}

// Update persists a job's status transition.
func (r *notificationQueueRepository) Update(ctx context.Context, job *entity.NotificationJob) error {
	return r.db.WithContext(ctx).Save(model.NotificationJobFromEntity(job)).Error
}
