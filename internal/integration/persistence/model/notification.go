package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// NotificationJobModel represents the notification_jobs table: the
// persisted queue drained by the background delivery worker.
type NotificationJobModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Channel   string     `gorm:"type:varchar(10);not null"`
	Recipient string     `gorm:"type:varchar(255);not null"`
	Subject   string     `gorm:"type:varchar(255)"`
	Message   string     `gorm:"type:text;not null"`
	MemberID  *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts  int        `gorm:"not null;default:0"`
	LastError string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
	SentAt    *time.Time `gorm:"type:timestamp"`
}

// TableName returns the table name for the NotificationJobModel.
func (NotificationJobModel) TableName() string {
	return "notification_jobs"
}

// ToEntity converts a NotificationJobModel to a domain NotificationJob entity.
func (m *NotificationJobModel) ToEntity() *entity.NotificationJob {
	return &entity.NotificationJob{
		ID:        m.ID,
		Channel:   entity.NotificationChannel(m.Channel),
		Recipient: m.Recipient,
		Subject:   m.Subject,
		Message:   m.Message,
		MemberID:  m.MemberID,
		Status:    entity.NotificationStatus(m.Status),
		Attempts:  m.Attempts,
		LastError: m.LastError,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		SentAt:    m.SentAt,
	}
}

// NotificationJobFromEntity creates a NotificationJobModel from a domain NotificationJob entity.
func NotificationJobFromEntity(job *entity.NotificationJob) *NotificationJobModel {
	return &NotificationJobModel{
		ID:        job.ID,
		Channel:   string(job.Channel),
		Recipient: job.Recipient,
		Subject:   job.Subject,
		Message:   job.Message,
		MemberID:  job.MemberID,
		Status:    string(job.Status),
		Attempts:  job.Attempts,
		LastError: job.LastError,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
		SentAt:    job.SentAt,
	}
}
