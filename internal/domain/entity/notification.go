// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationChannel identifies how a notification job is delivered.
type NotificationChannel string

const (
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelEmail NotificationChannel = "email"
)

// NotificationStatus represents the lifecycle state of a notification job.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// MaxNotificationAttempts is the number of delivery attempts before a job
// is marked failed permanently.
const MaxNotificationAttempts = 3

// NotificationJob represents a queued due-reminder SMS or receipt email.
// Delivery is fire-and-forget: a failed job never rolls back the ledger
// write that produced it.
type NotificationJob struct {
	ID        uuid.UUID
	Channel   NotificationChannel
	Recipient string // phone number or email address
	Subject   string // email only
	Message   string
	MemberID  *uuid.UUID
	Status    NotificationStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
	SentAt    *time.Time
}

// NewNotificationJob creates a pending NotificationJob.
func NewNotificationJob(channel NotificationChannel, recipient, subject, message string, memberID *uuid.UUID) *NotificationJob {
	now := time.Now().UTC()

	return &NotificationJob{
		ID:        uuid.New(),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		MemberID:  memberID,
		Status:    NotificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkProcessing transitions the job to processing and counts the attempt.
func (j *NotificationJob) MarkProcessing() {
	j.Status = NotificationStatusProcessing
	j.Attempts++
	j.UpdatedAt = time.Now().UTC()
}

// MarkSent transitions the job to sent.
func (j *NotificationJob) MarkSent() {
	now := time.Now().UTC()
	j.Status = NotificationStatusSent
	j.SentAt = &now
	j.UpdatedAt = now
}

// MarkFailed records a delivery failure. The job returns to pending until
// attempts are exhausted or the failure is permanent.
func (j *NotificationJob) MarkFailed(errMsg string, permanent bool) {
	j.LastError = errMsg
	if permanent || j.Attempts >= MaxNotificationAttempts {
		j.Status = NotificationStatusFailed
	} else {
		j.Status = NotificationStatusPending
	}
	j.UpdatedAt = time.Now().UTC()
}
