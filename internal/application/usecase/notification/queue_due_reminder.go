// Package notification contains the due-reminder use case.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// QueueDueReminderInput identifies the member to remind.
type QueueDueReminderInput struct {
	MemberID uuid.UUID
}

// QueueDueReminderOutput reports whether a reminder was queued.
type QueueDueReminderOutput struct {
	Queued bool
	Job    *entity.NotificationJob
}

// QueueDueReminderUseCase queues a due-reminder SMS for a member. The
// gate guarantees at most one reminder per member per day even when
// several employees press the button at once.
type QueueDueReminderUseCase struct {
	memberRepo adapter.MemberRepository
	queue      adapter.NotificationQueueRepository
	gate       adapter.ReminderGate
}

// NewQueueDueReminderUseCase creates a new QueueDueReminderUseCase.
func NewQueueDueReminderUseCase(
	memberRepo adapter.MemberRepository,
	queue adapter.NotificationQueueRepository,
	gate adapter.ReminderGate,
) *QueueDueReminderUseCase {
	return &QueueDueReminderUseCase{
		memberRepo: memberRepo,
		queue:      queue,
		gate:       gate,
	}
}

// Execute queues the reminder unless the member has no outstanding due
// or already received one today.
func (uc *QueueDueReminderUseCase) Execute(ctx context.Context, input QueueDueReminderInput) (*QueueDueReminderOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	if !member.DueAmount.IsPositive() {
		return &QueueDueReminderOutput{Queued: false}, nil
	}

	first, err := uc.gate.FirstToday(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !first {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeReminderAlreadySent,
			"member already reminded today",
			domainerror.ErrReminderAlreadySent,
		)
	}

	message := fmt.Sprintf(
		"Dear %s, your pending chit due is Rs.%s. Kindly pay at the earliest. - Sendhur Chits",
		member.FullName, member.DueAmount.StringFixed(2),
	)

	job := entity.NewNotificationJob(entity.NotificationChannelSMS, member.Phone, "", message, &member.ID)
	if err := uc.queue.Enqueue(ctx, job); err != nil {
		return nil, err
	}

	slog.Info("due reminder queued",
		"member_id", member.ID,
		"username", member.Username,
		"due", member.DueAmount.String(),
	)

	return &QueueDueReminderOutput{Queued: true, Job: job}, nil
}
