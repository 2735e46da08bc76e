// Package notification contains the due-reminder use case.
package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

type fakeMemberRepo struct {
	adapter.MemberRepository
	member *entity.Member
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	if f.member == nil || f.member.ID != id {
		return nil, domainerror.ErrMemberNotFound
	}
	return f.member, nil
}

type fakeQueue struct {
	adapter.NotificationQueueRepository
	jobs []*entity.NotificationJob
}

func (f *fakeQueue) Enqueue(_ context.Context, job *entity.NotificationJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

type fakeGate struct {
	claimed map[uuid.UUID]bool
}

func (f *fakeGate) FirstToday(_ context.Context, memberID uuid.UUID) (bool, error) {
	if f.claimed[memberID] {
		return false, nil
	}
	f.claimed[memberID] = true
	return true, nil
}

func fixture(due string) (*QueueDueReminderUseCase, *entity.Member, *fakeQueue) {
	member := entity.NewMember("CHT0001", "Raman", "9876543210", "", "")
	d, _ := decimal.NewFromString(due)
	member.DueAmount = d

	queue := &fakeQueue{}
	uc := NewQueueDueReminderUseCase(
		&fakeMemberRepo{member: member},
		queue,
		&fakeGate{claimed: map[uuid.UUID]bool{}},
	)
	return uc, member, queue
}

func TestQueueDueReminder(t *testing.T) {
	uc, member, queue := fixture("7200")

	out, err := uc.Execute(context.Background(), QueueDueReminderInput{MemberID: member.ID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !out.Queued {
		t.Fatal("reminder must be queued")
	}

	job := queue.jobs[0]
	if job.Channel != entity.NotificationChannelSMS {
		t.Errorf("channel = %s, want sms", job.Channel)
	}
	if job.Recipient != member.Phone {
		t.Errorf("recipient = %s, want member phone", job.Recipient)
	}
	if !strings.Contains(job.Message, "7200.00") {
		t.Errorf("message %q must include the due amount", job.Message)
	}
	if job.Status != entity.NotificationStatusPending {
		t.Errorf("status = %s, want pending", job.Status)
	}
}

func TestQueueDueReminder_SecondCallSameDayRejected(t *testing.T) {
	uc, member, queue := fixture("7200")

	if _, err := uc.Execute(context.Background(), QueueDueReminderInput{MemberID: member.ID}); err != nil {
		t.Fatalf("first call returned error: %v", err)
	}

	_, err := uc.Execute(context.Background(), QueueDueReminderInput{MemberID: member.ID})
	if !errors.Is(err, domainerror.ErrReminderAlreadySent) {
		t.Errorf("error = %v, want ErrReminderAlreadySent", err)
	}
	if len(queue.jobs) != 1 {
		t.Errorf("jobs queued = %d, want 1", len(queue.jobs))
	}
}

func TestQueueDueReminder_NoDueIsNoOp(t *testing.T) {
	uc, member, queue := fixture("0")

	out, err := uc.Execute(context.Background(), QueueDueReminderInput{MemberID: member.ID})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.Queued {
		t.Error("member with no due must not be reminded")
	}
	if len(queue.jobs) != 0 {
		t.Errorf("jobs queued = %d, want 0", len(queue.jobs))
	}
}
