// Package member contains member management use cases.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// usernameCounterSeed puts the first generated username at CHT0001.
const usernameCounterSeed = 0

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// CreateMemberInput contains the data needed to register a member.
type CreateMemberInput struct {
	FullName   string
	Phone      string
	Email      string
	Address    string
	AadhaarURL string
	PANURL     string
	PhotoURL   string
}

// CreateMemberOutput contains the result of the registration.
type CreateMemberOutput struct {
	Member *entity.Member
}

// CreateMemberUseCase registers a member with a sequentially generated
// username.
type CreateMemberUseCase struct {
	memberRepo  adapter.MemberRepository
	counterRepo adapter.CounterRepository
}

// NewCreateMemberUseCase creates a new CreateMemberUseCase.
func NewCreateMemberUseCase(memberRepo adapter.MemberRepository, counterRepo adapter.CounterRepository) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo:  memberRepo,
		counterRepo: counterRepo,
	}
}

// Execute validates the member data, allocates the next username from
// the counter and persists the member.
func (uc *CreateMemberUseCase) Execute(ctx context.Context, input CreateMemberInput) (*CreateMemberOutput, error) {
	if input.FullName == "" || input.Phone == "" {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMissingMemberFields,
			"full name and phone are required",
			nil,
		)
	}

	if !phonePattern.MatchString(input.Phone) {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeInvalidPhone,
			"phone must be a 10 digit number",
			domainerror.ErrInvalidPhone,
		)
	}

	taken, err := uc.memberRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMemberPhoneExists,
			"phone number already registered to a member",
			domainerror.ErrMemberPhoneExists,
		)
	}

	seq, err := uc.counterRepo.Next(ctx, adapter.CounterMemberUsername, usernameCounterSeed)
	if err != nil {
		return nil, err
	}
	username := fmt.Sprintf("CHT%04d", seq)

	member := entity.NewMember(username, input.FullName, input.Phone, input.Email, input.Address)
	member.AadhaarURL = input.AadhaarURL
	member.PANURL = input.PANURL
	member.PhotoURL = input.PhotoURL

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	slog.Info("member registered", "member_id", member.ID, "username", member.Username)

	return &CreateMemberOutput{Member: member}, nil
}
