// Package collection contains collection recording use cases.
package collection

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// ListCollectionsInput represents the input for listing collections.
// Exactly one of GroupID or MemberID should be set; when both are set the
// group filter wins.
type ListCollectionsInput struct {
	GroupID  *uuid.UUID
	MemberID *uuid.UUID
}

// ListCollectionsOutput represents the output of listing collections.
type ListCollectionsOutput struct {
	Records []*entity.CollectionRecord
}

// ListCollectionsUseCase retrieves collection records for a group or member.
type ListCollectionsUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewListCollectionsUseCase creates a new ListCollectionsUseCase instance.
func NewListCollectionsUseCase(collectionRepo adapter.CollectionRepository) *ListCollectionsUseCase {
	return &ListCollectionsUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute lists collection records, newest first.
func (uc *ListCollectionsUseCase) Execute(ctx context.Context, input ListCollectionsInput) (*ListCollectionsOutput, error) {
	var (
		records []*entity.CollectionRecord
		err     error
	)

	switch {
	case input.GroupID != nil:
		records, err = uc.collectionRepo.ListByGroup(ctx, *input.GroupID)
	case input.MemberID != nil:
		records, err = uc.collectionRepo.ListByMember(ctx, *input.MemberID)
	default:
		records = []*entity.CollectionRecord{}
	}
	if err != nil {
		return nil, err
	}

	return &ListCollectionsOutput{Records: records}, nil
}
