package group

import (
	"context"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// ListGroupsOutput contains the group list view.
type ListGroupsOutput struct {
	Groups []*entity.GroupListItem
}

// ListGroupsUseCase lists every group with member counts.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{groupRepo: groupRepo}
}

// Execute retrieves all groups.
func (uc *ListGroupsUseCase) Execute(ctx context.Context) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListGroupsOutput{Groups: groups}, nil
}
