// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// GroupRepository defines the interface for chit group persistence operations.
type GroupRepository interface {
	// Create creates a new group together with its initial member seats,
	// in seat order, in a single transaction.
	Create(ctx context.Context, group *entity.Group, memberIDs []uuid.UUID) error

	// FindByID retrieves a group by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// FindWithMembers retrieves a group and its members ordered by seat position.
	FindWithMembers(ctx context.Context, id uuid.UUID) (*entity.GroupWithMembers, error)

	// List retrieves every group as list items with member counts.
	List(ctx context.Context) ([]*entity.GroupListItem, error)

	// MemberIDs returns the member ids of a group ordered by seat position.
	MemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)

	// CountMembers returns the number of seats currently taken in a group.
	CountMembers(ctx context.Context, groupID uuid.UUID) (int, error)

	// HasMember reports whether the member holds a seat in the group.
	HasMember(ctx context.Context, groupID, memberID uuid.UUID) (bool, error)

	// AddMember appends a member to the group's seat list. The capacity
	// check is re-done inside the transaction to keep members.length
	// within totalPeople under concurrent adds.
	AddMember(ctx context.Context, groupID, memberID uuid.UUID) error

	// GroupsOfMember returns the groups a member participates in.
	GroupsOfMember(ctx context.Context, memberID uuid.UUID) ([]*entity.GroupListItem, error)
}
