// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// MemberRepository defines the interface for member persistence operations.
type MemberRepository interface {
	// Create creates a new member.
	Create(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByIDs retrieves members for the given ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Member, error)

	// FindByUsername retrieves a member by its generated username.
	FindByUsername(ctx context.Context, username string) (*entity.Member, error)

	// ExistsByPhone checks whether the phone number is already registered.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// List retrieves all members ordered by username.
	List(ctx context.Context) ([]*entity.Member, error)

	// SetDueAmount overwrites the member's due accumulator. Used only by
	// the reconcile operation; normal flows move the due inside the
	// settlement and collection transactions.
	SetDueAmount(ctx context.Context, id uuid.UUID, due decimal.Decimal) error
}
