// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// EmployeeRepository defines the interface for employee persistence operations.
type EmployeeRepository interface {
	// Create creates a new employee account.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByID retrieves an employee by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)

	// FindByEmployeeID retrieves an employee by its generated employee id (login name).
	FindByEmployeeID(ctx context.Context, employeeID string) (*entity.Employee, error)

	// ExistsByPhone checks whether the phone number is already registered.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// List retrieves all employees ordered by employee id.
	List(ctx context.Context) ([]*entity.Employee, error)
}
