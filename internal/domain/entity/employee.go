// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeRole represents the role of an employee in the system.
type EmployeeRole string

const (
	EmployeeRoleAdmin    EmployeeRole = "admin"
	EmployeeRoleEmployee EmployeeRole = "employee"
)

// Employee represents a staff account. Employees record collections and
// ledger entries; admins additionally manage groups, members and salaries.
type Employee struct {
	ID           uuid.UUID
	EmployeeID   string // sequentially generated, e.g. EMP007
	FullName     string
	Phone        string
	Role         EmployeeRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEmployee creates a new Employee entity.
func NewEmployee(employeeID, fullName, phone, passwordHash string, role EmployeeRole) *Employee {
	now := time.Now().UTC()

	return &Employee{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		FullName:     fullName,
		Phone:        phone,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the employee holds the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == EmployeeRoleAdmin
}
