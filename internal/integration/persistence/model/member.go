package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// MemberModel represents the members table in the database.
type MemberModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Username   string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	FullName   string          `gorm:"type:varchar(100);not null"`
	Phone      string          `gorm:"type:varchar(15);not null;uniqueIndex"`
	Email      string          `gorm:"type:varchar(255)"`
	Address    string          `gorm:"type:text"`
	DueAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	AadhaarURL string          `gorm:"type:text"`
	PANURL     string          `gorm:"type:text;column:pan_url"`
	PhotoURL   string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MemberModel.
func (MemberModel) TableName() string {
	return "members"
}

// ToEntity converts a MemberModel to a domain Member entity.
func (m *MemberModel) ToEntity() *entity.Member {
	return &entity.Member{
		ID:         m.ID,
		Username:   m.Username,
		FullName:   m.FullName,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		DueAmount:  m.DueAmount,
		AadhaarURL: m.AadhaarURL,
		PANURL:     m.PANURL,
		PhotoURL:   m.PhotoURL,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// MemberFromEntity creates a MemberModel from a domain Member entity.
func MemberFromEntity(member *entity.Member) *MemberModel {
	return &MemberModel{
		ID:         member.ID,
		Username:   member.Username,
		FullName:   member.FullName,
		Phone:      member.Phone,
		Email:      member.Email,
		Address:    member.Address,
		DueAmount:  member.DueAmount,
		AadhaarURL: member.AadhaarURL,
		PANURL:     member.PANURL,
		PhotoURL:   member.PhotoURL,
		CreatedAt:  member.CreatedAt,
		UpdatedAt:  member.UpdatedAt,
	}
}

// EmployeeModel represents the employees table in the database.
type EmployeeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(15);not null;uniqueIndex"`
	Role         string    `gorm:"type:varchar(10);not null;default:'employee'"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the EmployeeModel.
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToEntity converts an EmployeeModel to a domain Employee entity.
func (m *EmployeeModel) ToEntity() *entity.Employee {
	return &entity.Employee{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		FullName:     m.FullName,
		Phone:        m.Phone,
		Role:         entity.EmployeeRole(m.Role),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EmployeeFromEntity creates an EmployeeModel from a domain Employee entity.
func EmployeeFromEntity(employee *entity.Employee) *EmployeeModel {
	return &EmployeeModel{
		ID:           employee.ID,
		EmployeeID:   employee.EmployeeID,
		FullName:     employee.FullName,
		Phone:        employee.Phone,
		Role:         string(employee.Role),
		PasswordHash: employee.PasswordHash,
		CreatedAt:    employee.CreatedAt,
		UpdatedAt:    employee.UpdatedAt,
	}
}
