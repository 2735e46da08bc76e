package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// employeeRepository implements the adapter.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository instance.
func NewEmployeeRepository(db *gorm.DB) adapter.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// Create creates a new employee account in the database.
func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeModel := model.EmployeeFromEntity(employee)
	result := r.db.WithContext(ctx).Create(employeeModel)
	return result.Error
}

// FindByID retrieves an employee by its ID.
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employeeModel model.EmployeeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&employeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmployeeNotFound
		}
		return nil, result.Error
	}
	return employeeModel.ToEntity(), nil
}

// FindByEmployeeID retrieves an employee by its generated employee id.
func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*entity.Employee, error) {
	var employeeModel model.EmployeeModel
	result := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employeeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmployeeNotFound
		}
		return nil, result.Error
	}
	return employeeModel.ToEntity(), nil
}

// ExistsByPhone checks whether the phone number is already registered.
func (r *employeeRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("phone = ?", phone).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List retrieves all employees ordered by employee id.
func (r *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []model.EmployeeModel
	result := r.db.WithContext(ctx).Order("employee_id ASC").Find(&employeeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	employees := make([]*entity.Employee, len(employeeModels))
	for i, em := range employeeModels {
		employees[i] = em.ToEntity()
	}
	return employees, nil
}
