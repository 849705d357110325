package employee

import (
	"errors"

	"gorm.io/gorm"

	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetAll returns employees with department and role preloaded, optionally
// filtered, ordered by name for stable listings.
func (r *Repository) GetAll(departmentID, roleID string) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee

	query := r.db.
		Preload("Department").
		Preload("Role").
		Order("last_name ASC, first_name ASC")

	if departmentID != "" {
		query = query.Where("department_id = ?", departmentID)
	}
	if roleID != "" {
		query = query.Where("role_id = ?", roleID)
	}

	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID returns nil without an error when no record matches, so the
// service layer owns the not-found semantics.
func (r *Repository) GetByID(id string) (*employeeDatamodel.Employee, error) {
	var employee employeeDatamodel.Employee

	err := r.db.
		Preload("Department").
		Preload("Role").
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *Repository) Create(employee *employeeDatamodel.Employee) error {
	return r.db.Create(employee).Error
}

func (r *Repository) Update(employee *employeeDatamodel.Employee) error {
	return r.db.Save(employee).Error
}

func (r *Repository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
}
