package department

import (
	"errors"

	"gorm.io/gorm"

	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetAll() ([]*departmentDatamodel.Department, error) {
	var departments []*departmentDatamodel.Department
	if err := r.db.Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *Repository) GetByID(id string) (*departmentDatamodel.Department, error) {
	var department departmentDatamodel.Department
	err := r.db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}
