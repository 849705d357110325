package role

import (
	"errors"

	"gorm.io/gorm"

	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetAll() ([]*roleDatamodel.Role, error) {
	var roles []*roleDatamodel.Role
	if err := r.db.Order("name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *Repository) GetByID(id string) (*roleDatamodel.Role, error) {
	var role roleDatamodel.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}
