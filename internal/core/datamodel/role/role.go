package role

import "time"

type Role struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	Name       string    `gorm:"column:name;not null"`
	BaseSalary string    `gorm:"column:base_salary;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Role) TableName() string {
	return "roles"
}
