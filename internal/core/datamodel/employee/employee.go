package employee

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
)

// Employee is the persistence shape. Dates are calendar dates, salary is a
// decimal kept as text so the transport value round-trips unchanged.
type Employee struct {
	ID           string                           `gorm:"primaryKey;type:uuid"`
	FirstName    string                           `gorm:"column:first_name;not null"`
	LastName     string                           `gorm:"column:last_name;not null"`
	Email        string                           `gorm:"column:email;uniqueIndex;not null"`
	Gender       string                           `gorm:"column:gender"`
	DateOfBirth  *time.Time                       `gorm:"column:date_of_birth;type:date"`
	HireDate     *time.Time                       `gorm:"column:hire_date;type:date"`
	Salary       string                           `gorm:"column:salary;not null;default:0"`
	DepartmentID *string                          `gorm:"column:department_id;type:uuid"`
	RoleID       *string                          `gorm:"column:role_id;type:uuid"`
	Department   *departmentDatamodel.Department  `gorm:"foreignKey:DepartmentID"`
	Role         *roleDatamodel.Role              `gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time                        `gorm:"column:created_at"`
	UpdatedAt    time.Time                        `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
