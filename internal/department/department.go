package department

import (
	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
)

// Department is the reference-data shape served to the employee edit form's
// department picker.
type Department struct {
	ID   string `json:"ID"`
	Name string `json:"name"`
}

type DepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

func FromDataModel(dm *departmentDatamodel.Department) Department {
	return Department{
		ID:   dm.ID,
		Name: dm.Name,
	}
}
