package role

import (
	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
)

// Role is the reference-data shape served to the employee edit form's role
// picker. BaseSalary feeds the salary calculation and stays text-typed end
// to end.
type Role struct {
	ID         string `json:"ID"`
	Name       string `json:"name"`
	BaseSalary string `json:"baseSalary"`
}

type RolesResponse struct {
	Roles []Role `json:"roles"`
}

func FromDataModel(dm *roleDatamodel.Role) Role {
	return Role{
		ID:         dm.ID,
		Name:       dm.Name,
		BaseSalary: dm.BaseSalary,
	}
}
