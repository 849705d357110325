package employee

import (
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
)

// Reference is a department or role relation: identifier plus the denormalized
// display name that comes back from an expanded read.
type Reference struct {
	ID   string `json:"ID"`
	Name string `json:"name,omitempty"`
}

// GetID returns the identifier or "" for a missing reference.
func (r *Reference) GetID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

// Employee is the record under edit or creation, in the shape the UI form
// works with: dates and salary as text, relations as expanded references.
// Date fields tolerate any calendar-date representation the transport layer
// may round-trip (plain ISO date, RFC 3339 timestamp); see ParseCalendarDate.
type Employee struct {
	ID          string     `json:"ID,omitempty"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Gender      string     `json:"gender"`
	DateOfBirth string     `json:"dateOfBirth"`
	HireDate    string     `json:"hireDate"`
	Salary      string     `json:"salary"`
	Department  *Reference `json:"department,omitempty"`
	Role        *Reference `json:"role,omitempty"`
}

// Clone returns a deep copy, used for baseline snapshots.
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Department != nil {
		dept := *e.Department
		clone.Department = &dept
	}
	if e.Role != nil {
		role := *e.Role
		clone.Role = &role
	}
	return &clone
}

// FullName is used in notifications and audit events.
func (e *Employee) FullName() string {
	name := e.FirstName + " " + e.LastName
	if name == " " {
		return "Unknown"
	}
	return name
}

// FromDataModel converts a persisted employee into the editable record shape.
func FromDataModel(dm *employeeDatamodel.Employee) *Employee {
	if dm == nil {
		return nil
	}

	rec := &Employee{
		ID:        dm.ID,
		FirstName: dm.FirstName,
		LastName:  dm.LastName,
		Email:     dm.Email,
		Gender:    dm.Gender,
		Salary:    dm.Salary,
	}

	if dm.DateOfBirth != nil {
		rec.DateOfBirth = FormatCalendarDate(*dm.DateOfBirth)
	}
	if dm.HireDate != nil {
		rec.HireDate = FormatCalendarDate(*dm.HireDate)
	}

	if dm.Department != nil {
		rec.Department = &Reference{ID: dm.Department.ID, Name: dm.Department.Name}
	} else if dm.DepartmentID != nil {
		rec.Department = &Reference{ID: *dm.DepartmentID}
	}

	if dm.Role != nil {
		rec.Role = &Reference{ID: dm.Role.ID, Name: dm.Role.Name}
	} else if dm.RoleID != nil {
		rec.Role = &Reference{ID: *dm.RoleID}
	}

	return rec
}
