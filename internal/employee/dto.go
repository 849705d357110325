package employee

// EmployeeDTO is the raw form payload for create and update requests, in the
// same shape the detail form edits: all scalar values as text, relations as
// references carrying at least an identifier.
type EmployeeDTO struct {
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

// ToRecord converts the request payload into the record shape the validator,
// diff engine and payload builder operate on.
func (dto EmployeeDTO) ToRecord() *Employee {
	return &Employee{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		Gender:      dto.Gender,
		DateOfBirth: dto.DateOfBirth,
		HireDate:    dto.HireDate,
		Salary:      dto.Salary,
		Department:  dto.Department,
		Role:        dto.Role,
	}
}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

// SalaryResponse mirrors the function-call result shape: a single decimal
// value serialized as text.
type SalaryResponse struct {
	Value string `json:"value"`
}
