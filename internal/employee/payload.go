package employee

import "strings"

// TransportRecord is the flattened shape the persistence layer accepts:
// trimmed names, lowercased email, fixed-format calendar dates, salary as
// text, relations reduced to their identifiers.
type TransportRecord struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Gender       string  `json:"gender"`
	DateOfBirth  *string `json:"dateOfBirth"`
	HireDate     *string `json:"hireDate"`
	Salary       string  `json:"salary"`
	DepartmentID string  `json:"department_ID,omitempty"`
	RoleID       string  `json:"role_ID,omitempty"`
}

// BuildUpdatePayload normalizes a validated record into a TransportRecord.
// Callers must only hand over records that passed Validate; the builder
// itself never fails, it maps unusable values to null or their defaults.
func BuildUpdatePayload(rec *Employee) TransportRecord {
	if rec == nil {
		return TransportRecord{Salary: "0"}
	}

	payload := TransportRecord{
		FirstName:   strings.TrimSpace(rec.FirstName),
		LastName:    strings.TrimSpace(rec.LastName),
		Email:       strings.ToLower(strings.TrimSpace(rec.Email)),
		Gender:      rec.Gender,
		DateOfBirth: formatTransportDate(rec.DateOfBirth),
		HireDate:    formatTransportDate(rec.HireDate),
		Salary:      canonicalSalary(rec.Salary),
	}

	// References travel as bare identifiers and are dropped entirely when
	// no identifier is set, so the persistence layer never sees an empty key.
	if id := rec.Department.GetID(); id != "" {
		payload.DepartmentID = id
	}
	if id := rec.Role.GetID(); id != "" {
		payload.RoleID = id
	}

	return payload
}

// formatTransportDate reformats any accepted date representation to the fixed
// YYYY-MM-DD form; a missing or unparseable value maps to null.
func formatTransportDate(value string) *string {
	date, ok := ParseCalendarDate(value)
	if !ok {
		return nil
	}
	formatted := FormatCalendarDate(date)
	return &formatted
}
