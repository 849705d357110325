package employee

import "strings"

// HasUnsavedChanges reports whether the working copy differs from the
// baseline snapshot. The comparison is deliberately asymmetric per field
// class: the transport layer round-trips values through serialization that
// can change representation without changing meaning, so naive deep equality
// would flag every load/save cycle as dirty.
//
//   - name, email and gender compare as exact strings
//   - dates compare by calendar day only
//   - salary compares by canonical string, absent normalizing to "0"
//   - department and role compare by identifier, display names ignored
//
// With no baseline or no working copy there is nothing meaningful to compare,
// so the record counts as clean.
func HasUnsavedChanges(baseline, working *Employee) bool {
	if baseline == nil || working == nil {
		return false
	}

	if baseline.FirstName != working.FirstName ||
		baseline.LastName != working.LastName ||
		baseline.Email != working.Email ||
		baseline.Gender != working.Gender {
		return true
	}

	if !sameCalendarDate(baseline.DateOfBirth, working.DateOfBirth) {
		return true
	}
	if !sameCalendarDate(baseline.HireDate, working.HireDate) {
		return true
	}

	if canonicalSalary(baseline.Salary) != canonicalSalary(working.Salary) {
		return true
	}

	return baseline.Department.GetID() != working.Department.GetID() ||
		baseline.Role.GetID() != working.Role.GetID()
}

// sameCalendarDate treats two values as equal iff they denote the same
// year-month-day. Two unparseable values are equal; parseable never equals
// unparseable.
func sameCalendarDate(a, b string) bool {
	dateA, okA := ParseCalendarDate(a)
	dateB, okB := ParseCalendarDate(b)
	if okA != okB {
		return false
	}
	if !okA {
		return true
	}
	return dateA.Equal(dateB)
}

// canonicalSalary normalizes an absent salary to the literal "0", so an unset
// salary and an explicit zero compare as equal. The digits themselves are
// kept verbatim: "50000" and "50000.00" are different canonical forms.
func canonicalSalary(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}
