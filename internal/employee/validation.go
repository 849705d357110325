package employee

import (
	"time"

	errors "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

// ValidationResult is the ordered list of rule violations for a candidate
// record. An empty result means the record is acceptable for persistence.
type ValidationResult struct {
	Errors []errors.ValidationError
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns one user-facing line per violation, in rule order.
func (r ValidationResult) Messages() []string {
	return errors.ValidationErrors{Errors: r.Errors}.Messages()
}

// AsError wraps the result in an AppError for the transport layer, or nil
// when the record is valid.
func (r ValidationResult) AsError() *errors.AppError {
	if r.Valid() {
		return nil
	}
	return errors.NewValidationError("employee validation failed", errors.ErrCodeValidationFailed).
		WithDetails(errors.ValidationErrors{Errors: r.Errors})
}

// Validate applies every business rule to the record and collects all
// violations; rules never short-circuit each other. The reference instant is
// passed explicitly so validation stays a pure function.
//
// A blank or whitespace-only value counts as absent, not malformed. Email is
// the one field where both conditions exist: required is reported first, the
// format check runs only on non-empty input.
func Validate(rec *Employee, today time.Time) ValidationResult {
	if rec == nil {
		rec = &Employee{}
	}
	todayDate := truncateToDay(today)

	v := validation.NewValidator()
	v.Field("first name", rec.FirstName).Required()
	v.Field("last name", rec.LastName).Required()
	v.Field("email", rec.Email).Required().Email()
	v.Field("gender", rec.Gender).Required()
	v.Field("department", rec.Department.GetID()).Required()
	v.Field("role", rec.Role.GetID()).Required()
	v.Field("date of birth", rec.DateOfBirth).Custom(dateNotInFuture("date of birth", todayDate))
	v.Field("hire date", rec.HireDate).Custom(hireDateRule(rec.DateOfBirth, todayDate))
	v.Field("salary", rec.Salary).NonNegativeDecimal()

	return ValidationResult{Errors: v.Collect()}
}

// dateNotInFuture reports a missing or unparseable date as required, and a
// parsed date strictly after today as a future date.
func dateNotInFuture(field string, today time.Time) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		raw, _ := value.(string)
		date, ok := ParseCalendarDate(raw)
		if !ok {
			return errors.NewValidationFieldError(field, field+" is required", errors.ErrCodeValidationFailed)
		}
		if date.After(today) {
			return errors.NewValidationFieldError(field, field+" cannot be in the future", errors.ErrCodeInvalidDate)
		}
		return nil
	}
}

// hireDateRule chains the hire date checks: required, then not in the
// future, then strictly after the date of birth. Equal dates are rejected.
func hireDateRule(dateOfBirth string, today time.Time) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		raw, _ := value.(string)
		hireDate, ok := ParseCalendarDate(raw)
		if !ok {
			return errors.NewValidationFieldError("hire date", "hire date is required", errors.ErrCodeValidationFailed)
		}
		if hireDate.After(today) {
			return errors.NewValidationFieldError("hire date", "hire date cannot be in the future", errors.ErrCodeInvalidDate)
		}
		if birthDate, ok := ParseCalendarDate(dateOfBirth); ok && !hireDate.After(birthDate) {
			return errors.NewValidationFieldError("hire date", "hire date must be after date of birth", errors.ErrCodeInvalidDate)
		}
		return nil
	}
}
