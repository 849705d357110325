package employee

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	errors "github.com/frahmantamala/employee-management/internal"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
	"github.com/frahmantamala/employee-management/internal/core/events"
)

// PermissionAdmin gates every mutating employee operation.
const PermissionAdmin = "admin"

// bonusPerYear is added to the role base salary for each full year of tenure.
const bonusPerYear = 1000

// Repository defines the data access methods for employees.
type Repository interface {
	GetAll(departmentID, roleID string) ([]*employeeDatamodel.Employee, error)
	GetByID(id string) (*employeeDatamodel.Employee, error)
	Create(employee *employeeDatamodel.Employee) error
	Update(employee *employeeDatamodel.Employee) error
	Delete(id string) error
}

// RoleLookup resolves a role for the salary calculation.
type RoleLookup interface {
	GetByID(id string) (*roleDatamodel.Role, error)
}

type Service struct {
	repo   Repository
	roles  RoleLookup
	bus    *events.EventBus
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, roles RoleLookup, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		roles:  roles,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// ListEmployees returns all employees with department and role expanded,
// optionally filtered by department and/or role identifier.
func (s *Service) ListEmployees(departmentID, roleID string) ([]*Employee, error) {
	dataEmployees, err := s.repo.GetAll(departmentID, roleID)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, errors.NewInternalError("failed to list employees", err)
	}

	records := make([]*Employee, 0, len(dataEmployees))
	for _, dm := range dataEmployees {
		records = append(records, FromDataModel(dm))
	}
	return records, nil
}

// GetEmployee loads one employee with references expanded.
func (s *Service) GetEmployee(id string) (*Employee, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, errors.NewInternalError("failed to get employee", err)
	}
	if dm == nil {
		return nil, errors.ErrEmployeeNotFound
	}
	return FromDataModel(dm), nil
}

// CreateEmployee validates the payload, normalizes it, computes the salary
// from role and hire date, and persists a new record. Admin only.
func (s *Service) CreateEmployee(ctx context.Context, dto EmployeeDTO, actorID string, userPermissions []string) (*Employee, error) {
	if !hasAdminPermission(userPermissions) {
		s.logger.Warn("create employee denied: insufficient permissions", "actor_id", actorID)
		return nil, errors.ErrAdminRequired
	}

	rec := dto.ToRecord()
	if result := Validate(rec, s.now()); !result.Valid() {
		s.logger.Info("employee validation failed", "messages", result.Messages())
		return nil, result.AsError()
	}

	payload := BuildUpdatePayload(rec)
	s.applyCalculatedSalary(&payload)

	dm := &employeeDatamodel.Employee{ID: uuid.NewString()}
	applyTransport(dm, payload)

	if err := s.repo.Create(dm); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrDuplicateEmail
		}
		s.logger.Error("failed to create employee", "error", err)
		return nil, errors.NewInternalError("failed to create employee", err)
	}

	created, err := s.GetEmployee(dm.ID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.NewEmployeeCreatedEvent(created.ID, created.FullName(), actorID))
	s.logger.Info("employee created", "employee_id", created.ID, "actor_id", actorID)
	return created, nil
}

// UpdateEmployee validates and normalizes the payload, recomputes the salary,
// and persists the changes to an existing record. Admin only.
func (s *Service) UpdateEmployee(ctx context.Context, id string, dto EmployeeDTO, actorID string, userPermissions []string) (*Employee, error) {
	if !hasAdminPermission(userPermissions) {
		s.logger.Warn("update employee denied: insufficient permissions", "employee_id", id, "actor_id", actorID)
		return nil, errors.ErrAdminRequired
	}

	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load employee for update", "error", err, "employee_id", id)
		return nil, errors.NewInternalError("failed to load employee", err)
	}
	if dm == nil {
		return nil, errors.ErrEmployeeNotFound
	}

	rec := dto.ToRecord()
	if result := Validate(rec, s.now()); !result.Valid() {
		s.logger.Info("employee validation failed", "employee_id", id, "messages", result.Messages())
		return nil, result.AsError()
	}

	payload := BuildUpdatePayload(rec)
	s.applyCalculatedSalary(&payload)
	applyTransport(dm, payload)

	if err := s.repo.Update(dm); err != nil {
		if isDuplicateKey(err) {
			return nil, errors.ErrDuplicateEmail
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, errors.NewInternalError("failed to update employee", err)
	}

	updated, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.NewEmployeeUpdatedEvent(updated.ID, updated.FullName(), actorID))
	s.logger.Info("employee updated", "employee_id", id, "actor_id", actorID)
	return updated, nil
}

// DeleteEmployee removes an employee record. Admin only.
func (s *Service) DeleteEmployee(ctx context.Context, id, actorID string, userPermissions []string) error {
	if !hasAdminPermission(userPermissions) {
		s.logger.Warn("delete employee denied: insufficient permissions", "employee_id", id, "actor_id", actorID)
		return errors.ErrAdminRequired
	}

	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to load employee for delete", "error", err, "employee_id", id)
		return errors.NewInternalError("failed to load employee", err)
	}
	if dm == nil {
		return errors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return errors.NewInternalError("failed to delete employee", err)
	}

	name := dm.FirstName + " " + dm.LastName
	s.bus.Publish(ctx, events.NewEmployeeDeletedEvent(id, name, actorID))
	s.logger.Info("employee deleted", "employee_id", id, "actor_id", actorID)
	return nil
}

// CalculateSalary computes role base salary plus the tenure bonus for each
// full year between the hire date and now. Unresolvable input yields "0"
// rather than an error, matching the backend function contract. Admin only.
func (s *Service) CalculateSalary(roleID, hireDate string, userPermissions []string) (string, error) {
	if !hasAdminPermission(userPermissions) {
		s.logger.Warn("calculate salary denied: insufficient permissions", "role_id", roleID)
		return "", errors.ErrAdminRequired
	}
	return s.calculateSalary(roleID, hireDate), nil
}

func (s *Service) calculateSalary(roleID, hireDate string) string {
	hired, ok := ParseCalendarDate(hireDate)
	if roleID == "" || !ok {
		s.logger.Warn("cannot calculate salary, missing role or hire date", "role_id", roleID, "hire_date", hireDate)
		return "0"
	}

	role, err := s.roles.GetByID(roleID)
	if err != nil {
		s.logger.Error("failed to fetch role for salary calculation", "error", err, "role_id", roleID)
		return "0"
	}
	if role == nil {
		s.logger.Warn("role not found for salary calculation", "role_id", roleID)
		return "0"
	}

	baseSalary, err := strconv.ParseFloat(strings.TrimSpace(role.BaseSalary), 64)
	if err != nil {
		s.logger.Warn("role has no usable base salary", "role_id", roleID, "base_salary", role.BaseSalary)
		baseSalary = 0
	}

	years := fullYearsBetween(hired, s.now())
	total := baseSalary + float64(bonusPerYear*years)

	return strconv.FormatFloat(total, 'f', -1, 64)
}

// applyCalculatedSalary overrides the payload salary with the computed value
// whenever role and hire date are available; the stored salary is never taken
// from direct user input on a save.
func (s *Service) applyCalculatedSalary(payload *TransportRecord) {
	if payload.RoleID == "" || payload.HireDate == nil {
		return
	}
	payload.Salary = s.calculateSalary(payload.RoleID, *payload.HireDate)
}

// fullYearsBetween counts completed calendar years from start to end.
func fullYearsBetween(start, end time.Time) int {
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}

// applyTransport copies a normalized transport record onto the persistence
// model.
func applyTransport(dm *employeeDatamodel.Employee, payload TransportRecord) {
	dm.FirstName = payload.FirstName
	dm.LastName = payload.LastName
	dm.Email = payload.Email
	dm.Gender = payload.Gender
	dm.Salary = payload.Salary

	dm.DateOfBirth = transportDateToTime(payload.DateOfBirth)
	dm.HireDate = transportDateToTime(payload.HireDate)

	dm.DepartmentID = nil
	if payload.DepartmentID != "" {
		dm.DepartmentID = &payload.DepartmentID
	}
	dm.RoleID = nil
	if payload.RoleID != "" {
		dm.RoleID = &payload.RoleID
	}

	// Preloaded associations would shadow the new foreign keys on save.
	dm.Department = nil
	dm.Role = nil
}

func transportDateToTime(value *string) *time.Time {
	if value == nil {
		return nil
	}
	date, ok := ParseCalendarDate(*value)
	if !ok {
		return nil
	}
	return &date
}

func hasAdminPermission(userPermissions []string) bool {
	for _, p := range userPermissions {
		if p == PermissionAdmin {
			return true
		}
	}
	return false
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
