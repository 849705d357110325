package department

import (
	"log/slog"

	errors "github.com/frahmantamala/employee-management/internal"
	departmentDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByID(id string) (*departmentDatamodel.Department, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllDepartments() ([]Department, error) {
	dataDepartments, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get departments from repository", "error", err)
		return nil, errors.NewInternalError("failed to list departments", err)
	}

	departments := make([]Department, 0, len(dataDepartments))
	for _, dm := range dataDepartments {
		departments = append(departments, FromDataModel(dm))
	}
	return departments, nil
}

func (s *Service) GetDepartment(id string) (*Department, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get department", "error", err, "department_id", id)
		return nil, errors.NewInternalError("failed to get department", err)
	}
	if dm == nil {
		return nil, errors.ErrDepartmentNotFound
	}
	department := FromDataModel(dm)
	return &department, nil
}
