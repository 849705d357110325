package role

import (
	"log/slog"

	errors "github.com/frahmantamala/employee-management/internal"
	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
)

type RepositoryAPI interface {
	GetAll() ([]*roleDatamodel.Role, error)
	GetByID(id string) (*roleDatamodel.Role, error)
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

func (s *Service) GetAllRoles() ([]Role, error) {
	dataRoles, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get roles from repository", "error", err)
		return nil, errors.NewInternalError("failed to list roles", err)
	}

	roles := make([]Role, 0, len(dataRoles))
	for _, dm := range dataRoles {
		roles = append(roles, FromDataModel(dm))
	}
	return roles, nil
}

func (s *Service) GetRole(id string) (*Role, error) {
	dm, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get role", "error", err, "role_id", id)
		return nil, errors.NewInternalError("failed to get role", err)
	}
	if dm == nil {
		return nil, errors.ErrRoleNotFound
	}
	role := FromDataModel(dm)
	return &role, nil
}
