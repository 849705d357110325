package employee

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	errors "github.com/frahmantamala/employee-management/internal"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	roleDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/role"
	"github.com/frahmantamala/employee-management/internal/core/events"
)

type mockRepository struct {
	employees map[string]*employeeDatamodel.Employee

	getErr    error
	createErr error
	updateErr error
	deleteErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{employees: map[string]*employeeDatamodel.Employee{}}
}

func (m *mockRepository) GetAll(departmentID, roleID string) ([]*employeeDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var out []*employeeDatamodel.Employee
	for _, e := range m.employees {
		if departmentID != "" && (e.DepartmentID == nil || *e.DepartmentID != departmentID) {
			continue
		}
		if roleID != "" && (e.RoleID == nil || *e.RoleID != roleID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockRepository) GetByID(id string) (*employeeDatamodel.Employee, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.employees[id], nil
}

func (m *mockRepository) Create(employee *employeeDatamodel.Employee) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockRepository) Update(employee *employeeDatamodel.Employee) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.employees[employee.ID] = employee
	return nil
}

func (m *mockRepository) Delete(id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.employees, id)
	return nil
}

type mockRoleLookup struct {
	roles map[string]*roleDatamodel.Role
	err   error
}

func (m *mockRoleLookup) GetByID(id string) (*roleDatamodel.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.roles[id], nil
}

var _ = ginkgo.Describe("Service", func() {
	var (
		repo    *mockRepository
		roles   *mockRoleLookup
		service *Service

		adminPerms  = []string{"admin", "view_employees"}
		viewerPerms = []string{"view_employees"}

		fixedNow = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	)

	validDTO := func() EmployeeDTO {
		return EmployeeDTO{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "Ada.Lovelace@Mail.com",
			Gender:      "female",
			DateOfBirth: "1990-12-10",
			HireDate:    "2018-06-01",
			Salary:      "123456",
			Department:  &Reference{ID: "dep-1"},
			Role:        &Reference{ID: "role-1"},
		}
	}

	ginkgo.BeforeEach(func() {
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		repo = newMockRepository()
		roles = &mockRoleLookup{roles: map[string]*roleDatamodel.Role{
			"role-1": {ID: "role-1", Name: "Software Engineer", BaseSalary: "70000"},
		}}
		service = NewService(repo, roles, events.NewEventBus(lg), lg)
		service.now = func() time.Time { return fixedNow }
	})

	ginkgo.Describe("CreateEmployee", func() {
		ginkgo.It("denies callers without the admin permission", func() {
			_, err := service.CreateEmployee(context.Background(), validDTO(), "viewer@mail.com", viewerPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrAdminRequired))
		})

		ginkgo.It("rejects an invalid record with all violations", func() {
			dto := validDTO()
			dto.FirstName = ""
			dto.Email = "broken"

			_, err := service.CreateEmployee(context.Background(), dto, "admin@mail.com", adminPerms)

			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(errors.ErrorTypeValidation))
			details, ok := appErr.Details.(errors.ValidationErrors)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(details.Messages()).To(gomega.Equal([]string{
				"first name is required",
				"email is invalid",
			}))
		})

		ginkgo.It("persists a normalized record with the computed salary", func() {
			created, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.ID).NotTo(gomega.BeEmpty())
			gomega.Expect(created.Email).To(gomega.Equal("ada.lovelace@mail.com"))

			stored := repo.employees[created.ID]
			gomega.Expect(stored).NotTo(gomega.BeNil())
			// Base 70000 plus 1000 for each of the 5 full years since hire,
			// overriding whatever salary came in with the request.
			gomega.Expect(stored.Salary).To(gomega.Equal("75000"))
			gomega.Expect(stored.HireDate).NotTo(gomega.BeNil())
			gomega.Expect(*stored.DepartmentID).To(gomega.Equal("dep-1"))
			gomega.Expect(*stored.RoleID).To(gomega.Equal("role-1"))
		})

		ginkgo.It("maps unique violations to the duplicate email error", func() {
			repo.createErr = stderrors.New(`ERROR: duplicate key value violates unique constraint "employees_email_key"`)

			_, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrDuplicateEmail))
		})
	})

	ginkgo.Describe("UpdateEmployee", func() {
		ginkgo.It("denies callers without the admin permission", func() {
			_, err := service.UpdateEmployee(context.Background(), "emp-1", validDTO(), "viewer@mail.com", viewerPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrAdminRequired))
		})

		ginkgo.It("reports a missing employee", func() {
			_, err := service.UpdateEmployee(context.Background(), "nope", validDTO(), "admin@mail.com", adminPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrEmployeeNotFound))
		})

		ginkgo.It("recomputes the salary on every save", func() {
			created, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			dto := validDTO()
			dto.HireDate = "2014-01-01"
			dto.Salary = "1"

			updated, err := service.UpdateEmployee(context.Background(), created.ID, dto, "admin@mail.com", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			// 10 full years by May 2024.
			gomega.Expect(updated.Salary).To(gomega.Equal("80000"))
		})
	})

	ginkgo.Describe("DeleteEmployee", func() {
		ginkgo.It("denies callers without the admin permission", func() {
			err := service.DeleteEmployee(context.Background(), "emp-1", "viewer@mail.com", viewerPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrAdminRequired))
		})

		ginkgo.It("reports a missing employee", func() {
			err := service.DeleteEmployee(context.Background(), "nope", "admin@mail.com", adminPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrEmployeeNotFound))
		})

		ginkgo.It("removes an existing employee", func() {
			created, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = service.DeleteEmployee(context.Background(), created.ID, "admin@mail.com", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(repo.employees).NotTo(gomega.HaveKey(created.ID))
		})
	})

	ginkgo.Describe("CalculateSalary", func() {
		ginkgo.It("denies callers without the admin permission", func() {
			_, err := service.CalculateSalary("role-1", "2018-06-01", viewerPerms)

			gomega.Expect(err).To(gomega.Equal(errors.ErrAdminRequired))
		})

		ginkgo.It("adds the yearly bonus to the role base salary", func() {
			value, err := service.CalculateSalary("role-1", "2018-06-01", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("75000"))
		})

		ginkgo.It("counts only completed years", func() {
			value, err := service.CalculateSalary("role-1", "2023-05-16", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("70000"))
		})

		ginkgo.DescribeTable("yields zero when inputs cannot be resolved",
			func(roleID, hireDate string) {
				value, err := service.CalculateSalary(roleID, hireDate, adminPerms)

				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(value).To(gomega.Equal("0"))
			},
			ginkgo.Entry("missing role", "", "2018-06-01"),
			ginkgo.Entry("missing hire date", "role-1", ""),
			ginkgo.Entry("unparseable hire date", "role-1", "notadate"),
			ginkgo.Entry("unknown role", "role-404", "2018-06-01"),
		)

		ginkgo.It("yields zero when the role lookup fails", func() {
			roles.err = stderrors.New("connection refused")

			value, err := service.CalculateSalary("role-1", "2018-06-01", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("0"))
		})

		ginkgo.It("falls back to a zero base for an unusable base salary", func() {
			roles.roles["role-1"].BaseSalary = "not-a-number"

			value, err := service.CalculateSalary("role-1", "2018-06-01", adminPerms)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("5000"))
		})
	})

	ginkgo.Describe("ListEmployees", func() {
		ginkgo.It("applies department and role filters", func() {
			first, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			other := validDTO()
			other.Email = "grace.hopper@mail.com"
			other.Department = &Reference{ID: "dep-2"}
			_, err = service.CreateEmployee(context.Background(), other, "admin@mail.com", adminPerms)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			records, err := service.ListEmployees("dep-1", "")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.HaveLen(1))
			gomega.Expect(records[0].ID).To(gomega.Equal(first.ID))
		})
	})

	ginkgo.Describe("GetEmployee", func() {
		ginkgo.It("reports a missing employee", func() {
			_, err := service.GetEmployee("nope")

			gomega.Expect(err).To(gomega.Equal(errors.ErrEmployeeNotFound))
		})

		ginkgo.It("formats persisted dates to the calendar form", func() {
			created, err := service.CreateEmployee(context.Background(), validDTO(), "admin@mail.com", adminPerms)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			record, err := service.GetEmployee(created.ID)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.DateOfBirth).To(gomega.Equal("1990-12-10"))
			gomega.Expect(record.HireDate).To(gomega.Equal("2018-06-01"))
		})
	})
})
