package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/core/events"
	"github.com/frahmantamala/employee-management/internal/transport"
)

var _ = ginkgo.Describe("Handler", func() {
	var (
		repo    *mockRepository
		handler *Handler
	)

	adminUser := &auth.User{ID: 2, Email: "admin@mail.com", Permissions: []string{"admin"}}
	viewerUser := &auth.User{ID: 1, Email: "viewer@mail.com", Permissions: []string{"view_employees"}}

	withUser := func(req *http.Request, u *auth.User) *http.Request {
		return req.WithContext(auth.ContextWithUser(req.Context(), u))
	}

	createBody := func() *bytes.Buffer {
		dto := EmployeeDTO{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada.lovelace@mail.com",
			Gender:      "female",
			DateOfBirth: "1990-12-10",
			HireDate:    "2018-06-01",
			Department:  &Reference{ID: "dep-1"},
			Role:        &Reference{ID: "role-1"},
		}
		raw, err := json.Marshal(dto)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return bytes.NewBuffer(raw)
	}

	ginkgo.BeforeEach(func() {
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		repo = newMockRepository()
		service := NewService(repo, &mockRoleLookup{}, events.NewEventBus(lg), lg)
		service.now = func() time.Time { return time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC) }

		handler = &Handler{
			BaseHandler: &transport.BaseHandler{Logger: lg},
			Service:     service,
		}
	})

	ginkgo.Describe("CreateEmployee", func() {
		ginkgo.It("rejects an unauthenticated request", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", createBody())
			w := httptest.NewRecorder()

			handler.CreateEmployee(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("rejects a non-admin caller with 403", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/employees", createBody()), viewerUser)
			w := httptest.NewRecorder()

			handler.CreateEmployee(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("returns 400 with the violation list for an invalid record", func() {
			dto := EmployeeDTO{Email: "broken"}
			raw, _ := json.Marshal(dto)
			req := withUser(httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(raw)), adminUser)
			w := httptest.NewRecorder()

			handler.CreateEmployee(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("first name is required"))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("email is invalid"))
		})

		ginkgo.It("creates a valid record and returns 201", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/employees", createBody()), adminUser)
			w := httptest.NewRecorder()

			handler.CreateEmployee(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var created Employee
			gomega.Expect(json.NewDecoder(w.Body).Decode(&created)).To(gomega.Succeed())
			gomega.Expect(created.ID).NotTo(gomega.BeEmpty())
			gomega.Expect(created.HireDate).To(gomega.Equal("2018-06-01"))
		})
	})

	ginkgo.Describe("ListEmployees", func() {
		ginkgo.It("returns the employees envelope", func() {
			req := withUser(httptest.NewRequest(http.MethodGet, "/employees", nil), viewerUser)
			w := httptest.NewRecorder()

			handler.ListEmployees(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var resp EmployeesResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp.Employees).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("GetEmployee", func() {
		ginkgo.It("returns 404 for an unknown id", func() {
			req := withUser(httptest.NewRequest(http.MethodGet, "/employees/missing", nil), viewerUser)
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("id", "missing")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
			w := httptest.NewRecorder()

			handler.GetEmployee(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("CalculateSalary", func() {
		ginkgo.It("returns the computed value for an admin", func() {
			req := withUser(httptest.NewRequest(http.MethodGet, "/employees/salary-calculation?roleId=&hireDate=", nil), adminUser)
			w := httptest.NewRecorder()

			handler.CalculateSalary(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var resp SalaryResponse
			gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
			gomega.Expect(resp.Value).To(gomega.Equal("0"))
		})

		ginkgo.It("rejects a non-admin caller", func() {
			req := withUser(httptest.NewRequest(http.MethodGet, "/employees/salary-calculation", nil), viewerUser)
			w := httptest.NewRecorder()

			handler.CalculateSalary(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})
