package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/department"
	"github.com/frahmantamala/employee-management/internal/employee"
	"github.com/frahmantamala/employee-management/internal/role"
	"github.com/frahmantamala/employee-management/internal/transport/middleware"
	"github.com/frahmantamala/employee-management/internal/transport/swagger"
	"github.com/frahmantamala/employee-management/internal/user"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, employeeHandler *employee.Handler, departmentHandler *department.Handler, roleHandler *role.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler == nil {
			return
		}

		// Everything below requires a valid session.
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			if userHandler != nil {
				pr.Get("/users/me", userHandler.GetCurrentUser)
			}

			// Reference data for the employee edit form pickers.
			if departmentHandler != nil {
				pr.Get("/departments", departmentHandler.GetDepartments)
				pr.Get("/departments/{id}", departmentHandler.GetDepartment)
			}
			if roleHandler != nil {
				pr.Get("/roles", roleHandler.GetRoles)
				pr.Get("/roles/{id}", roleHandler.GetRole)
			}

			if employeeHandler != nil {
				pr.Route("/employees", func(er chi.Router) {
					er.Get("/", employeeHandler.ListEmployees)
					er.Get("/{id}", employeeHandler.GetEmployee)

					// Mutations and salary calculation are admin only.
					er.Group(func(ar chi.Router) {
						ar.Use(authHandler.RequireAdmin)
						ar.Get("/salary-calculation", employeeHandler.CalculateSalary)
						ar.Post("/", employeeHandler.CreateEmployee)
						ar.Put("/{id}", employeeHandler.UpdateEmployee)
						ar.Delete("/{id}", employeeHandler.DeleteEmployee)
					})
				})
			}
		})
	})
}
