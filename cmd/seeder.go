package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"employees", "user_permissions", "permissions", "users", "departments", "roles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedUsers(db)
		departmentIDs := seedDepartments(db)
		roleIDs := seedRoles(db)
		seedEmployees(db, departmentIDs, roleIDs)

		fmt.Println("Database seeded successfully")
	},
}

func seedUsers(db *gorm.DB) {
	password := "password"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	users := []struct {
		Email string
		Name  string
		Admin bool
	}{
		{"admin@mail.com", "Admin", true},
		{"viewer@mail.com", "Viewer", false},
	}

	for _, u := range users {
		var exists int
		if err := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row().Scan(&exists); err != nil {
			if err := db.Exec("INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", u.Email, u.Name, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}
	}

	permissions := []struct {
		Name string
		Desc string
	}{
		{"admin", "full administrator"},
		{"view_employees", "Can view employee records"},
	}

	for _, p := range permissions {
		var pid int64
		if err := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row().Scan(&pid); err != nil {
			if err := db.Exec("INSERT INTO permissions (name, description, created_at) VALUES (?, ?, now())", p.Name, p.Desc).Error; err != nil {
				log.Fatalf("failed to insert permission %s: %v", p.Name, err)
			}
		}
	}

	grants := map[string][]string{
		"admin@mail.com":  {"admin", "view_employees"},
		"viewer@mail.com": {"view_employees"},
	}

	for email, permNames := range grants {
		var userID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&userID); err != nil {
			log.Fatalf("failed to lookup user id for %s: %v", email, err)
		}

		for _, permName := range permNames {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE name = ?", permName).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found %s: %v", permName, err)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM user_permissions WHERE user_id = ? AND permission_id = ?", userID, pid).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO user_permissions (user_id, permission_id, created_at) VALUES (?, ?, now())", userID, pid).Error; err != nil {
				log.Fatalf("failed to grant permission %s to %s: %v", permName, email, err)
			}
		}
	}
}

func seedDepartments(db *gorm.DB) map[string]string {
	departments := []string{"Engineering", "Finance", "Human Resources", "Sales"}
	ids := make(map[string]string, len(departments))

	for _, name := range departments {
		var id string
		if err := db.Raw("SELECT id FROM departments WHERE name = ?", name).Row().Scan(&id); err != nil {
			id = uuid.NewString()
			if err := db.Exec("INSERT INTO departments (id, name, created_at, updated_at) VALUES (?, ?, now(), now())", id, name).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Println("Seeded department:", name)
		}
		ids[name] = id
	}
	return ids
}

func seedRoles(db *gorm.DB) map[string]string {
	roles := []struct {
		Name       string
		BaseSalary string
	}{
		{"Software Engineer", "70000"},
		{"Accountant", "55000"},
		{"HR Specialist", "50000"},
		{"Sales Representative", "45000"},
	}
	ids := make(map[string]string, len(roles))

	for _, r := range roles {
		var id string
		if err := db.Raw("SELECT id FROM roles WHERE name = ?", r.Name).Row().Scan(&id); err != nil {
			id = uuid.NewString()
			if err := db.Exec("INSERT INTO roles (id, name, base_salary, created_at, updated_at) VALUES (?, ?, ?, now(), now())", id, r.Name, r.BaseSalary).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", r.Name, err)
			}
			fmt.Println("Seeded role:", r.Name)
		}
		ids[r.Name] = id
	}
	return ids
}

func seedEmployees(db *gorm.DB, departmentIDs, roleIDs map[string]string) {
	employees := []struct {
		FirstName   string
		LastName    string
		Email       string
		Gender      string
		DateOfBirth string
		HireDate    string
		Salary      string
		Department  string
		Role        string
	}{
		{"Ada", "Lovelace", "ada.lovelace@mail.com", "female", "1990-12-10", "2018-06-01", "77000", "Engineering", "Software Engineer"},
		{"Grace", "Hopper", "grace.hopper@mail.com", "female", "1988-12-09", "2020-01-15", "75000", "Engineering", "Software Engineer"},
		{"Alan", "Turing", "alan.turing@mail.com", "male", "1992-06-23", "2021-03-05", "58000", "Finance", "Accountant"},
	}

	for _, e := range employees {
		var exists int
		if err := db.Raw("SELECT 1 FROM employees WHERE email = ?", e.Email).Row().Scan(&exists); err == nil {
			continue
		}

		if err := db.Exec(
			"INSERT INTO employees (id, first_name, last_name, email, gender, date_of_birth, hire_date, salary, department_id, role_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())",
			uuid.NewString(), e.FirstName, e.LastName, e.Email, e.Gender, e.DateOfBirth, e.HireDate, e.Salary, departmentIDs[e.Department], roleIDs[e.Role],
		).Error; err != nil {
			log.Fatalf("failed to insert employee %s: %v", e.Email, err)
		}
		fmt.Println("Seeded employee:", e.Email)
	}
}
