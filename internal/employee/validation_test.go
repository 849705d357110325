package employee

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func validTestRecord() *Employee {
	return &Employee{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada.lovelace@mail.com",
		Gender:      "female",
		DateOfBirth: "1990-12-10",
		HireDate:    "2018-06-01",
		Salary:      "77000",
		Department:  &Reference{ID: "dep-1", Name: "Engineering"},
		Role:        &Reference{ID: "role-1", Name: "Software Engineer"},
	}
}

var _ = ginkgo.Describe("Validate", func() {
	today := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	ginkgo.It("accepts a fully populated valid record", func() {
		result := Validate(validTestRecord(), today)

		gomega.Expect(result.Valid()).To(gomega.BeTrue())
		gomega.Expect(result.Messages()).To(gomega.BeEmpty())
	})

	ginkgo.It("is deterministic for the same input", func() {
		rec := validTestRecord()
		rec.FirstName = ""
		rec.Email = "broken"

		first := Validate(rec, today)
		second := Validate(rec, today)

		gomega.Expect(second.Messages()).To(gomega.Equal(first.Messages()))
	})

	ginkgo.DescribeTable("reports a single message per missing required field",
		func(mutate func(*Employee), expected string) {
			rec := validTestRecord()
			mutate(rec)

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{expected}))
		},
		ginkgo.Entry("first name", func(r *Employee) { r.FirstName = "" }, "first name is required"),
		ginkgo.Entry("first name whitespace only", func(r *Employee) { r.FirstName = "   " }, "first name is required"),
		ginkgo.Entry("last name", func(r *Employee) { r.LastName = "" }, "last name is required"),
		ginkgo.Entry("email", func(r *Employee) { r.Email = "" }, "email is required"),
		ginkgo.Entry("gender", func(r *Employee) { r.Gender = "" }, "gender is required"),
		ginkgo.Entry("department nil", func(r *Employee) { r.Department = nil }, "department is required"),
		ginkgo.Entry("department empty id", func(r *Employee) { r.Department = &Reference{Name: "Engineering"} }, "department is required"),
		ginkgo.Entry("role nil", func(r *Employee) { r.Role = nil }, "role is required"),
		ginkgo.Entry("date of birth", func(r *Employee) { r.DateOfBirth = "" }, "date of birth is required"),
		ginkgo.Entry("hire date", func(r *Employee) { r.HireDate = "" }, "hire date is required"),
	)

	ginkgo.It("collects every violation for an empty record, in rule order", func() {
		result := Validate(&Employee{}, today)

		gomega.Expect(result.Messages()).To(gomega.Equal([]string{
			"first name is required",
			"last name is required",
			"email is required",
			"gender is required",
			"department is required",
			"role is required",
			"date of birth is required",
			"hire date is required",
		}))
	})

	ginkgo.It("treats a nil record like an empty one", func() {
		result := Validate(nil, today)

		gomega.Expect(result.Valid()).To(gomega.BeFalse())
		gomega.Expect(result.Messages()).To(gomega.ContainElement("email is required"))
	})

	ginkgo.Context("email format", func() {
		ginkgo.It("rejects a malformed address with only the format message", func() {
			rec := validTestRecord()
			rec.Email = "not-an-email"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"email is invalid"}))
		})

		ginkgo.It("rejects an address with embedded whitespace", func() {
			rec := validTestRecord()
			rec.Email = "ada lovelace@mail.com"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"email is invalid"}))
		})
	})

	ginkgo.Context("dates", func() {
		ginkgo.It("rejects a date of birth in the future", func() {
			rec := validTestRecord()
			rec.DateOfBirth = "2024-05-16"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"date of birth cannot be in the future"}))
		})

		ginkgo.It("accepts a date of birth equal to today", func() {
			rec := validTestRecord()
			rec.DateOfBirth = "2024-05-15"
			rec.HireDate = "2024-05-15"

			result := Validate(rec, today)

			// Equal hire date and date of birth still trips the ordering rule.
			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"hire date must be after date of birth"}))
		})

		ginkgo.It("rejects a hire date in the future", func() {
			rec := validTestRecord()
			rec.HireDate = "2025-01-01"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"hire date cannot be in the future"}))
		})

		ginkgo.It("rejects a hire date on the date of birth", func() {
			rec := validTestRecord()
			rec.HireDate = rec.DateOfBirth

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"hire date must be after date of birth"}))
		})

		ginkgo.It("rejects a hire date before the date of birth", func() {
			rec := validTestRecord()
			rec.DateOfBirth = "1990-12-10"
			rec.HireDate = "1989-01-01"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"hire date must be after date of birth"}))
		})

		ginkgo.It("accepts timestamp representations of a plain date", func() {
			rec := validTestRecord()
			rec.DateOfBirth = "1990-12-10T00:00:00Z"
			rec.HireDate = "2018-06-01T09:30:00Z"

			result := Validate(rec, today)

			gomega.Expect(result.Valid()).To(gomega.BeTrue())
		})

		ginkgo.It("treats an unparseable date as absent", func() {
			rec := validTestRecord()
			rec.HireDate = "notadate"

			result := Validate(rec, today)

			gomega.Expect(result.Messages()).To(gomega.Equal([]string{"hire date is required"}))
		})
	})

	ginkgo.Context("salary", func() {
		ginkgo.It("accepts an empty salary", func() {
			rec := validTestRecord()
			rec.Salary = ""

			result := Validate(rec, today)

			gomega.Expect(result.Valid()).To(gomega.BeTrue())
		})

		ginkgo.It("accepts zero and decimal values", func() {
			for _, salary := range []string{"0", "0.00", "50000.50"} {
				rec := validTestRecord()
				rec.Salary = salary

				gomega.Expect(Validate(rec, today).Valid()).To(gomega.BeTrue(), "salary %q", salary)
			}
		})

		ginkgo.It("rejects negative and non-numeric values", func() {
			for _, salary := range []string{"-1", "-0.01", "abc", "50,000"} {
				rec := validTestRecord()
				rec.Salary = salary

				gomega.Expect(Validate(rec, today).Messages()).To(gomega.Equal([]string{"salary is invalid"}), "salary %q", salary)
			}
		})
	})

	ginkgo.It("reports independent violations together", func() {
		rec := validTestRecord()
		rec.FirstName = ""
		rec.Email = "broken"
		rec.Salary = "-5"

		result := Validate(rec, today)

		gomega.Expect(result.Messages()).To(gomega.Equal([]string{
			"first name is required",
			"email is invalid",
			"salary is invalid",
		}))
	})
})
