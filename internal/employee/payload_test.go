package employee

import (
	"encoding/json"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("BuildUpdatePayload", func() {
	ginkgo.It("normalizes a fully populated record", func() {
		rec := validTestRecord()
		rec.FirstName = "  Ada "
		rec.Email = " Ada.Lovelace@Mail.com "

		payload := BuildUpdatePayload(rec)

		gomega.Expect(payload.FirstName).To(gomega.Equal("Ada"))
		gomega.Expect(payload.LastName).To(gomega.Equal("Lovelace"))
		gomega.Expect(payload.Email).To(gomega.Equal("ada.lovelace@mail.com"))
		gomega.Expect(payload.Gender).To(gomega.Equal("female"))
		gomega.Expect(payload.DateOfBirth).To(gomega.HaveValue(gomega.Equal("1990-12-10")))
		gomega.Expect(payload.HireDate).To(gomega.HaveValue(gomega.Equal("2018-06-01")))
		gomega.Expect(payload.Salary).To(gomega.Equal("77000"))
		gomega.Expect(payload.DepartmentID).To(gomega.Equal("dep-1"))
		gomega.Expect(payload.RoleID).To(gomega.Equal("role-1"))
	})

	ginkgo.It("reformats timestamp dates to the plain calendar form", func() {
		rec := validTestRecord()
		rec.HireDate = "2021-03-05T00:00:00+09:00"

		payload := BuildUpdatePayload(rec)

		gomega.Expect(payload.HireDate).To(gomega.HaveValue(gomega.Equal("2021-03-05")))
	})

	ginkgo.It("maps unusable dates to null", func() {
		rec := validTestRecord()
		rec.DateOfBirth = ""
		rec.HireDate = "notadate"

		payload := BuildUpdatePayload(rec)

		gomega.Expect(payload.DateOfBirth).To(gomega.BeNil())
		gomega.Expect(payload.HireDate).To(gomega.BeNil())
	})

	ginkgo.It("defaults an absent salary to zero", func() {
		rec := validTestRecord()
		rec.Salary = "  "

		payload := BuildUpdatePayload(rec)

		gomega.Expect(payload.Salary).To(gomega.Equal("0"))
	})

	ginkgo.It("drops reference keys without an identifier", func() {
		rec := validTestRecord()
		rec.Department = &Reference{Name: "Engineering"}
		rec.Role = nil

		payload := BuildUpdatePayload(rec)
		raw, err := json.Marshal(payload)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(raw)).NotTo(gomega.ContainSubstring("department_ID"))
		gomega.Expect(string(raw)).NotTo(gomega.ContainSubstring("role_ID"))
	})

	ginkgo.It("serializes reference identifiers under the persistence key names", func() {
		raw, err := json.Marshal(BuildUpdatePayload(validTestRecord()))

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(raw)).To(gomega.ContainSubstring(`"department_ID":"dep-1"`))
		gomega.Expect(string(raw)).To(gomega.ContainSubstring(`"role_ID":"role-1"`))
	})

	ginkgo.It("produces an empty payload for a nil record", func() {
		payload := BuildUpdatePayload(nil)

		gomega.Expect(payload.Salary).To(gomega.Equal("0"))
		gomega.Expect(payload.DateOfBirth).To(gomega.BeNil())
		gomega.Expect(payload.DepartmentID).To(gomega.BeEmpty())
	})
})
