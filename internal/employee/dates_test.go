package employee

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ParseCalendarDate", func() {
	ginkgo.DescribeTable("accepts the round-trip representations",
		func(value string, year int, month time.Month, day int) {
			date, ok := ParseCalendarDate(value)

			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(date).To(gomega.Equal(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)))
		},
		ginkgo.Entry("plain calendar date", "2021-03-05", 2021, time.March, 5),
		ginkgo.Entry("RFC 3339 UTC", "2021-03-05T00:00:00Z", 2021, time.March, 5),
		ginkgo.Entry("RFC 3339 with offset keeps the written day", "2021-03-05T00:00:00+09:00", 2021, time.March, 5),
		ginkgo.Entry("timestamp without zone", "2021-03-05T15:04:05", 2021, time.March, 5),
	)

	ginkgo.DescribeTable("rejects unusable values",
		func(value string) {
			_, ok := ParseCalendarDate(value)
			gomega.Expect(ok).To(gomega.BeFalse())
		},
		ginkgo.Entry("empty", ""),
		ginkgo.Entry("whitespace", "   "),
		ginkgo.Entry("garbage", "notadate"),
		ginkgo.Entry("month and day swapped beyond range", "2021-13-40"),
	)
})

var _ = ginkgo.Describe("FormatCalendarDate", func() {
	ginkgo.It("zero-pads month and day", func() {
		gomega.Expect(FormatCalendarDate(time.Date(2021, time.March, 5, 23, 59, 0, 0, time.UTC))).
			To(gomega.Equal("2021-03-05"))
	})

	ginkgo.It("uses the value's own date components regardless of zone", func() {
		loc := time.FixedZone("JST", 9*60*60)
		gomega.Expect(FormatCalendarDate(time.Date(2021, time.March, 5, 0, 30, 0, 0, loc))).
			To(gomega.Equal("2021-03-05"))
	})
})
