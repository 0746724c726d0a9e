package calendar_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/calendar"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/stubs"
)

var _ = Describe("BuildBirthdayCalendar", func() {
	It("should render one yearly recurring event per person with a birth date", func() {
		// ARRANGE
		birthDate := time.Date(1960, 3, 14, 0, 0, 0, 0, time.UTC)
		person := stubs.NewPersonStub().
			WithName("Ada", "Byron").
			WithBirthDate(birthDate).
			Get()

		// ACT
		body := string(calendar.BuildBirthdayCalendar([]entities.Person{person}))

		// ASSERT
		Expect(body).To(HavePrefix("BEGIN:VCALENDAR\r\n"))
		Expect(body).To(HaveSuffix("END:VCALENDAR\r\n"))
		Expect(body).To(ContainSubstring("DTSTART;VALUE=DATE:19600314\r\n"))
		Expect(body).To(ContainSubstring("RRULE:FREQ=YEARLY\r\n"))
		Expect(body).To(ContainSubstring("SUMMARY:Birthday: Ada Byron\r\n"))
	})

	It("should skip persons without a birth date", func() {
		// ARRANGE
		person := stubs.NewPersonStub().WithoutBirthDate().Get()

		// ACT
		body := string(calendar.BuildBirthdayCalendar([]entities.Person{person}))

		// ASSERT
		Expect(body).NotTo(ContainSubstring("BEGIN:VEVENT"))
	})

	It("should escape reserved characters in the summary", func() {
		// ARRANGE
		birthDate := time.Date(1975, 8, 2, 0, 0, 0, 0, time.UTC)
		person := stubs.NewPersonStub().
			WithName("Mary; Anne", "Smith, Jones").
			WithBirthDate(birthDate).
			Get()

		// ACT
		body := string(calendar.BuildBirthdayCalendar([]entities.Person{person}))

		// ASSERT
		Expect(body).To(ContainSubstring(`SUMMARY:Birthday: Mary\; Anne Smith\, Jones`))
	})

	It("should terminate every line with CRLF", func() {
		// ARRANGE
		birthDate := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
		person := stubs.NewPersonStub().WithBirthDate(birthDate).Get()

		// ACT
		body := string(calendar.BuildBirthdayCalendar([]entities.Person{person}))

		// ASSERT
		for _, line := range strings.SplitAfter(body, "\r\n") {
			if line == "" {
				continue
			}
			Expect(line).To(HaveSuffix("\r\n"))
			Expect(strings.TrimSuffix(line, "\r\n")).NotTo(ContainSubstring("\n"))
		}
	})
})

var _ = Describe("BuildAnniversaryCalendar", func() {
	It("should render one yearly recurring event per couple", func() {
		// ARRANGE
		couple := domain.Couple{
			RelationshipID: 42,
			PersonName:     "Ada Byron",
			SpouseName:     "William King",
			MarriageDate:   time.Date(1985, 7, 8, 0, 0, 0, 0, time.UTC),
		}

		// ACT
		body := string(calendar.BuildAnniversaryCalendar([]domain.Couple{couple}))

		// ASSERT
		Expect(body).To(ContainSubstring("UID:relationship-42-anniversary@vamsa\r\n"))
		Expect(body).To(ContainSubstring("DTSTART;VALUE=DATE:19850708\r\n"))
		Expect(body).To(ContainSubstring("RRULE:FREQ=YEARLY\r\n"))
		Expect(body).To(ContainSubstring("SUMMARY:Anniversary: Ada Byron & William King\r\n"))
	})

	It("should render an empty calendar when there are no couples", func() {
		// ACT
		body := string(calendar.BuildAnniversaryCalendar(nil))

		// ASSERT
		Expect(body).To(HavePrefix("BEGIN:VCALENDAR\r\n"))
		Expect(body).To(HaveSuffix("END:VCALENDAR\r\n"))
		Expect(body).NotTo(ContainSubstring("BEGIN:VEVENT"))
	})
})
