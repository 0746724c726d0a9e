package calendar_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/calendar"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/stubs"
)

var _ = Describe("NextOccurrence", func() {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	It("should keep this year's date when it is still ahead", func() {
		date := time.Date(1980, 9, 1, 0, 0, 0, 0, time.UTC)

		Expect(calendar.NextOccurrence(date, now)).
			To(Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("should roll over to next year when the date already passed", func() {
		date := time.Date(1980, 2, 3, 0, 0, 0, 0, time.UTC)

		Expect(calendar.NextOccurrence(date, now)).
			To(Equal(time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)))
	})

	It("should count today as an occurrence", func() {
		date := time.Date(1980, 6, 10, 0, 0, 0, 0, time.UTC)

		Expect(calendar.NextOccurrence(date, now)).
			To(Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
	})

	It("should normalize Feb 29 to Mar 1 in non-leap years", func() {
		date := time.Date(1996, 2, 29, 0, 0, 0, 0, time.UTC)
		nonLeapNow := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

		Expect(calendar.NextOccurrence(date, nonLeapNow)).
			To(Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	})
})

var _ = Describe("CollectUpcomingEvents", func() {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	It("should include only events inside the window, sorted by date", func() {
		// ARRANGE
		soon := stubs.NewPersonStub().
			WithName("Ada", "Byron").
			WithBirthDate(time.Date(1970, 6, 20, 0, 0, 0, 0, time.UTC)).
			Get()
		later := stubs.NewPersonStub().
			WithName("Grace", "Hopper").
			WithBirthDate(time.Date(1960, 12, 9, 0, 0, 0, 0, time.UTC)).
			Get()

		couple := domain.Couple{
			RelationshipID: 7,
			PersonName:     "Ada Byron",
			SpouseName:     "William King",
			MarriageDate:   time.Date(1990, 6, 12, 0, 0, 0, 0, time.UTC),
		}

		// ACT
		items := calendar.CollectUpcomingEvents([]entities.Person{soon, later}, []domain.Couple{couple}, now, 30)

		// ASSERT
		Expect(items).To(HaveLen(2))
		Expect(items[0].Title).To(Equal("Anniversary: Ada Byron & William King"))
		Expect(items[1].Title).To(Equal("Birthday: Ada Byron"))
	})

	It("should skip persons without a birth date", func() {
		person := stubs.NewPersonStub().WithoutBirthDate().Get()

		// ACT
		items := calendar.CollectUpcomingEvents([]entities.Person{person}, nil, now, 365)

		// ASSERT
		Expect(items).To(BeEmpty())
	})

	It("should compute the milestone from the anniversary year", func() {
		couple := domain.Couple{
			RelationshipID: 9,
			PersonName:     "Ada Byron",
			SpouseName:     "William King",
			MarriageDate:   time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
		}

		// ACT
		items := calendar.CollectUpcomingEvents(nil, []domain.Couple{couple}, now, 30)

		// ASSERT
		Expect(items).To(HaveLen(1))
		Expect(items[0].Description).To(ContainSubstring("celebrate 25 years"))
	})
})

var _ = Describe("BuildUpcomingFeed", func() {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	It("should render an RSS 2.0 document with one item per event", func() {
		// ARRANGE
		items := []domain.UpcomingEvent{
			{
				Title:       "Birthday: Ada Byron",
				Description: "Ada Byron turns 55 on June 20.",
				GUID:        "person-1-birthday-2025",
				Date:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			},
		}

		// ACT
		body, err := calendar.BuildUpcomingFeed(items, now)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`<rss version="2.0">`))
		Expect(string(body)).To(ContainSubstring("<title>Birthday: Ada Byron</title>"))
		Expect(string(body)).To(ContainSubstring("<guid>person-1-birthday-2025</guid>"))
		Expect(string(body)).To(ContainSubstring("<pubDate>Fri, 20 Jun 2025 00:00:00 +0000</pubDate>"))
	})

	It("should render an empty channel when there are no events", func() {
		// ACT
		body, err := calendar.BuildUpcomingFeed(nil, now)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("<channel>"))
		Expect(string(body)).NotTo(ContainSubstring("<item>"))
	})
})
