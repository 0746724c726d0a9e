package calendar

import (
	"fmt"
	"strings"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

const icsProdID = "-//vamsa//family-calendar//EN"

// BuildBirthdayCalendar renders one yearly recurring VEVENT per person.
func BuildBirthdayCalendar(persons []entities.Person) []byte {
	var b strings.Builder

	writeCalendarHeader(&b)

	for _, person := range persons {
		if person.BirthDate == nil {
			continue
		}

		writeEvent(&b, icsEvent{
			uid:     fmt.Sprintf("person-%d-birthday@vamsa", person.ID),
			date:    person.BirthDate.Format("20060102"),
			summary: "Birthday: " + person.FullName(),
		})
	}

	writeCalendarFooter(&b)

	return []byte(b.String())
}

// BuildAnniversaryCalendar renders one yearly recurring VEVENT per couple.
func BuildAnniversaryCalendar(couples []domain.Couple) []byte {
	var b strings.Builder

	writeCalendarHeader(&b)

	for _, couple := range couples {
		writeEvent(&b, icsEvent{
			uid:     fmt.Sprintf("relationship-%d-anniversary@vamsa", couple.RelationshipID),
			date:    couple.MarriageDate.Format("20060102"),
			summary: fmt.Sprintf("Anniversary: %s & %s", couple.PersonName, couple.SpouseName),
		})
	}

	writeCalendarFooter(&b)

	return []byte(b.String())
}

type icsEvent struct {
	uid     string
	date    string
	summary string
}

func writeCalendarHeader(b *strings.Builder) {
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:" + icsProdID + "\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
}

func writeCalendarFooter(b *strings.Builder) {
	b.WriteString("END:VCALENDAR\r\n")
}

func writeEvent(b *strings.Builder, event icsEvent) {
	b.WriteString("BEGIN:VEVENT\r\n")
	b.WriteString("UID:" + event.uid + "\r\n")
	b.WriteString("DTSTART;VALUE=DATE:" + event.date + "\r\n")
	b.WriteString("RRULE:FREQ=YEARLY\r\n")
	b.WriteString("SUMMARY:" + icsEscape(event.summary) + "\r\n")
	b.WriteString("END:VEVENT\r\n")
}

// icsEscape escapes the characters RFC 5545 reserves in text values.
func icsEscape(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
