package calendar

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

// NextOccurrence returns the next calendar occurrence (month/day) of the
// given date at or after now, date precision. Feb 29 normalizes to Mar 1 in
// non-leap years.
func NextOccurrence(date time.Time, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	candidate := time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(now.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}

	return candidate
}

// CollectUpcomingEvents gathers birthdays and anniversaries falling within
// the next `days` days, sorted by occurrence.
func CollectUpcomingEvents(persons []entities.Person, couples []domain.Couple, now time.Time, days int) []domain.UpcomingEvent {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)

	items := make([]domain.UpcomingEvent, 0)

	for _, person := range persons {
		if person.BirthDate == nil {
			continue
		}

		occurrence := NextOccurrence(*person.BirthDate, now)
		if occurrence.After(cutoff) {
			continue
		}

		years := occurrence.Year() - person.BirthDate.Year()
		items = append(items, domain.UpcomingEvent{
			Title:       fmt.Sprintf("Birthday: %s", person.FullName()),
			Description: fmt.Sprintf("%s turns %d on %s.", person.FullName(), years, occurrence.Format("January 2")),
			GUID:        fmt.Sprintf("person-%d-birthday-%d", person.ID, occurrence.Year()),
			Date:        occurrence,
		})
	}

	for _, couple := range couples {
		occurrence := NextOccurrence(couple.MarriageDate, now)
		if occurrence.After(cutoff) {
			continue
		}

		years := occurrence.Year() - couple.MarriageDate.Year()
		items = append(items, domain.UpcomingEvent{
			Title:       fmt.Sprintf("Anniversary: %s & %s", couple.PersonName, couple.SpouseName),
			Description: fmt.Sprintf("%s and %s celebrate %d years on %s.", couple.PersonName, couple.SpouseName, years, occurrence.Format("January 2")),
			GUID:        fmt.Sprintf("relationship-%d-anniversary-%d", couple.RelationshipID, occurrence.Year()),
			Date:        occurrence,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].GUID < items[j].GUID
		}
		return items[i].Date.Before(items[j].Date)
	})

	return items
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

// BuildUpcomingFeed renders the collected events as an RSS 2.0 document.
func BuildUpcomingFeed(items []domain.UpcomingEvent, now time.Time) ([]byte, error) {
	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:         "Family calendar",
			Link:          "https://vamsa.local/calendar",
			Description:   "Upcoming birthdays and anniversaries",
			LastBuildDate: now.UTC().Format(time.RFC1123Z),
			Items:         make([]rssItem, 0, len(items)),
		},
	}

	for _, item := range items {
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       item.Title,
			Description: item.Description,
			GUID:        item.GUID,
			PubDate:     item.Date.Format(time.RFC1123Z),
		})
	}

	body, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}
