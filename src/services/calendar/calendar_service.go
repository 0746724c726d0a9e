package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
)

// CalendarService renders the stored persons and marriages as subscribable
// feeds: iCalendar files for birthdays and anniversaries, and an RSS feed of
// the dates falling due soon.
type CalendarService struct {
	calendarQueryRepository *repositories.CalendarQueryRepository
}

func NewCalendarService(calendarQueryRepository *repositories.CalendarQueryRepository) *CalendarService {
	return &CalendarService{calendarQueryRepository: calendarQueryRepository}
}

func (cs *CalendarService) BirthdayCalendar(ctx context.Context) ([]byte, error) {
	persons, err := cs.calendarQueryRepository.ListBirthdayPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("CalendarService.BirthdayCalendar - %w", err)
	}

	return BuildBirthdayCalendar(persons), nil
}

func (cs *CalendarService) AnniversaryCalendar(ctx context.Context) ([]byte, error) {
	couples, err := cs.calendarQueryRepository.ListActiveCouples(ctx)
	if err != nil {
		return nil, fmt.Errorf("CalendarService.AnniversaryCalendar - %w", err)
	}

	return BuildAnniversaryCalendar(couples), nil
}

// UpcomingFeed returns an RSS document of birthdays and anniversaries
// occurring within the next `days` days.
func (cs *CalendarService) UpcomingFeed(ctx context.Context, now time.Time, days int) ([]byte, error) {
	persons, err := cs.calendarQueryRepository.ListBirthdayPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("CalendarService.UpcomingFeed - %w", err)
	}

	couples, err := cs.calendarQueryRepository.ListActiveCouples(ctx)
	if err != nil {
		return nil, fmt.Errorf("CalendarService.UpcomingFeed - %w", err)
	}

	items := CollectUpcomingEvents(persons, couples, now, days)

	feed, err := BuildUpcomingFeed(items, now)
	if err != nil {
		return nil, fmt.Errorf("CalendarService.UpcomingFeed - failed to build feed: %w", err)
	}

	return feed, nil
}
