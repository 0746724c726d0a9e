package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

type LifeEventStub struct {
	event entities.LifeEvent
}

func NewLifeEventStub() LifeEventStub {
	now := time.Now().UTC()
	eventDate := gofakeit.DateRange(
		time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
	).Truncate(24 * time.Hour)

	event := entities.LifeEvent{
		ID:          gofakeit.Int64(),
		PersonID:    gofakeit.Int64(),
		EventType:   gofakeit.RandomString([]string{"BIRTH", "GRADUATION", "IMMIGRATION", "MILITARY_SERVICE"}),
		EventDate:   eventDate,
		Place:       gofakeit.City(),
		Description: gofakeit.Sentence(8),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return LifeEventStub{event: event}
}

func (les LifeEventStub) WithPersonID(personID int64) LifeEventStub {
	les.event.PersonID = personID
	return les
}

func (les LifeEventStub) WithEventType(eventType string) LifeEventStub {
	les.event.EventType = eventType
	return les
}

func (les LifeEventStub) WithEventDate(eventDate time.Time) LifeEventStub {
	les.event.EventDate = eventDate
	return les
}

func (les LifeEventStub) Get() entities.LifeEvent {
	return les.event
}
