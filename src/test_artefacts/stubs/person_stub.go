package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

type PersonStub struct {
	person entities.Person
}

func NewPersonStub() PersonStub {
	now := time.Now().UTC()
	birthDate := gofakeit.DateRange(
		time.Date(1930, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
	).Truncate(24 * time.Hour)

	person := entities.Person{
		ID:         gofakeit.Int64(),
		FirstName:  gofakeit.FirstName(),
		LastName:   gofakeit.LastName(),
		Gender:     gofakeit.RandomString([]string{"male", "female"}),
		BirthDate:  &birthDate,
		BirthPlace: gofakeit.City(),
		Occupation: gofakeit.JobTitle(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return PersonStub{person: person}
}

func (ps PersonStub) WithName(firstName string, lastName string) PersonStub {
	ps.person.FirstName = firstName
	ps.person.LastName = lastName
	return ps
}

func (ps PersonStub) WithBirthDate(birthDate time.Time) PersonStub {
	ps.person.BirthDate = &birthDate
	return ps
}

func (ps PersonStub) WithoutBirthDate() PersonStub {
	ps.person.BirthDate = nil
	return ps
}

func (ps PersonStub) WithDeathDate(deathDate time.Time) PersonStub {
	ps.person.DeathDate = &deathDate
	return ps
}

func (ps PersonStub) Get() entities.Person {
	return ps.person
}
