package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

type RelationshipStub struct {
	relationship entities.Relationship
}

func NewRelationshipStub() RelationshipStub {
	now := time.Now().UTC()

	relationship := entities.Relationship{
		ID:              gofakeit.Int64(),
		PersonID:        gofakeit.Int64(),
		RelatedPersonID: gofakeit.Int64(),
		Type:            entities.RelationshipSpouse,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return RelationshipStub{relationship: relationship}
}

func (rs RelationshipStub) WithPersons(personID int64, relatedPersonID int64) RelationshipStub {
	rs.relationship.PersonID = personID
	rs.relationship.RelatedPersonID = relatedPersonID
	return rs
}

func (rs RelationshipStub) WithType(relationshipType entities.RelationshipType) RelationshipStub {
	rs.relationship.Type = relationshipType
	return rs
}

func (rs RelationshipStub) WithMarriageDate(marriageDate time.Time) RelationshipStub {
	rs.relationship.MarriageDate = &marriageDate
	return rs
}

func (rs RelationshipStub) WithDivorceDate(divorceDate time.Time) RelationshipStub {
	rs.relationship.DivorceDate = &divorceDate
	rs.relationship.IsActive = entities.DeriveIsActive(rs.relationship.Type, rs.relationship.DivorceDate)
	return rs
}

func (rs RelationshipStub) Get() entities.Relationship {
	return rs.relationship
}
