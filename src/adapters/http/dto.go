package http

import (
	"fmt"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use 'YYYY-MM-DD'", value)
	}

	return &parsed, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}

	formatted := value.Format(dateLayout)
	return &formatted
}

// ############################################################
// ######################## PERSONS ###########################
// ############################################################

type PersonRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Gender     string `json:"gender,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	DeathDate  string `json:"death_date,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func (req PersonRequest) ToEntity() (entities.Person, error) {
	if req.FirstName == "" && req.LastName == "" {
		return entities.Person{}, fmt.Errorf("first_name or last_name is required")
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return entities.Person{}, fmt.Errorf("birth_date: %w", err)
	}

	deathDate, err := parseDate(req.DeathDate)
	if err != nil {
		return entities.Person{}, fmt.Errorf("death_date: %w", err)
	}

	return entities.Person{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		BirthDate:  birthDate,
		DeathDate:  deathDate,
		BirthPlace: req.BirthPlace,
		Occupation: req.Occupation,
		Notes:      req.Notes,
	}, nil
}

type PersonDTO struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Gender     string    `json:"gender,omitempty"`
	BirthDate  *string   `json:"birth_date,omitempty"`
	DeathDate  *string   `json:"death_date,omitempty"`
	BirthPlace string    `json:"birth_place,omitempty"`
	Occupation string    `json:"occupation,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func MapPersonToResponse(person entities.Person) PersonDTO {
	return PersonDTO{
		ID:         person.ID,
		FirstName:  person.FirstName,
		LastName:   person.LastName,
		Gender:     person.Gender,
		BirthDate:  formatDate(person.BirthDate),
		DeathDate:  formatDate(person.DeathDate),
		BirthPlace: person.BirthPlace,
		Occupation: person.Occupation,
		Notes:      person.Notes,
		CreatedAt:  person.CreatedAt,
		UpdatedAt:  person.UpdatedAt,
	}
}

type PersonDetailDTO struct {
	PersonDTO

	Relationships []RelationshipDTO `json:"relationships"`
	Events        []LifeEventDTO    `json:"events"`
}

func MapPersonDetailToResponse(detail domain.PersonDetail) PersonDetailDTO {
	dto := PersonDetailDTO{
		PersonDTO:     MapPersonToResponse(detail.Person),
		Relationships: make([]RelationshipDTO, 0, len(detail.Relationships)),
		Events:        make([]LifeEventDTO, 0, len(detail.Events)),
	}

	for _, rel := range detail.Relationships {
		dto.Relationships = append(dto.Relationships, MapRelationshipToResponse(rel))
	}

	for _, event := range detail.Events {
		dto.Events = append(dto.Events, MapLifeEventToResponse(event))
	}

	return dto
}

// ############################################################
// ##################### RELATIONSHIPS ########################
// ############################################################

type CreateRelationshipRequest struct {
	PersonID        int64  `json:"person_id"`
	RelatedPersonID int64  `json:"related_person_id"`
	Type            string `json:"type"`
	MarriageDate    string `json:"marriage_date,omitempty"`
	DivorceDate     string `json:"divorce_date,omitempty"`
}

func (req CreateRelationshipRequest) ToDomain() (domain.NewRelationship, error) {
	marriageDate, err := parseDate(req.MarriageDate)
	if err != nil {
		return domain.NewRelationship{}, fmt.Errorf("marriage_date: %w", err)
	}

	divorceDate, err := parseDate(req.DivorceDate)
	if err != nil {
		return domain.NewRelationship{}, fmt.Errorf("divorce_date: %w", err)
	}

	return domain.NewRelationship{
		PersonID:        req.PersonID,
		RelatedPersonID: req.RelatedPersonID,
		Type:            entities.RelationshipType(req.Type),
		MarriageDate:    marriageDate,
		DivorceDate:     divorceDate,
	}, nil
}

type PatchRelationshipRequest struct {
	MarriageDate *string `json:"marriage_date,omitempty"`
	DivorceDate  *string `json:"divorce_date,omitempty"`
}

func (req PatchRelationshipRequest) ToDomain() (domain.RelationshipPatch, error) {
	var patch domain.RelationshipPatch

	if req.MarriageDate != nil {
		marriageDate, err := parseDate(*req.MarriageDate)
		if err != nil {
			return domain.RelationshipPatch{}, fmt.Errorf("marriage_date: %w", err)
		}
		patch.MarriageDate = marriageDate
	}

	if req.DivorceDate != nil {
		divorceDate, err := parseDate(*req.DivorceDate)
		if err != nil {
			return domain.RelationshipPatch{}, fmt.Errorf("divorce_date: %w", err)
		}
		patch.DivorceDate = divorceDate
	}

	return patch, nil
}

type RelationshipDTO struct {
	ID              int64     `json:"id"`
	PersonID        int64     `json:"person_id"`
	RelatedPersonID int64     `json:"related_person_id"`
	Type            string    `json:"type"`
	MarriageDate    *string   `json:"marriage_date,omitempty"`
	DivorceDate     *string   `json:"divorce_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func MapRelationshipToResponse(rel entities.Relationship) RelationshipDTO {
	return RelationshipDTO{
		ID:              rel.ID,
		PersonID:        rel.PersonID,
		RelatedPersonID: rel.RelatedPersonID,
		Type:            string(rel.Type),
		MarriageDate:    formatDate(rel.MarriageDate),
		DivorceDate:     formatDate(rel.DivorceDate),
		IsActive:        rel.IsActive,
		CreatedAt:       rel.CreatedAt,
		UpdatedAt:       rel.UpdatedAt,
	}
}

type BatchRelationshipRequest struct {
	Items []CreateRelationshipRequest `json:"items"`
}

type BatchItemDTO struct {
	Index        int              `json:"index"`
	Relationship *RelationshipDTO `json:"relationship,omitempty"`
	Error        string           `json:"error,omitempty"`
}

type BatchResponseDTO struct {
	Created int            `json:"created"`
	Failed  int            `json:"failed"`
	Results []BatchItemDTO `json:"results"`
}

// ############################################################
// ###################### LIFE EVENTS #########################
// ############################################################

type LifeEventRequest struct {
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	Place       string `json:"place,omitempty"`
	Description string `json:"description,omitempty"`
}

func (req LifeEventRequest) ToEntity(personID int64) (entities.LifeEvent, error) {
	if req.EventType == "" {
		return entities.LifeEvent{}, fmt.Errorf("event_type is required")
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil || eventDate == nil {
		return entities.LifeEvent{}, fmt.Errorf("event_date is required, use 'YYYY-MM-DD'")
	}

	return entities.LifeEvent{
		PersonID:    personID,
		EventType:   req.EventType,
		EventDate:   *eventDate,
		Place:       req.Place,
		Description: req.Description,
	}, nil
}

type LifeEventDTO struct {
	ID          int64     `json:"id"`
	PersonID    int64     `json:"person_id"`
	EventType   string    `json:"event_type"`
	EventDate   string    `json:"event_date"`
	Place       string    `json:"place,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func MapLifeEventToResponse(event entities.LifeEvent) LifeEventDTO {
	return LifeEventDTO{
		ID:          event.ID,
		PersonID:    event.PersonID,
		EventType:   event.EventType,
		EventDate:   event.EventDate.Format(dateLayout),
		Place:       event.Place,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// ############################################################
// ###################### FAMILY TREE #########################
// ############################################################

type FamilyNodeDTO struct {
	PersonDTO

	Events []LifeEventDTO       `json:"events"`
	Edges  []*FamilyNodeEdgeDTO `json:"edges"`
}

type FamilyNodeEdgeDTO struct {
	Type string         `json:"type"`
	Node *FamilyNodeDTO `json:"node"`
}

func MapFamilyNodeToResponse(node *domain.FamilyNode) *FamilyNodeDTO {
	if node == nil {
		return nil
	}

	dto := &FamilyNodeDTO{
		PersonDTO: MapPersonToResponse(node.Person),
		Events:    make([]LifeEventDTO, 0, len(node.Events)),
		Edges:     make([]*FamilyNodeEdgeDTO, 0, len(node.Edges)),
	}

	for _, event := range node.Events {
		dto.Events = append(dto.Events, MapLifeEventToResponse(event))
	}

	for _, edge := range node.Edges {
		dto.Edges = append(dto.Edges, &FamilyNodeEdgeDTO{
			Type: string(edge.Type),
			Node: MapFamilyNodeToResponse(edge.Node),
		})
	}

	return dto
}
