package domain

import (
	"errors"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

var (
	ErrPersonNotFound        = errors.New("person not found")
	ErrRelationshipNotFound  = errors.New("relationship not found")
	ErrLifeEventNotFound     = errors.New("life event not found")
	ErrSelfRelationship      = errors.New("a person cannot be related to themselves")
	ErrDuplicateRelationship = errors.New("relationship already exists")
	ErrInvalidRelationship   = errors.New("invalid relationship type")

	ErrUnavailableServer = errors.New("Oops, something unexpected happened. Please try again later.")
)

// ############################################################
// ################ FAMILY TREE READ PATH #####################
// ############################################################

// TreeDirection selects which edges the tree walk follows from the root.
type TreeDirection string

const (
	TreeDescendants TreeDirection = "descendants"
	TreeAncestors   TreeDirection = "ancestors"
)

// EdgeType maps a walk direction to the relationship rows it traverses:
// descendants follow CHILD rows, ancestors follow PARENT rows.
func (d TreeDirection) EdgeType() entities.RelationshipType {
	if d == TreeAncestors {
		return entities.RelationshipParent
	}
	return entities.RelationshipChild
}

func (d TreeDirection) Valid() bool {
	return d == TreeDescendants || d == TreeAncestors
}

// TreeRow is one row of the recursive tree query: the person plus the
// structural info of who reached it (its parents within the walk).
type TreeRow struct {
	entities.Person
	ParentsInfo []ParentInfo
}

// ParentInfo describes a single incoming edge of the walk.
type ParentInfo struct {
	ParentID int64                     `json:"parent_id"`
	Type     entities.RelationshipType `json:"type"`
}

// FamilyNode is a node of the assembled tree. Edges point at other
// FamilyNodes, creating the recursion.
type FamilyNode struct {
	entities.Person

	Events []entities.LifeEvent
	Edges  []*FamilyEdge
}

type FamilyEdge struct {
	Type entities.RelationshipType
	Node *FamilyNode
}

// ############################################################
// ############### RELATIONSHIP WRITE PATH ####################
// ############################################################

// NewRelationship carries the input of a relationship create. The same shape
// is used by the single and batch endpoints.
type NewRelationship struct {
	PersonID        int64
	RelatedPersonID int64
	Type            entities.RelationshipType
	MarriageDate    *time.Time
	DivorceDate     *time.Time
}

// RelationshipPatch updates the date fields of an existing relationship.
// A nil field leaves the stored value unchanged.
type RelationshipPatch struct {
	MarriageDate *time.Time
	DivorceDate  *time.Time
}

// BatchItemResult is the per-item outcome of a batch create. Exactly one of
// Relationship and Err is set.
type BatchItemResult struct {
	Index        int
	Relationship *entities.Relationship
	Err          error
}

// PersonDetail is the full read model of one person: the record plus their
// forward relationships and timeline.
type PersonDetail struct {
	entities.Person

	Relationships []entities.Relationship
	Events        []entities.LifeEvent
}

// ############################################################
// #################### CALENDAR FEEDS ########################
// ############################################################

// Couple is one active marriage, reported once per pair.
type Couple struct {
	RelationshipID int64
	PersonID       int64
	PersonName     string
	SpouseID       int64
	SpouseName     string
	MarriageDate   time.Time
}

// UpcomingEvent is a feed item of the RSS surface.
type UpcomingEvent struct {
	Title       string
	Description string
	GUID        string
	Date        time.Time
}

// ############################################################
// ####################### METRICS ############################
// ############################################################

type DBPoolMetrics struct {
	TotalConns        int32 `json:"total_conns"`
	AcquiredConns     int32 `json:"acquired_conns"`
	IdleConns         int32 `json:"idle_conns"`
	ConstructingConns int32 `json:"constructing_conns"`
	MaxConns          int32 `json:"max_conns"`
	NewConnsCount     int64 `json:"new_conns_count"`
	AcquireCount      int64 `json:"acquire_count"`
	EmptyAcquireCount int64 `json:"empty_acquire_count"`
}

type CachePoolMetrics struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type MetricsSnapshot struct {
	UptimeSeconds int64             `json:"uptime_seconds"`
	DB            DBPoolMetrics     `json:"db"`
	Cache         *CachePoolMetrics `json:"cache,omitempty"`
}
