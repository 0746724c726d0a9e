//go:build datagen_postgres
// +build datagen_postgres

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-faker/faker/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/helper/env"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
)

type seedPerson struct {
	id        int64
	lastName  string
	birthDate time.Time
	deathDate *time.Time
	gender    string
}

type relationshipRow struct {
	personID        int64
	relatedPersonID int64
	relType         entities.RelationshipType
	marriageDate    *time.Time
	divorceDate     *time.Time
	isActive        bool
}

type lifeEventRow struct {
	personID    int64
	eventType   string
	eventDate   time.Time
	place       string
	description string
}

func newSQLClient() (*pgxpool.Pool, error) {
	dbHost := env.MustGetString("DB_HOST")
	dbPort := env.GetString("DB_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := env.GetInt("DB_MAX_POOL_CONNECTIONS", 25)
	return postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	numFamilies := flag.Int("families", 10, "Number of family trees to create")
	generations := flag.Int("generations", 4, "Generations per family tree")
	maxChildren := flag.Int("max-children", 4, "Maximum children per couple")
	flag.Parse()

	pool, err := newSQLClient()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("Interrupted, stopping...")
		cancel()
	}()

	start := time.Now()
	totalPersons := 0

	for i := 0; i < *numFamilies; i++ {
		select {
		case <-ctx.Done():
			log.Printf("Stopped after %d families", i)
			return
		default:
		}

		created, err := seedFamily(ctx, pool, *generations, *maxChildren)
		if err != nil {
			log.Fatalf("Failed to seed family %d: %v", i+1, err)
		}
		totalPersons += created
	}

	log.Printf("Seeded %d families, %d persons in %s", *numFamilies, totalPersons, time.Since(start))
}

// seedFamily builds one multi-generation tree: a founding couple, their
// descendants with spouses, plus relationship pairs and life events. All
// rows of one family go in a single transaction.
func seedFamily(ctx context.Context, pool *pgxpool.Pool, generations int, maxChildren int) (int, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	familyName := gofakeit.LastName()
	foundingYear := 1900 + rand.Intn(40)

	husband, err := insertPerson(ctx, tx, familyName, "male", foundingYear)
	if err != nil {
		return 0, err
	}
	wife, err := insertPerson(ctx, tx, gofakeit.LastName(), "female", foundingYear+rand.Intn(5))
	if err != nil {
		return 0, err
	}

	count := 2
	relationships := make([]relationshipRow, 0)
	lifeEvents := make([]lifeEventRow, 0)

	relationships = append(relationships, marriageRows(husband, wife)...)
	lifeEvents = append(lifeEvents, birthEvents(husband, wife)...)

	couple := [2]seedPerson{husband, wife}

	for gen := 1; gen < generations; gen++ {
		nextCouples := make([][2]seedPerson, 0)

		numChildren := 1 + rand.Intn(maxChildren)
		for c := 0; c < numChildren; c++ {
			gender := "female"
			if rand.Intn(2) == 0 {
				gender = "male"
			}

			childYear := couple[0].birthDate.Year() + 20 + rand.Intn(15)
			child, err := insertPerson(ctx, tx, familyName, gender, childYear)
			if err != nil {
				return 0, err
			}
			count++

			relationships = append(relationships, parentRows(couple[0], child)...)
			relationships = append(relationships, parentRows(couple[1], child)...)
			lifeEvents = append(lifeEvents, birthEvents(child)...)

			// Most children marry and carry the next generation
			if rand.Float64() < 0.8 {
				spouseGender := "female"
				if gender == "female" {
					spouseGender = "male"
				}
				spouse, err := insertPerson(ctx, tx, gofakeit.LastName(), spouseGender, childYear+rand.Intn(6)-3)
				if err != nil {
					return 0, err
				}
				count++

				relationships = append(relationships, marriageRows(child, spouse)...)
				lifeEvents = append(lifeEvents, birthEvents(spouse)...)
				nextCouples = append(nextCouples, [2]seedPerson{child, spouse})
			}
		}

		// Siblings within the generation
		children := make([]seedPerson, 0, len(nextCouples))
		for _, pair := range nextCouples {
			children = append(children, pair[0])
		}
		for i := 0; i < len(children); i++ {
			for j := i + 1; j < len(children); j++ {
				relationships = append(relationships, siblingRows(children[i], children[j])...)
			}
		}

		if len(nextCouples) == 0 {
			break
		}
		couple = nextCouples[rand.Intn(len(nextCouples))]
	}

	if err := copyRelationships(ctx, tx, relationships); err != nil {
		return 0, err
	}
	if err := copyLifeEvents(ctx, tx, lifeEvents); err != nil {
		return 0, err
	}

	return count, tx.Commit(ctx)
}

func insertPerson(ctx context.Context, tx pgx.Tx, lastName string, gender string, birthYear int) (seedPerson, error) {
	birthDate := time.Date(birthYear, time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC)

	var deathDate *time.Time
	if time.Now().Year()-birthYear > 85 {
		d := birthDate.AddDate(60+rand.Intn(35), rand.Intn(12), rand.Intn(28))
		deathDate = &d
	}

	firstName := gofakeit.FirstName()
	person := seedPerson{lastName: lastName, birthDate: birthDate, deathDate: deathDate, gender: gender}

	err := tx.QueryRow(ctx, `
		INSERT INTO persons (first_name, last_name, gender, birth_date, death_date, birth_place, occupation, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		firstName,
		lastName,
		gender,
		birthDate,
		postgres.NewNullDate(deathDate),
		gofakeit.City(),
		gofakeit.JobTitle(),
		faker.Sentence(),
	).Scan(&person.id)

	return person, err
}

func marriageRows(a seedPerson, b seedPerson) []relationshipRow {
	older := a.birthDate
	if b.birthDate.After(older) {
		older = b.birthDate
	}
	marriageDate := older.AddDate(20+rand.Intn(10), rand.Intn(12), rand.Intn(28))

	var divorceDate *time.Time
	isActive := true
	if rand.Float64() < 0.1 {
		d := marriageDate.AddDate(2+rand.Intn(20), 0, 0)
		divorceDate = &d
		isActive = false
	}

	return []relationshipRow{
		{a.id, b.id, entities.RelationshipSpouse, &marriageDate, divorceDate, isActive},
		{b.id, a.id, entities.RelationshipSpouse, &marriageDate, divorceDate, isActive},
	}
}

// parentRows links parent and child in both directions: the child's row
// points at the parent with type PARENT, the parent's row at the child
// with type CHILD.
func parentRows(parent seedPerson, child seedPerson) []relationshipRow {
	return []relationshipRow{
		{child.id, parent.id, entities.RelationshipParent, nil, nil, true},
		{parent.id, child.id, entities.RelationshipChild, nil, nil, true},
	}
}

func siblingRows(a seedPerson, b seedPerson) []relationshipRow {
	return []relationshipRow{
		{a.id, b.id, entities.RelationshipSibling, nil, nil, true},
		{b.id, a.id, entities.RelationshipSibling, nil, nil, true},
	}
}

func birthEvents(people ...seedPerson) []lifeEventRow {
	events := make([]lifeEventRow, 0, len(people))
	for _, person := range people {
		events = append(events, lifeEventRow{
			personID:    person.id,
			eventType:   "BIRTH",
			eventDate:   person.birthDate,
			place:       gofakeit.City(),
			description: fmt.Sprintf("Born in %d", person.birthDate.Year()),
		})

		if person.deathDate != nil {
			events = append(events, lifeEventRow{
				personID:    person.id,
				eventType:   "DEATH",
				eventDate:   *person.deathDate,
				place:       gofakeit.City(),
				description: fmt.Sprintf("Died in %d", person.deathDate.Year()),
			})
		}
	}
	return events
}

func copyRelationships(ctx context.Context, tx pgx.Tx, rows []relationshipRow) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"relationships"},
		[]string{"person_id", "related_person_id", "type", "marriage_date", "divorce_date", "is_active"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{
				row.personID,
				row.relatedPersonID,
				string(row.relType),
				postgres.NewNullDate(row.marriageDate),
				postgres.NewNullDate(row.divorceDate),
				row.isActive,
			}, nil
		}),
	)
	return err
}

func copyLifeEvents(ctx context.Context, tx pgx.Tx, rows []lifeEventRow) error {
	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"life_events"},
		[]string{"person_id", "event_type", "event_date", "place", "description"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{row.personID, row.eventType, row.eventDate, row.place, row.description}, nil
		}),
	)
	return err
}
