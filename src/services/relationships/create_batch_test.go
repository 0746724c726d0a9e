package relationships_test

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/helper/env"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/relationships"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/stubs"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/test_seeder"
)

var _ = Describe("CreateBatch", func() {
	var (
		pool                *pgxpool.Pool
		seeder              test_seeder.TestSeeder
		relationshipService *relationships.RelationshipService
		ctx                 context.Context
		err                 error

		alice entities.Person
		bob   entities.Person
		carol entities.Person
	)

	BeforeEach(func() {
		ctx = context.Background()

		dbHost := env.GetString("TEST_DB_HOST", "localhost")
		dbPort := env.GetString("TEST_DB_PORT", "5432")
		dbname := env.GetString("TEST_DB_NAME", "vamsa_test")
		dbUser := env.GetString("TEST_DB_USER", "postgres")
		dbPassword := env.GetString("TEST_DB_PASSWORD", "postgres")
		maxConnections := env.GetInt("TEST_DB_MAX_POOL_CONNECTIONS", 25)

		pool, err = postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
		if err != nil {
			panic(err)
		}

		treeQueryRepository := repositories.NewTreeQueryRepository(pool)
		cachedTreeRepository := repositories.NewCachedTreeRepository(treeQueryRepository, nil)
		personRepository := repositories.NewPersonRepository(pool, cachedTreeRepository)
		relationshipRepository := repositories.NewRelationshipRepository(pool, cachedTreeRepository)
		eventPublisher := events.NewDomainEventPublisher(slog.Default(), nil, "test-topic")
		relationshipService = relationships.NewRelationshipService(relationshipRepository, personRepository, eventPublisher)
		seeder = test_seeder.New(pool)

		seeder.TruncateTables(ctx)

		alice = stubs.NewPersonStub().WithName("Alice", "Miller").Get()
		bob = stubs.NewPersonStub().WithName("Bob", "Miller").Get()
		carol = stubs.NewPersonStub().WithName("Carol", "Miller").Get()
		seeder.InsertPerson(ctx, &alice)
		seeder.InsertPerson(ctx, &bob)
		seeder.InsertPerson(ctx, &carol)
	})

	AfterEach(func() {
		pool.Close()
	})

	When("every item is valid", func() {
		It("should create all pairs and report one result per item", func() {
			// ACT
			results := relationshipService.CreateBatch(ctx, []domain.NewRelationship{
				{PersonID: alice.ID, RelatedPersonID: bob.ID, Type: entities.RelationshipSpouse},
				{PersonID: alice.ID, RelatedPersonID: carol.ID, Type: entities.RelationshipParent},
			})

			// ASSERT
			Expect(results).To(HaveLen(2))
			for i, result := range results {
				Expect(result.Index).To(Equal(i))
				Expect(result.Err).NotTo(HaveOccurred())
				Expect(result.Relationship).NotTo(BeNil())
			}

			count, err := seeder.CountRelationships(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(4))
		})
	})

	When("an item in the middle fails", func() {
		It("should keep processing the remaining items", func() {
			// ACT
			results := relationshipService.CreateBatch(ctx, []domain.NewRelationship{
				{PersonID: alice.ID, RelatedPersonID: bob.ID, Type: entities.RelationshipSibling},
				{PersonID: alice.ID, RelatedPersonID: alice.ID, Type: entities.RelationshipSibling},
				{PersonID: bob.ID, RelatedPersonID: carol.ID, Type: entities.RelationshipSibling},
			})

			// ASSERT
			Expect(results).To(HaveLen(3))
			Expect(results[0].Err).NotTo(HaveOccurred())
			Expect(results[1].Err).To(MatchError(domain.ErrSelfRelationship))
			Expect(results[1].Relationship).To(BeNil())
			Expect(results[2].Err).NotTo(HaveOccurred())

			count, err := seeder.CountRelationships(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(4))
		})
	})

	When("the batch repeats the same pair", func() {
		It("should fail the second occurrence as a duplicate", func() {
			// ACT
			results := relationshipService.CreateBatch(ctx, []domain.NewRelationship{
				{PersonID: alice.ID, RelatedPersonID: bob.ID, Type: entities.RelationshipSpouse},
				{PersonID: alice.ID, RelatedPersonID: bob.ID, Type: entities.RelationshipSpouse},
			})

			// ASSERT
			Expect(results[0].Err).NotTo(HaveOccurred())
			Expect(results[1].Err).To(MatchError(domain.ErrDuplicateRelationship))
		})
	})
})
