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

var _ = Describe("Delete", func() {
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

	When("the relationship does not exist", func() {
		It("should return the relationship not found error", func() {
			// ACT
			err := relationshipService.Delete(ctx, 99999)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrRelationshipNotFound))
		})
	})

	When("deleting a SIBLING relationship", func() {
		It("should remove both rows and nothing else", func() {
			// ARRANGE
			siblings, err := relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: bob.ID,
				Type:            entities.RelationshipSibling,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: carol.ID,
				Type:            entities.RelationshipSibling,
			})
			Expect(err).NotTo(HaveOccurred())

			// ACT
			err = relationshipService.Delete(ctx, siblings.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())

			_, found, err := seeder.FindRelationship(ctx, alice.ID, bob.ID, entities.RelationshipSibling)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())

			_, found, err = seeder.FindRelationship(ctx, bob.ID, alice.ID, entities.RelationshipSibling)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())

			count, err := seeder.CountRelationships(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(2))
		})
	})

	When("deleting a PARENT relationship through the CHILD row", func() {
		It("should remove the PARENT row as well", func() {
			// ARRANGE: bob is alice's parent
			_, err := relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: bob.ID,
				Type:            entities.RelationshipParent,
			})
			Expect(err).NotTo(HaveOccurred())

			childRow, found, err := seeder.FindRelationship(ctx, bob.ID, alice.ID, entities.RelationshipChild)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			// ACT
			err = relationshipService.Delete(ctx, childRow.ID)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())

			count, err := seeder.CountRelationships(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})
	})
})
