package relationships_test

import (
	"context"
	"log/slog"
	"time"

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

var _ = Describe("Update", func() {
	var (
		pool                *pgxpool.Pool
		seeder              test_seeder.TestSeeder
		relationshipService *relationships.RelationshipService
		ctx                 context.Context
		err                 error

		alice entities.Person
		bob   entities.Person
	)

	marriageDate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

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
		seeder.InsertPerson(ctx, &alice)
		seeder.InsertPerson(ctx, &bob)
	})

	AfterEach(func() {
		pool.Close()
	})

	When("the relationship does not exist", func() {
		It("should return the relationship not found error", func() {
			// ACT
			_, err := relationshipService.Update(ctx, 99999, domain.RelationshipPatch{})

			// ASSERT
			Expect(err).To(MatchError(domain.ErrRelationshipNotFound))
		})
	})

	When("adding a divorce date to a SPOUSE relationship", func() {
		It("should deactivate both rows of the pair", func() {
			// ARRANGE
			created, err := relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: bob.ID,
				Type:            entities.RelationshipSpouse,
				MarriageDate:    &marriageDate,
			})
			Expect(err).NotTo(HaveOccurred())

			divorceDate := time.Date(2010, 3, 15, 0, 0, 0, 0, time.UTC)

			// ACT
			updated, err := relationshipService.Update(ctx, created.ID, domain.RelationshipPatch{
				DivorceDate: &divorceDate,
			})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())
			Expect(updated.MarriageDate).NotTo(BeNil())
			Expect(updated.MarriageDate.Equal(marriageDate)).To(BeTrue())

			reciprocal, found, err := seeder.FindRelationship(ctx, bob.ID, alice.ID, entities.RelationshipSpouse)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(reciprocal.IsActive).To(BeFalse())
			Expect(reciprocal.DivorceDate).NotTo(BeNil())
			Expect(reciprocal.DivorceDate.Equal(divorceDate)).To(BeTrue())
		})
	})

	When("patching only the marriage date", func() {
		It("should keep the stored divorce date untouched", func() {
			// ARRANGE
			divorceDate := time.Date(2001, 7, 9, 0, 0, 0, 0, time.UTC)
			created, err := relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: bob.ID,
				Type:            entities.RelationshipSpouse,
				MarriageDate:    &marriageDate,
				DivorceDate:     &divorceDate,
			})
			Expect(err).NotTo(HaveOccurred())

			newMarriageDate := time.Date(1991, 5, 1, 0, 0, 0, 0, time.UTC)

			// ACT
			updated, err := relationshipService.Update(ctx, created.ID, domain.RelationshipPatch{
				MarriageDate: &newMarriageDate,
			})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.MarriageDate.Equal(newMarriageDate)).To(BeTrue())
			Expect(updated.DivorceDate).NotTo(BeNil())
			Expect(updated.DivorceDate.Equal(divorceDate)).To(BeTrue())
			Expect(updated.IsActive).To(BeFalse())
		})
	})

	When("updating a PARENT relationship", func() {
		It("should not touch the CHILD reciprocal", func() {
			// ARRANGE: bob is alice's parent
			created, err := relationshipService.Create(ctx, domain.NewRelationship{
				PersonID:        alice.ID,
				RelatedPersonID: bob.ID,
				Type:            entities.RelationshipParent,
			})
			Expect(err).NotTo(HaveOccurred())

			reciprocalBefore, found, err := seeder.FindRelationship(ctx, bob.ID, alice.ID, entities.RelationshipChild)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			someDate := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

			// ACT
			updated, err := relationshipService.Update(ctx, created.ID, domain.RelationshipPatch{
				MarriageDate: &someDate,
			})

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsActive).To(BeTrue())

			reciprocalAfter, found, err := seeder.FindRelationship(ctx, bob.ID, alice.ID, entities.RelationshipChild)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(reciprocalAfter.MarriageDate).To(BeNil())
			Expect(reciprocalAfter.UpdatedAt).To(Equal(reciprocalBefore.UpdatedAt))
		})
	})
})
