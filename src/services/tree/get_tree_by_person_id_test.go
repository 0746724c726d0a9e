package tree_test

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/helper/env"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/tree"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/stubs"
	"github.com/darshan-rambhia/vamsa-sub006/src/test_artefacts/test_seeder"
)

var _ = Describe("GetTreeByPersonID", func() {
	var (
		pool        *pgxpool.Pool
		seeder      test_seeder.TestSeeder
		treeService *tree.TreeService
		ctx         context.Context
		err         error

		grandparent entities.Person
		parent      entities.Person
		grandchild  entities.Person
	)

	defaultDepth := 5

	// seedPair writes both rows of one logical relationship
	seedPair := func(personID int64, relatedPersonID int64, relationshipType entities.RelationshipType) {
		forward := stubs.NewRelationshipStub().
			WithPersons(personID, relatedPersonID).
			WithType(relationshipType).
			Get()
		reciprocal := stubs.NewRelationshipStub().
			WithPersons(relatedPersonID, personID).
			WithType(relationshipType.Inverse()).
			Get()

		seeder.InsertRelationship(ctx, &forward)
		seeder.InsertRelationship(ctx, &reciprocal)
	}

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
		treeService = tree.NewTreeService(cachedTreeRepository)
		seeder = test_seeder.New(pool)

		seeder.TruncateTables(ctx)

		// Three generations: grandparent -> parent -> grandchild
		grandparent = stubs.NewPersonStub().WithName("Edith", "Clarke").Get()
		parent = stubs.NewPersonStub().WithName("Frank", "Clarke").Get()
		grandchild = stubs.NewPersonStub().WithName("Grace", "Clarke").Get()
		seeder.InsertPerson(ctx, &grandparent)
		seeder.InsertPerson(ctx, &parent)
		seeder.InsertPerson(ctx, &grandchild)

		seedPair(grandparent.ID, parent.ID, entities.RelationshipChild)
		seedPair(parent.ID, grandchild.ID, entities.RelationshipChild)
	})

	AfterEach(func() {
		pool.Close()
	})

	When("the root person does not exist", func() {
		It("should return the person not found error", func() {
			// ACT
			result, err := treeService.GetTreeByPersonID(ctx, 99999, defaultDepth, domain.TreeDescendants)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrPersonNotFound))
			Expect(result).To(BeNil())
		})
	})

	When("walking descendants from the grandparent", func() {
		It("should return the full nested tree", func() {
			// ACT
			root, err := treeService.GetTreeByPersonID(ctx, grandparent.ID, defaultDepth, domain.TreeDescendants)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(root.ID).To(Equal(grandparent.ID))
			Expect(root.Edges).To(HaveLen(1))
			Expect(root.Edges[0].Type).To(Equal(entities.RelationshipChild))

			parentNode := root.Edges[0].Node
			Expect(parentNode.ID).To(Equal(parent.ID))
			Expect(parentNode.Edges).To(HaveLen(1))
			Expect(parentNode.Edges[0].Node.ID).To(Equal(grandchild.ID))
			Expect(parentNode.Edges[0].Node.Edges).To(BeEmpty())
		})

		It("should stop at the depth limit", func() {
			// ACT
			root, err := treeService.GetTreeByPersonID(ctx, grandparent.ID, 1, domain.TreeDescendants)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(root.Edges).To(HaveLen(1))
			Expect(root.Edges[0].Node.ID).To(Equal(parent.ID))
			Expect(root.Edges[0].Node.Edges).To(BeEmpty())
		})
	})

	When("walking ancestors from the grandchild", func() {
		It("should return the chain of PARENT edges", func() {
			// ACT
			root, err := treeService.GetTreeByPersonID(ctx, grandchild.ID, defaultDepth, domain.TreeAncestors)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(root.ID).To(Equal(grandchild.ID))
			Expect(root.Edges).To(HaveLen(1))
			Expect(root.Edges[0].Type).To(Equal(entities.RelationshipParent))

			parentNode := root.Edges[0].Node
			Expect(parentNode.ID).To(Equal(parent.ID))
			Expect(parentNode.Edges).To(HaveLen(1))
			Expect(parentNode.Edges[0].Node.ID).To(Equal(grandparent.ID))
		})
	})

	When("persons in the tree have life events", func() {
		It("should attach the events to their nodes", func() {
			// ARRANGE
			graduation := stubs.NewLifeEventStub().
				WithPersonID(parent.ID).
				WithEventType("GRADUATION").
				Get()
			seeder.InsertLifeEvent(ctx, &graduation)

			// ACT
			root, err := treeService.GetTreeByPersonID(ctx, grandparent.ID, defaultDepth, domain.TreeDescendants)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(root.Events).To(BeEmpty())

			parentNode := root.Edges[0].Node
			Expect(parentNode.Events).To(HaveLen(1))
			Expect(parentNode.Events[0].EventType).To(Equal("GRADUATION"))
		})
	})

	When("no direction is given", func() {
		It("should default to descendants", func() {
			// ACT
			root, err := treeService.GetTreeByPersonID(ctx, grandparent.ID, defaultDepth, "")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(root.Edges).To(HaveLen(1))
			Expect(root.Edges[0].Type).To(Equal(entities.RelationshipChild))
		})
	})
})
