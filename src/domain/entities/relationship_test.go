package entities_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

var _ = Describe("RelationshipType", func() {
	Describe("Inverse", func() {
		It("should map PARENT and CHILD onto each other", func() {
			Expect(entities.RelationshipParent.Inverse()).To(Equal(entities.RelationshipChild))
			Expect(entities.RelationshipChild.Inverse()).To(Equal(entities.RelationshipParent))
		})

		It("should keep SPOUSE and SIBLING as their own inverse", func() {
			Expect(entities.RelationshipSpouse.Inverse()).To(Equal(entities.RelationshipSpouse))
			Expect(entities.RelationshipSibling.Inverse()).To(Equal(entities.RelationshipSibling))
		})

		It("should round-trip every valid type", func() {
			types := []entities.RelationshipType{
				entities.RelationshipParent,
				entities.RelationshipChild,
				entities.RelationshipSpouse,
				entities.RelationshipSibling,
			}

			for _, relationshipType := range types {
				Expect(relationshipType.Inverse().Inverse()).To(Equal(relationshipType))
			}
		})
	})

	Describe("Valid", func() {
		It("should accept the four known types", func() {
			Expect(entities.RelationshipParent.Valid()).To(BeTrue())
			Expect(entities.RelationshipChild.Valid()).To(BeTrue())
			Expect(entities.RelationshipSpouse.Valid()).To(BeTrue())
			Expect(entities.RelationshipSibling.Valid()).To(BeTrue())
		})

		It("should reject anything else", func() {
			Expect(entities.RelationshipType("COUSIN").Valid()).To(BeFalse())
			Expect(entities.RelationshipType("parent").Valid()).To(BeFalse())
			Expect(entities.RelationshipType("").Valid()).To(BeFalse())
		})
	})
})

var _ = Describe("DeriveIsActive", func() {
	divorceDate := time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)

	It("should be false only for a divorced SPOUSE", func() {
		Expect(entities.DeriveIsActive(entities.RelationshipSpouse, &divorceDate)).To(BeFalse())
	})

	It("should be true for a SPOUSE without divorce date", func() {
		Expect(entities.DeriveIsActive(entities.RelationshipSpouse, nil)).To(BeTrue())
	})

	It("should be true for non-spousal types regardless of dates", func() {
		Expect(entities.DeriveIsActive(entities.RelationshipParent, &divorceDate)).To(BeTrue())
		Expect(entities.DeriveIsActive(entities.RelationshipChild, &divorceDate)).To(BeTrue())
		Expect(entities.DeriveIsActive(entities.RelationshipSibling, &divorceDate)).To(BeTrue())
	})
})
