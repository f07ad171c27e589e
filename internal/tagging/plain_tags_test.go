package tagging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/b63/shepherd-sim/internal/replacement"
	"github.com/b63/shepherd-sim/internal/tagging"
)

var _ = Describe("NewPlainTags", func() {
	It("panics on a non-positive associativity", func() {
		Expect(func() {
			tagging.NewPlainTags(64, 64, 0, replacement.NewLRU())
		}).To(Panic())
	})

	It("panics on a nil replacer", func() {
		Expect(func() {
			tagging.NewPlainTags(64, 64, 1, nil)
		}).To(Panic())
	})

	It("panics when total_size doesn't divide evenly into block_size*assoc", func() {
		Expect(func() {
			tagging.NewPlainTags(100, 64, 1, replacement.NewLRU())
		}).To(Panic())
	})
})

var _ = Describe("PlainTags", func() {
	It("misses, installs, then hits the same block", func() {
		tags := tagging.NewPlainTags(64*2, 64, 2, replacement.NewLRU())

		_, hit := tags.AccessBlock(0x000)
		Expect(hit).To(BeFalse())

		victim, evicted := tags.FindVictim(0x000)
		Expect(evicted).To(BeNil())
		tags.InsertBlock(0x000, victim)

		_, hit = tags.AccessBlock(0x000)
		Expect(hit).To(BeTrue())

		Expect(tags.Stats().TagsInUse).To(Equal(uint64(1)))
	})

	It("evicts the least-recently-used way once the set is full", func() {
		tags := tagging.NewPlainTags(64*2, 64, 2, replacement.NewLRU())

		for _, addr := range []uint64{0x000, 0x040} {
			victim, _ := tags.FindVictim(addr)
			tags.InsertBlock(addr, victim)
			tags.AccessBlock(addr)
		}

		// Touch 0x000 again so 0x040 becomes the LRU way.
		tags.AccessBlock(0x000)

		victim, evicted := tags.FindVictim(0x080)
		Expect(evicted).To(HaveLen(1))
		tags.InsertBlock(0x080, victim)

		_, hit := tags.AccessBlock(0x040)
		Expect(hit).To(BeFalse())

		_, hit = tags.AccessBlock(0x000)
		Expect(hit).To(BeTrue())
	})

	It("panics when InsertBlock targets an already-valid block", func() {
		tags := tagging.NewPlainTags(64, 64, 1, replacement.NewLRU())

		victim, _ := tags.FindVictim(0x000)
		tags.InsertBlock(0x000, victim)

		Expect(func() { tags.InsertBlock(0x000, victim) }).To(Panic())
	})
})
