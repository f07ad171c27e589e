package replacement_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/b63/shepherd-sim/internal/replacement"
)

func TestReplacement(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Replacement Suite")
}

type fakeCandidate struct {
	data *replacement.Data
}

func (c fakeCandidate) ReplData() *replacement.Data { return c.data }

func candidate(addr, lastTouch uint64) fakeCandidate {
	return fakeCandidate{data: &replacement.Data{Addr: addr, LastTouchTick: lastTouch}}
}

func candidates(cs ...fakeCandidate) []replacement.Candidate {
	out := make([]replacement.Candidate, len(cs))
	for i, c := range cs {
		out[i] = c
	}

	return out
}

var _ = Describe("OPT", func() {
	It("panics when constructed from an empty trace", func() {
		Expect(func() { replacement.NewOPT(map[string][]int{}) }).To(Panic())
	})

	It("panics on Reset without a packet address", func() {
		opt := replacement.NewOPT(map[string][]int{"0xa": {0}})
		Expect(func() {
			opt.Reset(&replacement.Data{}, 0, false)
		}).To(Panic())
	})

	// S1 - OPT farthest-future.
	It("evicts the candidate with the farthest next reference", func() {
		opt := replacement.NewOPT(map[string][]int{
			"0xa": {0, 3},
			"0xb": {1, 5},
			"0xc": {2},
			"0xd": {4},
		})

		for i := 0; i < 2; i++ {
			opt.Touch(&replacement.Data{})
		}

		a := candidate(0xa, 1)
		b := candidate(0xb, 1)
		d := candidate(0xd, 1)

		victim := opt.GetVictim(candidates(a, b, d))

		Expect(victim).To(Equal(b))
		Expect(opt.Stats().OPTVictims).To(Equal(uint64(1)))
	})

	// S2 - OPT never-again, LRU fallback.
	It("falls back to LRU among candidates with no future reference", func() {
		opt := replacement.NewOPT(map[string][]int{
			"0xa": {0, 3},
			"0xb": {1},
			"0xc": {2},
		})

		for i := 0; i < 3; i++ {
			opt.Touch(&replacement.Data{})
		}

		a := candidate(0xa, 10)
		b := candidate(0xb, 5)
		c := candidate(0xc, 20)

		victim := opt.GetVictim(candidates(a, b, c))

		Expect(victim).To(Equal(b))
		Expect(opt.Stats().NotUsedAgainVictims).To(Equal(uint64(1)))
		Expect(opt.Stats().LRUVictims).To(Equal(uint64(1)))
	})

	// S3 - OPT speculative.
	It("treats a candidate missing from the trace as a speculative victim", func() {
		opt := replacement.NewOPT(map[string][]int{
			"0xa": {0},
			"0xb": {1},
		})

		a := candidate(0xa, 0)
		x := candidate(0xdead, 0)

		victim := opt.GetVictim(candidates(a, x))

		Expect(victim).To(Equal(x))
		Expect(opt.Stats().SpeculativeVictims).To(Equal(uint64(1)))
	})

	// Invariant 6 - empty preference.
	It("always evicts a never-installed (address 0x0) candidate first", func() {
		opt := replacement.NewOPT(map[string][]int{"0xa": {0, 5}})

		empty := candidate(0x0, 0)
		a := candidate(0xa, 0)

		victim := opt.GetVictim(candidates(a, empty))

		Expect(victim).To(Equal(empty))
		Expect(opt.Stats().EmptyVictims).To(Equal(uint64(1)))
	})

	It("panics when there are no candidates", func() {
		opt := replacement.NewOPT(map[string][]int{"0xa": {0}})
		Expect(func() { opt.GetVictim(nil) }).To(Panic())
	})

	It("advances the global oracle clock on every touch and reset", func() {
		opt := replacement.NewOPT(map[string][]int{"0xa": {0}})

		d1 := &replacement.Data{}
		opt.Touch(d1)
		Expect(d1.LastTouchTick).To(Equal(uint64(1)))

		d2 := &replacement.Data{}
		opt.Reset(d2, 0x10, true)
		Expect(d2.LastTouchTick).To(Equal(uint64(2)))
		Expect(d2.Addr).To(Equal(uint64(0x10)))
	})
})

var _ = Describe("LRU", func() {
	It("evicts the least recently touched candidate", func() {
		lru := replacement.NewLRU()

		a := &replacement.Data{}
		b := &replacement.Data{}
		c := &replacement.Data{}

		lru.Touch(a)
		lru.Touch(b)
		lru.Touch(c)
		lru.Touch(a) // a is now most recent

		victim := lru.GetVictim(candidates(
			fakeCandidate{data: a},
			fakeCandidate{data: b},
			fakeCandidate{data: c},
		))

		Expect(victim.ReplData()).To(BeIdenticalTo(b))
	})

	It("panics on an empty candidate list", func() {
		lru := replacement.NewLRU()
		Expect(func() { lru.GetVictim(nil) }).To(Panic())
	})
})
