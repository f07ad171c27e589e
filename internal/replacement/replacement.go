// Package replacement provides the polymorphic victim-selection capability
// set (touch, reset, invalidate, getVictim, instantiateEntry) consumed by a
// tag store, along with the OPT oracle and a baseline LRU implementation.
package replacement

// Data is the per-block replacement state owned by the block and mutated
// only through a Replacer. LastTouchTick is the simulator tick recorded by
// the most recent touch/reset; Addr is the block's current address as of
// the last reset-with-address (OPT-specific, zero means "never installed").
type Data struct {
	LastTouchTick uint64
	Addr          uint64
}

// Candidate is anything a Replacer can consider as a victim: a block plus
// the replacement data it owns.
type Candidate interface {
	ReplData() *Data
}

// Replacer is the capability set a tag store consumes to break ties between
// otherwise-equal candidates. Implementations are OPT (an oracle that
// consults a pre-loaded future-access trace) and LRU (a simple baseline,
// typically used as Shepherd's fallback).
type Replacer interface {
	// Invalidate clears whatever state should not survive an invalidation.
	Invalidate(entry *Data)
	// Touch records a hit against entry.
	Touch(entry *Data)
	// Reset stamps entry for a fresh install. hasAddr is false when the
	// caller has no address to record; implementations that require one
	// (OPT) must panic in that case.
	Reset(entry *Data, addr uint64, hasAddr bool)
	// GetVictim picks one of candidates to evict. Panics if candidates is
	// empty.
	GetVictim(candidates []Candidate) Candidate
	// InstantiateEntry returns a fresh, zeroed Data for a newly created
	// block.
	InstantiateEntry() *Data
}
