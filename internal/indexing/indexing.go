// Package indexing maps memory addresses to cache sets, tags, and the
// list of candidate entries that could hold a given address.
package indexing

// Entry is anything that lives at a fixed (set, way) slot in a cache.
type Entry interface {
	Set() int
	Way() int
}

// Policy maps addresses to sets/tags and sets to their candidate entries.
//
// This is the generic set-associative scheme: num sets need not be a power
// of two, division and modulo are used directly rather than bit masks.
type Policy[E Entry] interface {
	ExtractSet(addr uint64) int
	ExtractTag(addr uint64) uint64
	RegenerateAddr(tag uint64, e E) uint64
	PossibleEntries(addr uint64) []E
}

// SetAssociative is the generic (non-power-of-two-set-count) indexing
// policy described in spec §4.1.
type SetAssociative[E Entry] struct {
	entrySize int
	numSets   int
	waySize   uint64

	sets [][]E
}

// NewSetAssociative builds a policy over numSets sets, each entrySize bytes
// wide per way.
func NewSetAssociative[E Entry](numSets, entrySize int) *SetAssociative[E] {
	if numSets <= 0 {
		panic("indexing: numSets must be positive")
	}
	if entrySize <= 0 {
		panic("indexing: entrySize must be positive")
	}

	return &SetAssociative[E]{
		entrySize: entrySize,
		numSets:   numSets,
		waySize:   uint64(entrySize) * uint64(numSets),
		sets:      make([][]E, numSets),
	}
}

// SetEntry registers e as belonging to its own Set() within the policy's
// candidate lists. Called once per entry at tag-store init.
func (p *SetAssociative[E]) SetEntry(e E) {
	set := e.Set()
	if set < 0 || set >= p.numSets {
		panic("indexing: entry assigned to an out-of-range set")
	}

	p.sets[set] = append(p.sets[set], e)
}

// ExtractSet computes set = (a / entrySize) mod numSets.
func (p *SetAssociative[E]) ExtractSet(addr uint64) int {
	index := addr / uint64(p.entrySize)

	return int(index % uint64(p.numSets))
}

// ExtractTag computes tag = a / (entrySize * numSets).
func (p *SetAssociative[E]) ExtractTag(addr uint64) uint64 {
	return addr / p.waySize
}

// RegenerateAddr computes (tag * numSets + entry.set) * entrySize.
func (p *SetAssociative[E]) RegenerateAddr(tag uint64, e E) uint64 {
	return (tag*uint64(p.numSets) + uint64(e.Set())) * uint64(p.entrySize)
}

// PossibleEntries returns the candidate list for the set addr maps to.
func (p *SetAssociative[E]) PossibleEntries(addr uint64) []E {
	return p.sets[p.ExtractSet(addr)]
}

// EntriesInSet returns the candidate list for a set index directly, for
// callers that already know the set (e.g. after a head-rotation) and have
// no address handy.
func (p *SetAssociative[E]) EntriesInSet(set int) []E {
	return p.sets[set]
}

// NumSets returns the number of sets in the policy.
func (p *SetAssociative[E]) NumSets() int {
	return p.numSets
}

// EntrySize returns the configured entry (block) size in bytes.
func (p *SetAssociative[E]) EntrySize() int {
	return p.entrySize
}
