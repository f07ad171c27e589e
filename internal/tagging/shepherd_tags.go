package tagging

import (
	"fmt"
	"math/bits"

	"github.com/b63/shepherd-sim/internal/indexing"
	"github.com/b63/shepherd-sim/internal/replacement"
)

// ShepherdStats holds the victim-protocol counters the tag store exposes.
type ShepherdStats struct {
	TagAccesses  uint64
	DataAccesses uint64
	TagsInUse    uint64

	FallbackReplRefs uint64
	OptReplRefs      uint64
	EmptyReplRefs    uint64
	VictimReplRefs   uint64
}

// Params configures a ShepherdTags instance. Fallback is the replacer used
// both for per-block touch/reset bookkeeping and for the tie-break among
// zero-counter MC candidates in the full-set case (typically LRU, but any
// Replacer works polymorphically).
type Params struct {
	TotalSize        int
	BlockSize        int
	Assoc            int
	SCAssoc          int
	SequentialAccess bool
	Fallback         replacement.Replacer
}

// ShepherdTags implements the Shepherd tag store: the Main-Cache/Shepherd-
// Cache set partition, per-way imminence counters, SC-head rotation, and the
// counter-based victim-selection protocol that approximates OPT.
type ShepherdTags struct {
	policy  *indexing.SetAssociative[*ShepherdBlock]
	assoc   int
	scAssoc int
	mcAssoc int

	heads []int
	nvc   [][]uint

	fallback replacement.Replacer
	seqAcc   bool

	stats ShepherdStats
}

// NewShepherdTags validates params and builds a fully allocated tag store.
// Every validation failure is fatal (a panic), matching gem5's fatal() exits
// on misconfiguration.
func NewShepherdTags(p Params) *ShepherdTags {
	if p.SCAssoc < 1 {
		panic("tagging: sc_assoc must be at least 1")
	}
	if p.SCAssoc+1 > p.Assoc {
		panic("tagging: sc_assoc+1 must not exceed assoc (no room for an MC way)")
	}
	if p.BlockSize < 4 || bits.OnesCount(uint(p.BlockSize)) != 1 {
		panic("tagging: block_size must be a power of two of at least 4")
	}
	if p.Fallback == nil {
		panic("tagging: a fallback replacement policy is required")
	}

	entrySize := p.BlockSize
	waySize := entrySize * p.Assoc
	if p.TotalSize <= 0 || waySize <= 0 || p.TotalSize%waySize != 0 {
		panic("tagging: total_size must divide evenly into entry_size*assoc")
	}

	numSets := p.TotalSize / waySize

	t := &ShepherdTags{
		policy:   indexing.NewSetAssociative[*ShepherdBlock](numSets, entrySize),
		assoc:    p.Assoc,
		scAssoc:  p.SCAssoc,
		mcAssoc:  p.Assoc - p.SCAssoc,
		heads:    make([]int, numSets),
		nvc:      make([][]uint, numSets),
		fallback: p.Fallback,
		seqAcc:   p.SequentialAccess,
	}

	for s := 0; s < numSets; s++ {
		t.nvc[s] = make([]uint, p.SCAssoc)
		for w := range t.nvc[s] {
			t.nvc[s][w] = 1
		}

		for w := 0; w < p.Assoc; w++ {
			blk := NewShepherdBlock(s, w, p.SCAssoc, p.Fallback.InstantiateEntry())
			blk.IsSC = w < p.SCAssoc
			t.policy.SetEntry(blk)
		}
	}

	return t
}

// lookup finds the valid candidate in addr's set whose tag matches, if any.
func (t *ShepherdTags) lookup(addr uint64) (*ShepherdBlock, bool) {
	tag := t.policy.ExtractTag(addr)
	for _, blk := range t.policy.PossibleEntries(addr) {
		if blk.Valid && blk.Tag == tag {
			return blk, true
		}
	}

	return nil, false
}

// AccessBlock services a hit: it bumps the block's reference count, touches
// the fallback replacer, and advances the per-way imminence counters per
// spec §4.4 — every SC counter is stamped with the set's current "next
// value" before that slot's counter is bumped towards assoc.
func (t *ShepherdTags) AccessBlock(addr uint64) (*ShepherdBlock, bool) {
	blk, ok := t.lookup(addr)

	t.stats.TagAccesses += uint64(t.assoc)
	if t.seqAcc {
		if ok {
			t.stats.DataAccesses++
		}
	} else {
		t.stats.DataAccesses += uint64(t.assoc)
	}

	if !ok {
		return nil, false
	}

	blk.IncreaseRefCount()
	t.fallback.Touch(blk.Repl)

	set := blk.SetID
	row := t.nvc[set]
	for w := range blk.Counters {
		blk.Counters[w] = row[w]
		if row[w] < uint(t.assoc) {
			row[w]++
		}
	}

	return blk, true
}

// headBlock returns the current SC head block of a set.
func (t *ShepherdTags) headBlock(set int) *ShepherdBlock {
	head := t.heads[set]
	for _, blk := range t.policy.EntriesInSet(set) {
		if blk.WayID == head {
			return blk
		}
	}

	panic("tagging: set has no block at the head way")
}

// FindVictim implements the five-step miss-path protocol from spec §4.4:
// prefer an invalid MC slot, then an invalid SC slot, and only when the set
// is completely full fall through to the counter-based selection among MC
// blocks (fallback replacer among zero-counter candidates, else the block
// with the largest counter value). The chosen MC block is invalidated in
// place so InsertBlock can find it, and reported separately in evictBlks;
// in that full-set case the function's return value is the set's SC head.
// When an invalid slot exists, that slot is returned and evictBlks is nil.
func (t *ShepherdTags) FindVictim(addr uint64) (victim *ShepherdBlock, evictBlks []*ShepherdBlock) {
	candidates := t.policy.PossibleEntries(addr)
	if len(candidates) == 0 {
		panic("tagging: no candidates for address")
	}

	t.stats.VictimReplRefs++

	for _, blk := range candidates {
		if !blk.IsSC && !blk.Valid {
			t.stats.EmptyReplRefs++
			return blk, nil
		}
	}
	for _, blk := range candidates {
		if blk.IsSC && !blk.Valid {
			t.stats.EmptyReplRefs++
			return blk, nil
		}
	}

	set := t.policy.ExtractSet(addr)
	head := t.heads[set]

	var mcZero []*ShepherdBlock
	var maxMC *ShepherdBlock
	for _, blk := range candidates {
		if blk.IsSC {
			continue
		}

		c := blk.Counters[head]
		if c == 0 {
			mcZero = append(mcZero, blk)
		}
		if maxMC == nil || c > maxMC.Counters[head] {
			maxMC = blk
		}
	}

	var physical *ShepherdBlock
	if len(mcZero) > 0 {
		repl := make([]replacement.Candidate, len(mcZero))
		for i, blk := range mcZero {
			repl[i] = blk
		}

		chosen, ok := t.fallback.GetVictim(repl).(*ShepherdBlock)
		if !ok {
			panic("tagging: fallback replacer returned a foreign candidate type")
		}

		physical = chosen
		t.stats.FallbackReplRefs++
	} else {
		physical = maxMC
		t.stats.OptReplRefs++
	}

	physical.Invalidate()

	return t.headBlock(set), []*ShepherdBlock{physical}
}

// InsertBlock implements the insert-path described in spec §4.4.
//
// If blk is the set's valid SC head, its metadata is first migrated onto
// whichever MC slot FindVictim invalidated, the set's column of counters at
// the old head position is zeroed, and the head pointer rotates to the next
// SC way — that migration clears blk (it becomes the fresh SC slot the new
// block is installed into). Otherwise blk is already the slot to install
// into directly (the invalid-MC / invalid-SC fast paths from FindVictim).
func (t *ShepherdTags) InsertBlock(addr uint64, blk *ShepherdBlock) {
	if blk.IsSC && blk.Valid {
		set := blk.SetID
		oldHead := t.heads[set]

		var mcSlot *ShepherdBlock
		for _, cand := range t.policy.EntriesInSet(set) {
			if !cand.IsSC && !cand.Valid {
				mcSlot = cand
				break
			}
		}
		if mcSlot == nil {
			panic("tagging: InsertBlock rotation found no invalidated MC slot")
		}

		mcSlot.migrateFrom(blk)
		mcSlot.IsSC = false

		for _, cand := range t.policy.EntriesInSet(set) {
			cand.Counters[oldHead] = 0
		}

		t.heads[set] = (oldHead + 1) % t.scAssoc
		blk.Invalidate()
	}

	if blk.Valid {
		panic("tagging: InsertBlock called on an already-valid block")
	}

	blk.Tag = t.policy.ExtractTag(addr)
	blk.Valid = true
	t.stats.TagsInUse++

	t.fallback.Reset(blk.Repl, addr, true)
}

// RegenerateAddr reconstructs the address a block currently holds.
func (t *ShepherdTags) RegenerateAddr(blk *ShepherdBlock) uint64 {
	return t.policy.RegenerateAddr(blk.Tag, blk)
}

// Stats returns a snapshot of the tag store's counters.
func (t *ShepherdTags) Stats() ShepherdStats {
	return t.stats
}

// Print returns a debug dump of every block in a set, in way order.
func (t *ShepherdTags) Print(set int) string {
	out := fmt.Sprintf("set %d (head=%d):\n", set, t.heads[set])
	for _, blk := range t.policy.EntriesInSet(set) {
		out += "  " + blk.Print() + "\n"
	}

	return out
}
