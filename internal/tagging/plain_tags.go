package tagging

import (
	"github.com/b63/shepherd-sim/internal/indexing"
	"github.com/b63/shepherd-sim/internal/replacement"
)

// PlainStats holds the counters a fully-associative-per-set tag store
// exposes, the OPT-policy counterpart to ShepherdStats.
type PlainStats struct {
	TagAccesses  uint64
	DataAccesses uint64
	TagsInUse    uint64
}

// PlainTags is a plain set-associative tag store with no SC/MC partition:
// every miss asks its configured Replacer (typically OPT) to pick among the
// whole set. It is the comparison baseline the Shepherd tag store is meant
// to approximate.
type PlainTags struct {
	policy    *indexing.SetAssociative[*Block]
	replacer  replacement.Replacer
	assoc     int
	seqAccess bool

	stats PlainStats
}

// NewPlainTags builds a plain tag store over totalSize bytes, blockSize
// bytes per block, assoc ways per set, backed by replacer.
func NewPlainTags(totalSize, blockSize, assoc int, replacer replacement.Replacer) *PlainTags {
	if assoc <= 0 {
		panic("tagging: assoc must be positive")
	}
	if replacer == nil {
		panic("tagging: a replacement policy is required")
	}

	waySize := blockSize * assoc
	if totalSize <= 0 || waySize <= 0 || totalSize%waySize != 0 {
		panic("tagging: total_size must divide evenly into block_size*assoc")
	}

	numSets := totalSize / waySize

	t := &PlainTags{
		policy:   indexing.NewSetAssociative[*Block](numSets, blockSize),
		replacer: replacer,
		assoc:    assoc,
	}

	for s := 0; s < numSets; s++ {
		for w := 0; w < assoc; w++ {
			blk := &Block{SetID: s, WayID: w, Repl: replacer.InstantiateEntry()}
			t.policy.SetEntry(blk)
		}
	}

	return t
}

// AccessBlock services a hit/miss lookup and, on a hit, touches the
// replacer.
func (t *PlainTags) AccessBlock(addr uint64) (*Block, bool) {
	tag := t.policy.ExtractTag(addr)

	var found *Block
	for _, blk := range t.policy.PossibleEntries(addr) {
		if blk.Valid && blk.Tag == tag {
			found = blk
			break
		}
	}

	t.stats.TagAccesses += uint64(t.assoc)
	if t.seqAccess {
		if found != nil {
			t.stats.DataAccesses++
		}
	} else {
		t.stats.DataAccesses += uint64(t.assoc)
	}

	if found == nil {
		return nil, false
	}

	found.IncreaseRefCount()
	t.replacer.Touch(found.Repl)

	return found, true
}

// FindVictim prefers any invalid block in the set, then delegates to the
// configured replacer over the full set of candidates.
func (t *PlainTags) FindVictim(addr uint64) (victim *Block, evictBlks []*Block) {
	candidates := t.policy.PossibleEntries(addr)
	if len(candidates) == 0 {
		panic("tagging: no candidates for address")
	}

	for _, blk := range candidates {
		if !blk.Valid {
			return blk, nil
		}
	}

	repl := make([]replacement.Candidate, len(candidates))
	for i, blk := range candidates {
		repl[i] = blk
	}

	chosen, ok := t.replacer.GetVictim(repl).(*Block)
	if !ok {
		panic("tagging: replacer returned a foreign candidate type")
	}

	chosen.Invalidate()

	return chosen, []*Block{chosen}
}

// InsertBlock installs addr into blk, which must be the invalid slot
// FindVictim returned.
func (t *PlainTags) InsertBlock(addr uint64, blk *Block) {
	if blk.Valid {
		panic("tagging: InsertBlock called on an already-valid block")
	}

	blk.Tag = t.policy.ExtractTag(addr)
	blk.Valid = true
	t.stats.TagsInUse++

	t.replacer.Reset(blk.Repl, addr, true)
}

// Stats returns a snapshot of the tag store's counters.
func (t *PlainTags) Stats() PlainStats {
	return t.stats
}
