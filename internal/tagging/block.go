// Package tagging implements the Shepherd tag store: per-block metadata,
// the Main-Cache/Shepherd-Cache set partition, counter maintenance, and the
// victim-selection protocol described in the design.
package tagging

import (
	"fmt"

	"github.com/b63/shepherd-sim/internal/replacement"
)

// Block is the base per-line metadata shared by every tag store: validity,
// dirtiness, tag, its fixed (set, way) slot, a reference count, and the
// replacement state a Replacer owns.
type Block struct {
	Valid    bool
	Dirty    bool
	Writable bool
	Tag      uint64
	SetID    int
	WayID    int
	RefCount int

	Repl *replacement.Data
}

// Set returns the block's immutable set index.
func (b *Block) Set() int { return b.SetID }

// Way returns the block's immutable way index.
func (b *Block) Way() int { return b.WayID }

// BlockState is the capability a cache component needs from any block to
// drive the miss path: whether it is occupied, whether it needs a writeback
// before its slot can be reused, and whether it may currently be written
// without first asking a point of coherence above.
type BlockState interface {
	IsValid() bool
	IsDirty() bool
	SetDirty(bool)
	IsWritable() bool
	SetWritable(bool)
}

// ReplData exposes the block's owned replacement state to a Replacer.
func (b *Block) ReplData() *replacement.Data { return b.Repl }

// IsValid reports the block's validity, satisfying BlockState. A nil
// receiver (the zero value AccessBlock/FindVictim return alongside a miss)
// reports false rather than panicking, so callers can check validity
// without a separate nil guard.
func (b *Block) IsValid() bool { return b != nil && b.Valid }

// IsDirty reports the block's dirtiness, satisfying BlockState. Nil-safe
// for the same reason as IsValid.
func (b *Block) IsDirty() bool { return b != nil && b.Dirty }

// SetDirty sets or clears the block's dirty bit, satisfying BlockState. A
// write access marks its block dirty; the tag store clears it again when
// the block is invalidated.
func (b *Block) SetDirty(d bool) { b.Dirty = d }

// IsWritable reports whether the block may be written without first
// asking a point of coherence above, satisfying BlockState. Nil-safe for
// the same reason as IsValid.
func (b *Block) IsWritable() bool { return b != nil && b.Writable }

// SetWritable sets or clears the block's writable bit, satisfying
// BlockState.
func (b *Block) SetWritable(w bool) { b.Writable = w }

// Invalidate clears validity, dirtiness and the writable bit. It is
// idempotent: invalidating an already-invalid block is a no-op beyond
// re-asserting the zero values.
func (b *Block) Invalidate() {
	b.Valid = false
	b.Dirty = false
	b.Writable = false
	b.RefCount = 0
}

// IncreaseRefCount bumps the block's reference count on a hit.
func (b *Block) IncreaseRefCount() {
	b.RefCount++
}

// ShepherdBlock extends Block with the Shepherd-specific SC/MC role flag
// and its vector of imminence counters, one per SC way in the set.
type ShepherdBlock struct {
	Block

	IsSC     bool
	Counters []uint
}

// NewShepherdBlock allocates a block at (set, way) with a zeroed counter
// vector sized to scAssoc, and its owned replacement state.
func NewShepherdBlock(set, way, scAssoc int, repl *replacement.Data) *ShepherdBlock {
	return &ShepherdBlock{
		Block: Block{
			SetID: set,
			WayID: way,
			Repl:  repl,
		},
		Counters: make([]uint, scAssoc),
	}
}

// IsValid is Block.IsValid made nil-safe for a nil *ShepherdBlock: a method
// promoted through the embedded Block would dereference the nil receiver.
func (b *ShepherdBlock) IsValid() bool { return b != nil && b.Valid }

// IsDirty is Block.IsDirty made nil-safe for a nil *ShepherdBlock.
func (b *ShepherdBlock) IsDirty() bool { return b != nil && b.Dirty }

// IsWritable is Block.IsWritable made nil-safe for a nil *ShepherdBlock.
func (b *ShepherdBlock) IsWritable() bool { return b != nil && b.Writable }

// Invalidate clears base validity and zeroes every counter, but preserves
// the block's static SC/MC role.
func (b *ShepherdBlock) Invalidate() {
	b.Block.Invalidate()
	for i := range b.Counters {
		b.Counters[i] = 0
	}
}

// Print returns a debug string including the SC flag and counter values,
// matching the level of detail gem5's ShepherdBlk::print() reports.
func (b *ShepherdBlock) Print() string {
	return fmt.Sprintf(
		"set=%d way=%d valid=%t dirty=%t writable=%t tag=%#x isSC=%t counters=%v",
		b.SetID, b.WayID, b.Valid, b.Dirty, b.Writable, b.Tag, b.IsSC, b.Counters,
	)
}

// migrateFrom transfers tag, validity, dirty, writable, reference count,
// replacement data, counters and the SC flag from src into b. Both blocks
// must belong to the same set. The (set, way) -> block mapping never
// changes identity, so this is a field copy, never a pointer swap for b or
// src themselves — but the owned *replacement.Data is swapped between
// them, not copied: b takes over src's real touch/addr history (what a
// Replacer needs to keep treating this line as the same block across the
// move), and src is left holding b's previous (now-stale,
// about-to-be-discarded) entry rather than a nil or shared pointer, so
// src.Repl is still safe for the caller to immediately Reset() into a
// fresh entry for whatever is installed next.
func (b *ShepherdBlock) migrateFrom(src *ShepherdBlock) {
	if src.SetID != b.SetID {
		panic("tagging: migrateFrom across different sets")
	}
	if b.Valid {
		panic("tagging: migrateFrom into an already-valid destination")
	}

	b.Tag = src.Tag
	b.Valid = src.Valid
	b.Dirty = src.Dirty
	b.Writable = src.Writable
	b.RefCount = src.RefCount
	b.IsSC = src.IsSC

	copy(b.Counters, src.Counters)

	b.Repl, src.Repl = src.Repl, b.Repl
}
