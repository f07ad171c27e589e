package cache

import (
	"fmt"

	"github.com/b63/shepherd-sim/internal/tagging"
)

// Below is the capability a Comp needs from whatever backs a miss: a way to
// fetch the missing block. The harness's backing memory always has data, so
// unlike a real cycle-level simulator there is no separate response event.
type Below interface {
	Fetch(blockAddr uint64)
}

// TagStore is the capability set Comp drives on every access: a lookup, a
// victim choice, and an insertion. It is generic over the concrete block
// type so both the Shepherd tag store and a plain comparison tag store can
// back the same cache wrapper.
type TagStore[V tagging.BlockState] interface {
	AccessBlock(addr uint64) (V, bool)
	FindVictim(addr uint64) (victim V, evictBlks []V)
	InsertBlock(addr uint64, blk V)
}

// CompStats holds the cache-level counters layered on top of the tag
// store's own statistics.
type CompStats struct {
	Accesses   uint64
	Hits       uint64
	Misses     uint64
	Writebacks uint64
}

// Comp is a non-coherent, timing-only cache: the Go analogue of gem5's
// SheperdCache. It overrides the handful of BaseCache entry points that
// must special-case a non-coherent tag store, and panics on every entry
// point that only makes sense for a coherent or atomic-mode cache.
type Comp[V tagging.BlockState] struct {
	blockSize      uint64
	tags           TagStore[V]
	below          Below
	writebackClean bool

	stats CompStats
}

// NewComp builds a Comp over an already-configured tag store. below may be
// nil for a purely tag-level simulation that never needs to model what a
// fetched block's data would be.
func NewComp[V tagging.BlockState](tags TagStore[V], blockSize uint64, below Below) *Comp[V] {
	if tags == nil {
		panic("cache: a tag store is required")
	}
	if blockSize == 0 {
		panic("cache: block_size must be positive")
	}

	return &Comp[V]{blockSize: blockSize, tags: tags, below: below}
}

// WithWritebackClean enables writing back clean (non-dirty) evicted blocks
// in addition to dirty ones, mirroring BaseCache's writebackClean
// parameter. Off by default; returns c for chaining.
func (c *Comp[V]) WithWritebackClean(enabled bool) *Comp[V] {
	c.writebackClean = enabled
	return c
}

// Stats returns a snapshot of the cache-level counters.
func (c *Comp[V]) Stats() CompStats {
	return c.stats
}

// Access is the non-coherent cache's core hit/miss path, mirroring
// SheperdCache::access wrapping BaseCache::access: a coherence-responding
// packet, or one that is neither a read nor a write, should never reach a
// cache below the point of coherence.
func (c *Comp[V]) Access(pkt Packet) (blk V, hit bool) {
	if pkt.CacheResponding() {
		panic("cache: unexpected packet with cache already responding")
	}
	if !(pkt.IsRead() || pkt.IsWrite()) {
		panic(fmt.Sprintf("cache: non-coherent cache should only see reads and writes, got %s", pkt.Command()))
	}

	c.stats.Accesses++

	addr := pkt.BlockAddr(c.blockSize)

	blk, hit = c.tags.AccessBlock(addr)
	if hit {
		c.stats.Hits++
		c.SatisfyRequest(pkt, blk)
	} else {
		c.stats.Misses++
		blk = c.HandleTimingReqMiss(pkt, blk)
	}

	if pkt.IsWriteback() || pkt.Command() == WriteClean {
		// Writeback and WriteClean can allocate and fill even if the
		// referenced block was not present or was invalid; either way the
		// resulting block ends up writable.
		blk.SetWritable(true)
	}

	return blk, hit
}

// RecvTimingReq is the entry point a port above the cache calls, mirroring
// SheperdCache::recvTimingReq's guard clauses before delegating to access.
func (c *Comp[V]) RecvTimingReq(pkt Packet) {
	if pkt.CacheResponding() {
		panic("cache: should not see packets where the cache is responding")
	}
	if !(pkt.IsRead() || pkt.IsWrite()) {
		panic("cache: should only see reads and writes at a non-coherent cache")
	}

	c.Access(pkt)
}

// HandleTimingReqMiss drives the miss path: a victim is chosen, its
// eviction is turned into a writeback if dirty, the backing store is asked
// to fetch the missing block, and the new block is installed. Mirrors
// SheperdCache::handleTimingReqMiss delegating to BaseCache after asserting
// the request truly missed.
func (c *Comp[V]) HandleTimingReqMiss(pkt Packet, blk V) V {
	if blk.IsValid() {
		panic("cache: handleTimingReqMiss called with a valid block")
	}

	addr := pkt.BlockAddr(c.blockSize)

	victim, evictBlks := c.tags.FindVictim(addr)
	c.DoWritebacks(evictBlks)

	if c.below != nil {
		c.below.Fetch(addr)
	}

	c.tags.InsertBlock(addr, victim)
	// A fill always brings in a writable block: this cache sits below the
	// point of coherence, so nothing above can hold a conflicting copy.
	victim.SetWritable(true)
	c.SatisfyRequest(pkt, victim)

	return victim
}

// SatisfyRequest completes pkt against a filled block, mirroring
// SheperdCache::satisfyRequest's read-or-write assertion and
// BaseCache::satisfyRequest marking the block dirty on a write.
func (c *Comp[V]) SatisfyRequest(pkt Packet, blk V) {
	if !(pkt.IsRead() || pkt.IsWrite()) {
		panic("cache: satisfyRequest expects a read or a write")
	}

	if pkt.IsWrite() {
		blk.SetDirty(true)
	}

	if pkt.NeedsResponse() {
		pkt.MakeTimingResponse()
	}
}

// DoWritebacks turns every evicted block that needs one into a writeback:
// unconditionally for dirty blocks, and for clean blocks too when
// writebackClean is set, mirroring SheperdCache::evictBlock's
// isSet(DirtyBit) || writebackClean condition.
func (c *Comp[V]) DoWritebacks(evictBlks []V) {
	for _, blk := range evictBlks {
		if c.EvictBlock(blk) {
			c.stats.Writebacks++
		}
	}
}

// EvictBlock reports whether evicting blk requires a writeback: it is
// dirty, or writebackClean is configured. Unlike gem5's evictBlock,
// invalidation itself is owned by the tag store (the victim protocol
// invalidates the physical slot as part of choosing it), so this is purely
// the writeback-need check.
func (c *Comp[V]) EvictBlock(blk V) bool {
	return blk.IsDirty() || c.writebackClean
}

// FunctionalAccess services a functional (non-timing) probe from the CPU
// side only, mirroring SheperdCache::functionalAccess's panic guard against
// functional snoops.
func (c *Comp[V]) FunctionalAccess(pkt Packet, fromCPUSide bool) {
	if !fromCPUSide {
		panic("cache: non-coherent cache received a functional snoop request")
	}

	c.Access(pkt)
}

// RecvTimingResp accepts a response from below, mirroring
// SheperdCache::recvTimingResp's guards: only reads are ever issued
// downstream, and a non-coherent cache below never returns shared data.
func (c *Comp[V]) RecvTimingResp(pkt Packet) {
	if !pkt.IsRead() {
		panic("cache: non-coherent cache only issues read requests downstream")
	}
}

/*************************************/
/****** OMITTED FUNCTIONALITY  ******/
/*************************************/

// DoWritebacksAtomic panics: this cache is timing-only.
func (c *Comp[V]) DoWritebacksAtomic(count int) {
	panic(fmt.Sprintf("cache: unexpected atomic writeback of %d blocks", count))
}

// RecvTimingSnoopReq panics: this cache is non-coherent.
func (c *Comp[V]) RecvTimingSnoopReq(pkt Packet) {
	panic("cache: unexpected timing snoop request")
}

// RecvTimingSnoopResp panics: this cache is non-coherent.
func (c *Comp[V]) RecvTimingSnoopResp(pkt Packet) {
	panic("cache: unexpected timing snoop response")
}

// HandleAtomicReqMiss panics: this cache is timing-only.
func (c *Comp[V]) HandleAtomicReqMiss(pkt Packet) {
	panic("cache: unexpected atomic request miss")
}

// RecvAtomic panics: this cache is timing-only.
func (c *Comp[V]) RecvAtomic(pkt Packet) {
	panic("cache: unexpected atomic request")
}

// RecvAtomicSnoop panics: this cache is non-coherent and timing-only.
func (c *Comp[V]) RecvAtomicSnoop(pkt Packet) {
	panic("cache: unexpected atomic snoop request")
}
