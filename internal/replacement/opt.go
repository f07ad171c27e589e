package replacement

import (
	"github.com/b63/shepherd-sim/trace"
)

// OPTStats holds the victim-selection counters the OPT replacer exposes.
type OPTStats struct {
	SpeculativeVictims  uint64
	EmptyVictims        uint64
	LRUVictims          uint64
	OPTVictims          uint64
	NotUsedAgainVictims uint64
}

// OPT is Belady's optimal replacement policy: a trace-driven oracle that
// evicts whichever candidate's next reference is farthest in the future.
type OPT struct {
	trace         map[string][]int
	accessCounter uint64
	formatAddr    func(uint64) string

	stats OPTStats
}

// NewOPT builds an OPT replacer directly from an already-loaded trace map.
// Fatal (panics) if the trace is empty, matching the gem5 source's
// fail-fast behavior on a missing/empty trace file.
func NewOPT(accessTrace map[string][]int) *OPT {
	if len(accessTrace) == 0 {
		panic("replacement: OPT requires a non-empty trace")
	}

	return &OPT{
		trace:      accessTrace,
		formatAddr: trace.FormatAddr,
	}
}

// NewOPTFromFiles reproduces the two-file read gem5's OPT constructor
// performs: first the benchmark-pointer file naming the trace, then the
// trace itself.
func NewOPTFromFiles(benchmarkConfigPath string) (*OPT, error) {
	tracePath, err := trace.LoadBenchmarkPointer(benchmarkConfigPath)
	if err != nil {
		return nil, err
	}

	loaded, err := trace.LoadTrace(tracePath)
	if err != nil {
		return nil, err
	}

	return NewOPT(loaded), nil
}

// Stats returns a snapshot of the replacer's victim-selection counters.
func (o *OPT) Stats() OPTStats {
	return o.stats
}

// Invalidate clears the last-touch timestamp.
func (o *OPT) Invalidate(entry *Data) {
	entry.LastTouchTick = 0
}

// Touch increments the global oracle clock and stamps entry with it.
func (o *OPT) Touch(entry *Data) {
	o.accessCounter++
	entry.LastTouchTick = o.accessCounter
}

// Reset increments the global oracle clock, stamps entry, and records the
// block's address. OPT requires an address: calling Reset without one is a
// fatal configuration error.
func (o *OPT) Reset(entry *Data, addr uint64, hasAddr bool) {
	if !hasAddr {
		panic("replacement: OPT.Reset called without a packet address")
	}

	o.accessCounter++
	entry.LastTouchTick = o.accessCounter
	entry.Addr = addr
}

// GetVictim implements the protocol described in the design:
//
//  1. A candidate that was never installed (recorded address 0x0) is
//     always chosen immediately.
//  2. Otherwise scan candidates in order; the first one whose address is
//     absent from the trace is a speculative victim, safe to evict because
//     the trace shows it is never referenced again. Scanning stops there.
//  3. Otherwise every candidate's next future reference (the smallest
//     trace index strictly greater than the current access counter) is
//     computed. Candidates with no future reference are LRU candidates;
//     among them the one with the smallest LastTouchTick wins.
//  4. Otherwise the candidate with the largest next future reference
//     (farthest away) wins; ties are broken by candidate list order.
func (o *OPT) GetVictim(candidates []Candidate) Candidate {
	if len(candidates) == 0 {
		panic("replacement: GetVictim called with no candidates")
	}

	for _, c := range candidates {
		if c.ReplData().Addr == 0 {
			o.stats.EmptyVictims++
			return c
		}
	}

	type scored struct {
		c         Candidate
		next      int
		hasFuture bool
	}

	infos := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		key := o.formatAddr(c.ReplData().Addr)

		seq, ok := o.trace[key]
		if !ok {
			o.stats.SpeculativeVictims++
			return c
		}

		next, hasFuture := nextReferenceAfter(seq, o.accessCounter)
		infos = append(infos, scored{c: c, next: next, hasFuture: hasFuture})
	}

	var noFuture []scored
	for _, s := range infos {
		if !s.hasFuture {
			noFuture = append(noFuture, s)
		}
	}

	if len(noFuture) > 0 {
		o.stats.NotUsedAgainVictims++

		victim := noFuture[0]
		if len(noFuture) > 1 {
			o.stats.LRUVictims++
			for _, s := range noFuture[1:] {
				if s.c.ReplData().LastTouchTick < victim.c.ReplData().LastTouchTick {
					victim = s
				}
			}
		}

		return victim.c
	}

	o.stats.OPTVictims++

	best := infos[0]
	for _, s := range infos[1:] {
		if s.next > best.next {
			best = s
		}
	}

	return best.c
}

// InstantiateEntry returns a fresh, zeroed Data.
func (o *OPT) InstantiateEntry() *Data {
	return &Data{}
}

// nextReferenceAfter returns the smallest entry of seq strictly greater
// than after, and whether one was found. seq is assumed sorted ascending,
// which LoadTrace guarantees since it appends line indices in file order.
func nextReferenceAfter(seq []int, after uint64) (next int, found bool) {
	for _, idx := range seq {
		if uint64(idx) > after {
			return idx, true
		}
	}

	return 0, false
}
