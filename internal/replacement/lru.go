package replacement

// LRU is the baseline least-recently-used replacer. It ignores addresses
// entirely and breaks ties purely on last-touch order, making it a
// reasonable fallback for Shepherd's inconclusive-counter case.
type LRU struct {
	clock uint64
}

// NewLRU returns a new LRU replacer.
func NewLRU() *LRU {
	return &LRU{}
}

// Invalidate clears the last-touch timestamp.
func (*LRU) Invalidate(entry *Data) {
	entry.LastTouchTick = 0
}

// Touch stamps entry with the replacer's shared, monotonically increasing
// clock, so that comparing LastTouchTick across candidates orders them by
// recency.
func (l *LRU) Touch(entry *Data) {
	l.clock++
	entry.LastTouchTick = l.clock
}

// Reset stamps entry for a fresh install; the address is recorded only if
// the caller has one, but LRU never consults it.
func (l *LRU) Reset(entry *Data, addr uint64, hasAddr bool) {
	l.clock++
	entry.LastTouchTick = l.clock
	if hasAddr {
		entry.Addr = addr
	}
}

// GetVictim returns the candidate with the smallest LastTouchTick, i.e. the
// one least recently referenced.
func (*LRU) GetVictim(candidates []Candidate) Candidate {
	if len(candidates) == 0 {
		panic("replacement: GetVictim called with no candidates")
	}

	victim := candidates[0]
	for _, c := range candidates[1:] {
		if c.ReplData().LastTouchTick < victim.ReplData().LastTouchTick {
			victim = c
		}
	}

	return victim
}

// InstantiateEntry returns a fresh, zeroed Data.
func (*LRU) InstantiateEntry() *Data {
	return &Data{}
}
