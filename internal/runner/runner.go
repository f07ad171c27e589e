// Package runner drives a trace file through a built cache.Comp outside of
// any real cycle-level simulator, for offline experimentation, and reports
// the resulting statistics.
package runner

import (
	"fmt"

	"github.com/b63/shepherd-sim/cache"
	"github.com/b63/shepherd-sim/internal/replacement"
	"github.com/b63/shepherd-sim/internal/tagging"
	"github.com/b63/shepherd-sim/trace"
)

// Config configures one harness run.
type Config struct {
	TraceFile       string
	BenchmarkConfig string
	Policy          string // "opt" or "shepherd"
	Sets            int
	SCAssoc         int
	MCAssoc         int
	BlockSize       int
	RequestorID     uint64
}

// Stats is the union of every counter a run can produce. Fields that don't
// apply to the chosen policy are left at zero.
type Stats struct {
	Policy string

	Accesses   uint64
	Hits       uint64
	Misses     uint64
	Writebacks uint64

	TagAccesses      uint64
	DataAccesses     uint64
	TagsInUse        uint64
	FallbackReplRefs uint64
	OptReplRefs      uint64
	EmptyReplRefs    uint64
	VictimReplRefs   uint64

	SpeculativeVictims  uint64
	EmptyVictims        uint64
	LRUVictims          uint64
	OPTVictims          uint64
	NotUsedAgainVictims uint64
}

type noopBelow struct{}

func (noopBelow) Fetch(uint64) {}

// Run resolves the trace named by cfg, builds the requested policy's cache,
// and replays every address in the trace as a read.
func Run(cfg Config) (Stats, error) {
	tracePath := cfg.TraceFile
	if cfg.BenchmarkConfig != "" {
		p, err := trace.LoadBenchmarkPointerWithEnv(cfg.BenchmarkConfig)
		if err != nil {
			return Stats{}, err
		}

		tracePath = p
	}

	seq, err := trace.LoadSequence(tracePath)
	if err != nil {
		return Stats{}, err
	}

	assoc := cfg.SCAssoc + cfg.MCAssoc
	totalSize := cfg.BlockSize * assoc * cfg.Sets

	switch cfg.Policy {
	case "shepherd":
		return runShepherd(cfg, totalSize, assoc, seq)
	case "opt":
		return runOPT(cfg, totalSize, assoc, seq)
	default:
		return Stats{}, fmt.Errorf("runner: unknown policy %q, want opt or shepherd", cfg.Policy)
	}
}

func runShepherd(cfg Config, totalSize, assoc int, seq []uint64) (Stats, error) {
	tags := tagging.NewShepherdTags(tagging.Params{
		TotalSize: totalSize,
		BlockSize: cfg.BlockSize,
		Assoc:     assoc,
		SCAssoc:   cfg.SCAssoc,
		Fallback:  replacement.NewLRU(),
	})

	comp := cache.NewComp[*tagging.ShepherdBlock](tags, uint64(cfg.BlockSize), noopBelow{})

	replay(comp, seq, cfg.RequestorID)

	compStats := comp.Stats()
	tagStats := tags.Stats()

	return Stats{
		Policy:           "shepherd",
		Accesses:         compStats.Accesses,
		Hits:             compStats.Hits,
		Misses:           compStats.Misses,
		Writebacks:       compStats.Writebacks,
		TagAccesses:      tagStats.TagAccesses,
		DataAccesses:     tagStats.DataAccesses,
		TagsInUse:        tagStats.TagsInUse,
		FallbackReplRefs: tagStats.FallbackReplRefs,
		OptReplRefs:      tagStats.OptReplRefs,
		EmptyReplRefs:    tagStats.EmptyReplRefs,
		VictimReplRefs:   tagStats.VictimReplRefs,
	}, nil
}

func runOPT(cfg Config, totalSize, assoc int, seq []uint64) (Stats, error) {
	traceMap := make(map[string][]int)
	for i, addr := range seq {
		key := trace.FormatAddr(addr)
		traceMap[key] = append(traceMap[key], i)
	}

	opt := replacement.NewOPT(traceMap)
	tags := tagging.NewPlainTags(totalSize, cfg.BlockSize, assoc, opt)

	comp := cache.NewComp[*tagging.Block](tags, uint64(cfg.BlockSize), noopBelow{})

	replay(comp, seq, cfg.RequestorID)

	compStats := comp.Stats()
	tagStats := tags.Stats()
	optStats := opt.Stats()

	return Stats{
		Policy:              "opt",
		Accesses:            compStats.Accesses,
		Hits:                compStats.Hits,
		Misses:              compStats.Misses,
		Writebacks:          compStats.Writebacks,
		TagAccesses:         tagStats.TagAccesses,
		DataAccesses:        tagStats.DataAccesses,
		TagsInUse:           tagStats.TagsInUse,
		SpeculativeVictims:  optStats.SpeculativeVictims,
		EmptyVictims:        optStats.EmptyVictims,
		LRUVictims:          optStats.LRUVictims,
		OPTVictims:          optStats.OPTVictims,
		NotUsedAgainVictims: optStats.NotUsedAgainVictims,
	}, nil
}

func replay[V tagging.BlockState](comp *cache.Comp[V], seq []uint64, requestorID uint64) {
	for _, addr := range seq {
		pkt := cache.NewReadPacket(addr, requestorID)
		comp.RecvTimingReq(pkt)
	}
}
