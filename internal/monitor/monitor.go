// Package monitor turns a running harness into an inspectable HTTP server:
// statistics, per-set dumps, resource usage, and CPU profiling, the same
// debug surface akita's monitoring.Monitor exposes for a live simulation.
package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	// Registers the /debug/pprof/* handlers on http.DefaultServeMux.
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"

	"github.com/b63/shepherd-sim/cache"
	"github.com/b63/shepherd-sim/internal/tagging"
)

// Monitor exposes a running cache.Comp and its ShepherdTags over HTTP.
type Monitor struct {
	comp       *cache.Comp[*tagging.ShepherdBlock]
	tags       *tagging.ShepherdTags
	numSets    int
	portNumber int
}

// New builds a Monitor over an already-built cache and its tag store.
func New(comp *cache.Comp[*tagging.ShepherdBlock], tags *tagging.ShepherdTags, numSets int) *Monitor {
	return &Monitor{comp: comp, tags: tags, numSets: numSets}
}

// WithPortNumber sets the port the debug server listens on. A value below
// 1000 is rejected in favor of an OS-assigned port, matching akita's
// monitoring.Monitor guard against binding well-known ports by accident.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"monitor: port %d is reserved, using a random port instead\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// StartServer starts the debug HTTP server in a background goroutine and
// returns the address it bound to.
func (m *Monitor) StartServer() (string, error) {
	r := mux.NewRouter()
	r.HandleFunc("/api/stats", m.stats)
	r.HandleFunc("/api/sets/{id}", m.set)
	r.HandleFunc("/api/resource", m.resource)
	r.HandleFunc("/api/profile", m.profile)
	r.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	actualPort := ":0"
	if m.portNumber >= 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", fmt.Errorf("monitor: listening: %w", err)
	}

	addr := listener.Addr().String()

	go func() {
		if err := http.Serve(listener, r); err != nil {
			fmt.Fprintf(os.Stderr, "monitor: server stopped: %v\n", err)
		}
	}()

	return addr, nil
}

type statsResponse struct {
	Accesses         uint64 `json:"accesses"`
	Hits             uint64 `json:"hits"`
	Misses           uint64 `json:"misses"`
	Writebacks       uint64 `json:"writebacks"`
	TagAccesses      uint64 `json:"tag_accesses"`
	DataAccesses     uint64 `json:"data_accesses"`
	TagsInUse        uint64 `json:"tags_in_use"`
	FallbackReplRefs uint64 `json:"fallback_repl_refs"`
	OptReplRefs      uint64 `json:"opt_repl_refs"`
	EmptyReplRefs    uint64 `json:"empty_repl_refs"`
	VictimReplRefs   uint64 `json:"victim_repl_refs"`
}

func (m *Monitor) stats(w http.ResponseWriter, _ *http.Request) {
	compStats := m.comp.Stats()
	tagStats := m.tags.Stats()

	rsp := statsResponse{
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
	}

	m.writeJSON(w, rsp)
}

func (m *Monitor) set(w http.ResponseWriter, req *http.Request) {
	idStr := mux.Vars(req)["id"]

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 || id >= m.numSets {
		http.Error(w, "monitor: invalid set id", http.StatusBadRequest)
		return
	}

	fmt.Fprint(w, m.tags.Print(id))
}

type resourceResponse struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) resource(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	m.writeJSON(w, resourceResponse{CPUPercent: cpuPercent, MemorySize: memInfo.RSS})
}

func (m *Monitor) profile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	m.writeJSON(w, prof)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
