// Package trace loads the benchmark-pointer file and access-order trace
// file the OPT replacer needs to resolve future references.
package trace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// BenchmarkConfigEnvVar, when set, names the trace path that
// LoadBenchmarkPointerWithEnv returns instead of reading the benchmark
// pointer file. This is additive: callers that only use
// LoadBenchmarkPointer never see it.
const BenchmarkConfigEnvVar = "SHEPHERD_BENCHMARK_CONFIG"

var envLoadOnce = struct{ done bool }{}

// LoadBenchmarkPointer reads a single-line configuration file naming the
// trace path. A trailing newline is optional. A missing or empty file is a
// fatal configuration error.
func LoadBenchmarkPointer(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("trace: opening benchmark config %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", fmt.Errorf("trace: benchmark config %q is empty", path)
	}

	tracePath := strings.TrimSpace(scanner.Text())
	if tracePath == "" {
		return "", fmt.Errorf("trace: benchmark config %q names an empty path", path)
	}

	return tracePath, nil
}

// LoadBenchmarkPointerWithEnv behaves like LoadBenchmarkPointer, but first
// loads a .env file (if present) via godotenv and, if BenchmarkConfigEnvVar
// is set in the resulting environment, uses its value as the trace path
// directly instead of reading defaultConfigPath.
func LoadBenchmarkPointerWithEnv(defaultConfigPath string) (string, error) {
	if !envLoadOnce.done {
		_ = godotenv.Load()
		envLoadOnce.done = true
	}

	if override, ok := os.LookupEnv(BenchmarkConfigEnvVar); ok && override != "" {
		return override, nil
	}

	return LoadBenchmarkPointer(defaultConfigPath)
}

// LoadTrace reads one lowercase 0x-prefixed hex address per line and
// returns a map from address to the ordered list of 0-based line indices at
// which it occurs. An empty trace file is a fatal configuration error.
func LoadTrace(path string) (map[string][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: opening trace file %q: %w", path, err)
	}
	defer f.Close()

	result := make(map[string][]int)

	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result[line] = append(result[line], i)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading trace file %q: %w", path, err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("trace: trace file %q is empty", path)
	}

	return result, nil
}

// LoadSequence reads the same one-address-per-line trace file as LoadTrace,
// but returns the addresses in file order rather than inverted into an
// index map. This is what a run harness replays; LoadTrace is what the OPT
// replacer consults to resolve future references.
func LoadSequence(path string) ([]uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: opening trace file %q: %w", path, err)
	}
	defer f.Close()

	var seq []uint64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		addr, err := strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("trace: parsing address %q: %w", line, err)
		}

		seq = append(seq, addr)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trace: reading trace file %q: %w", path, err)
	}

	if len(seq) == 0 {
		return nil, fmt.Errorf("trace: trace file %q is empty", path)
	}

	return seq, nil
}

// FormatAddr renders a block address the way the trace file spells it:
// lowercase, 0x-prefixed hex.
func FormatAddr(addr uint64) string {
	return fmt.Sprintf("0x%x", addr)
}
