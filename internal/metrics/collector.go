package metrics

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"

	"proxyfmt/internal/codec"
)

// Collector tallies the outcome of a scan run.
type Collector struct {
	mu sync.Mutex

	// Decoded links per scheme
	decodedByScheme map[string]int
	totalDecoded    int

	duplicates int

	// Failures keyed by error kind
	errorCounts map[string]int
	totalErrors int
}

func New() *Collector {
	return &Collector{
		decodedByScheme: make(map[string]int),
		errorCounts:     make(map[string]int),
	}
}

func (c *Collector) RecordSuccess(scheme string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.decodedByScheme[scheme]++
	c.totalDecoded++
}

func (c *Collector) RecordDuplicate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.duplicates++
}

func (c *Collector) RecordFailure(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalErrors++
	c.errorCounts[codec.KindOf(err).String()]++
}

// Failures returns a copy of the failure counts keyed by error kind.
func (c *Collector) Failures() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int, len(c.errorCounts))
	for k, v := range c.errorCounts {
		out[k] = v
	}
	return out
}

func (c *Collector) Decoded() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalDecoded
}

func (c *Collector) TotalFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalErrors
}

func (c *Collector) PrintReport(out io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCAN REPORT")
	fmt.Fprintln(w, "────────────────────────────────────────")

	fmt.Fprintf(w, "  Decoded:\t%d\n", c.totalDecoded)
	for _, k := range sortedKeys(c.decodedByScheme) {
		fmt.Fprintf(w, "    %s:\t%d\n", k, c.decodedByScheme[k])
	}
	fmt.Fprintf(w, "  Duplicates dropped:\t%d\n", c.duplicates)

	fmt.Fprintf(w, "  Failures:\t%d\n", c.totalErrors)
	for _, k := range sortedKeys(c.errorCounts) {
		pct := float64(c.errorCounts[k]) / float64(c.totalErrors) * 100
		fmt.Fprintf(w, "    %s:\t%d (%.1f%%)\n", k, c.errorCounts[k], pct)
	}

	w.Flush()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
