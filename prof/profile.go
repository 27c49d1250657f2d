// Package prof is a process-wide timing ledger used by cmd/mpcbench to
// compare the scalar/128-bit/256-bit gf2 kernel tiers. It never runs inside
// the gf2 or mpc packages themselves — those stay pure compute per spec.
package prof

import (
	"sync"
	"time"
)

// Entry is a single timing measurement, typically one kernel-tier trial.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track records the duration since start under the given label.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears the ledger.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Reset discards any recorded entries without returning them.
func Reset() {
	mu.Lock()
	record = nil
	mu.Unlock()
}
