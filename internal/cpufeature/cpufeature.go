// Package cpufeature probes the host CPU once, on the first call to
// Current, and exposes the result as a Features value of read-only
// booleans. Current takes a mutex on every call to check for a
// ForceFeatures override before returning the probed value.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes the instruction-set support relevant to the gf2
// kernel dispatch table (spec.md §4.2).
type Features struct {
	SSE2  bool
	SSE41 bool
	AVX2  bool
}

var (
	once    sync.Once
	probed  Features
	forced  *Features
	forceMu sync.Mutex
)

func probe() {
	probed = Features{
		SSE2:  cpu.X86.HasSSE2,
		SSE41: cpu.X86.HasSSE41,
		AVX2:  cpu.X86.HasAVX2,
	}
}

// Current returns the active feature set: the forced override installed by
// ForceFeatures if one is active, otherwise the one-shot hardware probe.
func Current() Features {
	forceMu.Lock()
	f := forced
	forceMu.Unlock()
	if f != nil {
		return *f
	}
	once.Do(probe)
	return probed
}

// ForceFeatures overrides Current for the duration of a test, regardless of
// host CPU support, so gf2's scalar/128-bit/256-bit kernel tiers can all be
// exercised deterministically (spec.md §8 P6, kernel agreement). The
// returned restore function must be called to remove the override; it is
// not safe to call ForceFeatures concurrently from multiple goroutines.
func ForceFeatures(f Features) (restore func()) {
	forceMu.Lock()
	prev := forced
	forced = &f
	forceMu.Unlock()

	return func() {
		forceMu.Lock()
		forced = prev
		forceMu.Unlock()
	}
}
