// Package mpc implements the ZKBoo-style 3-party MPC layer over GF(2)
// share vectors: additive (XOR) secret sharing, the communication-aware
// AND gate in proof and verify mode, and the per-party view transcript
// used to check a prover's claimed transcript against a recomputation.
package mpc

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// PRNGAdapter wraps a seeded lattigo utils.PRNG as a gf2.Filler, letting
// the gf2 package's Randomize/RandomizeMatrix consume party randomness
// without gf2 importing crypto or mpc directly (see gf2.Filler).
type PRNGAdapter struct {
	prng utils.PRNG
}

// NewPRNGAdapter seeds a keyed PRNG exactly as the teacher's hash_bridge.go
// seeds its per-role PRNGs: one utils.NewKeyedPRNG call per 16-byte party
// seed, reused for the lifetime of a single proof/verify run.
func NewPRNGAdapter(seed []byte) (*PRNGAdapter, error) {
	p, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("mpc: seed PRNG: %w", err)
	}
	return &PRNGAdapter{prng: p}, nil
}

// Fill satisfies gf2.Filler by reading len(dst) bytes from the keyed PRNG.
func (a *PRNGAdapter) Fill(dst []byte) {
	if _, err := io.ReadFull(a.prng, dst); err != nil {
		// utils.PRNG is a deterministic keyed stream cipher; a short read
		// here means the adapter was misused (dst too large for a single
		// call is still fine, io.ReadFull loops) or prng is nil. Either
		// way there is no sane fallback, so surface it the way a
		// precondition violation surfaces elsewhere in this package: panic
		// rather than silently returning zero bytes into a share vector.
		panic(fmt.Errorf("mpc: PRNGAdapter.Fill: %w", err))
	}
}

// Init replaces the adapter's stream with a fresh keyed PRNG derived from
// seed, mirroring mpc_init (party randomness is reseeded once per proof
// round rather than carried over between rounds).
func (a *PRNGAdapter) Init(seed [16]byte) error {
	p, err := utils.NewKeyedPRNG(seed[:])
	if err != nil {
		return fmt.Errorf("mpc: init PRNG: %w", err)
	}
	a.prng = p
	return nil
}

// Clear drops the adapter's stream so it can no longer serve Fill calls,
// the Go analogue of zeroing a PRNG's internal state on teardown.
func (a *PRNGAdapter) Clear() {
	a.prng = nil
}

// CryptoRand is a gf2.Filler backed by crypto/rand, used to draw the
// initial party seeds themselves (the PRNGAdapter streams are then
// derived deterministically from those seeds).
type CryptoRand struct{}

// Fill reads len(dst) cryptographically secure random bytes.
func (CryptoRand) Fill(dst []byte) {
	if _, err := io.ReadFull(rand.Reader, dst); err != nil {
		panic(fmt.Errorf("mpc: CryptoRand.Fill: %w", err))
	}
}
