// Package fingerprint computes short diagnostic digests of gf2/mpc
// values for logging and benchmark tagging. It is deliberately kept
// outside gf2 and mpc: nothing in either package ever calls into it, and
// it must never be reached for by anything that needs a Fiat-Shamir
// transcript hash — that is a distinct, much more carefully specified
// commitment and does not exist in this module.
package fingerprint

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest is a short, human-printable fingerprint of a byte payload.
type Digest string

// Of hashes payload with SHAKE-256 and truncates the output to n bytes,
// hex-encoded, mirroring PIOP's Shake256XOF construction from the rest of
// this dependency pack, minus the grinding/challenge-derivation layer
// that XOF exists for — this is a plain content digest, not a challenge.
func Of(label string, n int, payload ...[]byte) Digest {
	if n <= 0 {
		n = 8
	}
	h := sha3.NewShake256()
	h.Write([]byte(label))
	for _, p := range payload {
		h.Write(p)
	}
	out := make([]byte, n)
	h.Read(out)
	return Digest(hex.EncodeToString(out))
}

// OfLimbs fingerprints a slice of GF(2) limbs, little-endian per limb, as
// cmd/mpcbench uses it to tag a reconstructed AND-gate result in log
// output without printing the full row.
func OfLimbs(label string, limbs []uint64) Digest {
	buf := make([]byte, 0, len(limbs)*8)
	for _, w := range limbs {
		var b [8]byte
		for i := 0; i < 8; i++ {
			b[i] = byte(w >> (8 * i))
		}
		buf = append(buf, b[:]...)
	}
	return Of(label, 8, buf)
}
