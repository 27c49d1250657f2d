package mpc

import (
	"fmt"

	"github.com/fishbegol/mpccore/gf2"
)

// View is one party's transcript of everything it sent to the next party
// during an MPC evaluation: the output of every AND gate, shifted into
// place and accumulated into a single per-party row of width n (the
// width shared by the gate's ShareVector operands). ANDProof/ANDVerify
// XOR into its rows; ANDVerify also reads its last row back, shifted left
// by viewshift and masked, to recover the unopened party's gate output.
// Whole views can be compared row by row with Equal.
type View struct {
	S []*gf2.Block
}

// NewView allocates a View with sc zero-filled rows of width n, one per
// party whose outgoing messages it records.
func NewView(n, sc int) *View {
	rows := make([]*gf2.Block, sc)
	for i := range rows {
		rows[i] = gf2.Alloc(n)
	}
	return &View{S: rows}
}

func (v *View) checkCompatible(sc, n int) error {
	if len(v.S) != sc {
		return ErrDimensionMismatch
	}
	for _, s := range v.S {
		if s.NCols() != n {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Equal reports whether two views are bit-identical row by row.
func Equal(a, b *View) (bool, error) {
	if len(a.S) != len(b.S) {
		return false, fmt.Errorf("mpc: View.Equal: %w", ErrDimensionMismatch)
	}
	for i := range a.S {
		eq, err := gf2.Equal(a.S[i], b.S[i])
		if err != nil {
			return false, fmt.Errorf("mpc: View.Equal: %w", err)
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}
