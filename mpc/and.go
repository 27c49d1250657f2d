package mpc

import (
	"fmt"

	"github.com/fishbegol/mpccore/gf2"
)

// ANDProof evaluates one three-party MPC AND gate in proof mode: given
// XOR-shared operands first=x, second=y, and a fresh mask r (all
// SCProof-wide), it computes the SCProof-wide sharing of x∧y and appends
// each party's outgoing message into view at bit offset viewshift.
//
// z[m] = (x[m]∧y[m]) ⊕ (x[j]∧y[m]) ⊕ (x[m]∧y[j]) ⊕ r[m] ⊕ r[j], j=(m+1)%3
//
// Every z[m] is computed before any view row is touched: the view update
// is a separate pass over all three shares, not interleaved into the
// z[m] loop, matching mpc_and's two-phase structure. The original took a
// reusable scratch mzd_t buffer to avoid a malloc per gate call; this
// port allocates its scratch block locally since Go's allocator and GC
// already amortize that cost the way C's manual buffer threading did by
// hand.
func ANDProof(res, first, second, r *ShareTriple, view *View, viewshift int) error {
	if res.SC() != SCProof || first.SC() != SCProof || second.SC() != SCProof || r.SC() != SCProof {
		return fmt.Errorf("mpc: ANDProof: %w", ErrDimensionMismatch)
	}
	n := first.NCols()
	if err := res.checkCompatible(first); err != nil {
		return fmt.Errorf("mpc: ANDProof: %w", err)
	}
	if err := view.checkCompatible(SCProof, n); err != nil {
		return fmt.Errorf("mpc: ANDProof: %w", err)
	}

	scratch := gf2.Alloc(n)
	for m := 0; m < SCProof; m++ {
		j := (m + 1) % SCProof
		if err := gf2.And(res.Shares[m], first.Shares[m], second.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.And(scratch, first.Shares[j], second.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.And(scratch, first.Shares[m], second.Shares[j]); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], r.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], r.Shares[j]); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
	}

	for m := 0; m < SCProof; m++ {
		if err := gf2.Shr(scratch, res.Shares[m], viewshift); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
		if err := gf2.Xor(view.S[m], view.S[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDProof: %w", err)
		}
	}
	return nil
}

// ANDVerify is ANDProof's verifier-side counterpart over SCVerify=2
// shares. It recomputes z[0] from shares 0 and 1 the same way ANDProof
// does and XORs it, right-shifted by viewshift, into view.S[0]. It cannot
// compute the second output share, since it never has the third party's
// x/y shares, so it reads it back out of the published view row instead:
// res.Shares[1] = Shl(view.S[1], viewshift) AND mask. mask selects the
// valid bits of the view row after the left shift undoes viewshift's
// earlier right shift; unlike ANDProof's Shr, this Shl step does not
// auto-mask (see gf2.Shl), so ANDVerify applies mask explicitly, matching
// mpc_and_verify's final mzd_and.
func ANDVerify(res, first, second, r *ShareVector, view *View, mask *gf2.Block, viewshift int) error {
	if res.SC() != SCVerify || first.SC() != SCVerify || second.SC() != SCVerify || r.SC() != SCVerify {
		return fmt.Errorf("mpc: ANDVerify: %w", ErrDimensionMismatch)
	}
	n := first.NCols()
	if err := res.checkCompatible(first); err != nil {
		return fmt.Errorf("mpc: ANDVerify: %w", err)
	}
	// view holds SCVerify rows in verify mode: row 0 is the verifier's own
	// running recomputation (written below), row SCVerify-1 is the third
	// party's published view, read (never written) to recover z[SCVerify-1].
	if err := view.checkCompatible(SCVerify, n); err != nil {
		return fmt.Errorf("mpc: ANDVerify: %w", err)
	}

	scratch := gf2.Alloc(n)
	for m := 0; m < SCVerify-1; m++ {
		j := m + 1
		if err := gf2.And(res.Shares[m], first.Shares[m], second.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.And(scratch, first.Shares[j], second.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.And(scratch, first.Shares[m], second.Shares[j]); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], r.Shares[m]); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.Xor(res.Shares[m], res.Shares[m], r.Shares[j]); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
	}

	for m := 0; m < SCVerify-1; m++ {
		if err := gf2.Shr(scratch, res.Shares[m], viewshift); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
		if err := gf2.Xor(view.S[m], view.S[m], scratch); err != nil {
			return fmt.Errorf("mpc: ANDVerify: %w", err)
		}
	}

	last := SCVerify - 1
	if err := gf2.Shl(res.Shares[last], view.S[last], viewshift); err != nil {
		return fmt.Errorf("mpc: ANDVerify: %w", err)
	}
	if err := gf2.And(res.Shares[last], res.Shares[last], mask); err != nil {
		return fmt.Errorf("mpc: ANDVerify: %w", err)
	}
	return nil
}
