package gf2

import "fmt"

// Xor computes dst = a XOR b. All three blocks must share column width.
// The scalar kernel tier re-masks the final limb to preserve invariant B1
// against a dirty operand (mirroring mzd_xor's trailing
// `*(resptr - 1) &= mask;`); the SIMD tiers are contracted to skip it.
func Xor(dst, a, b *Block) error {
	if !dst.m.sameShape(a.m.rowLayout) || !dst.m.sameShape(b.m.rowLayout) {
		return fmt.Errorf("gf2: Xor: %w", ErrDimensionMismatch)
	}
	kernelXor(dst.Limbs(), a.Limbs(), b.Limbs(), dst.NLimbs(), dst.HighMask())
	return nil
}

// And computes dst = a AND b. All three blocks must share column width.
// Re-masked on the scalar tier for the same reason as Xor (mzd_and's own
// trailing mask step).
func And(dst, a, b *Block) error {
	if !dst.m.sameShape(a.m.rowLayout) || !dst.m.sameShape(b.m.rowLayout) {
		return fmt.Errorf("gf2: And: %w", ErrDimensionMismatch)
	}
	kernelAnd(dst.Limbs(), a.Limbs(), b.Limbs(), dst.NLimbs(), dst.HighMask())
	return nil
}

// Equal reports whether a and b are bit-identical over their shared
// column width. It returns an error (rather than false) if the widths
// differ, since that is a caller bug rather than a legitimate inequality.
func Equal(a, b *Block) (bool, error) {
	if !a.m.sameShape(b.m.rowLayout) {
		return false, fmt.Errorf("gf2: Equal: %w", ErrDimensionMismatch)
	}
	return kernelEqual(a.Limbs(), b.Limbs(), a.NLimbs(), a.HighMask()), nil
}

// Shr shifts src right by count bits (count in [0, WordBits)) into dst,
// threading carry bits across limb boundaries low-to-high, mirroring
// mzd_shift_right. Shr always leaves the trailing bits above NCols zero
// without any extra masking step: shifting right only ever clears high
// bits, it can never set one, so invariant B1 is preserved automatically.
func Shr(dst, src *Block, count int) error {
	if !dst.m.sameShape(src.m.rowLayout) {
		return fmt.Errorf("gf2: Shr: %w", ErrDimensionMismatch)
	}
	if count < 0 || count >= WordBits {
		return fmt.Errorf("gf2: Shr: count out of range: %w", ErrContractViolation)
	}
	d := dst.Limbs()
	s := src.Limbs()
	n := dst.NLimbs()
	if n == 0 {
		return nil
	}
	if count == 0 {
		copy(d, s)
		return nil
	}
	carryShift := uint(WordBits - count)
	for i := 0; i < n-1; i++ {
		d[i] = (s[i] >> uint(count)) | (s[i+1] << carryShift)
	}
	d[n-1] = s[n-1] >> uint(count)
	return nil
}

// Shl shifts src left by count bits into dst, mirroring mzd_shift_left.
// Unlike Shr, a left shift can push set bits above the valid column
// width into limb nLimbs-1's padding, so it does NOT auto-mask; the
// caller must AND the result against dst.HighMask() on the final limb
// when invariant B1 needs to be restored (the verify-mode AND gate in
// the mpc package does this explicitly as its own step).
func Shl(dst, src *Block, count int) error {
	if !dst.m.sameShape(src.m.rowLayout) {
		return fmt.Errorf("gf2: Shl: %w", ErrDimensionMismatch)
	}
	if count < 0 || count >= WordBits {
		return fmt.Errorf("gf2: Shl: count out of range: %w", ErrContractViolation)
	}
	d := dst.Limbs()
	s := src.Limbs()
	n := dst.NLimbs()
	if n == 0 {
		return nil
	}
	if count == 0 {
		copy(d, s)
		return nil
	}
	carryShift := uint(WordBits - count)
	for i := n - 1; i > 0; i-- {
		d[i] = (s[i] << uint(count)) | (s[i-1] >> carryShift)
	}
	d[0] = s[0] << uint(count)
	return nil
}

// MaskHigh clears the padding bits above NCols in the final limb,
// restoring invariant B1 after a caller-driven Shl.
func (b *Block) MaskHigh() {
	if b.NLimbs() == 0 {
		return
	}
	limbs := b.Limbs()
	limbs[len(limbs)-1] &= b.HighMask()
}

// transposeRows builds the transpose of a so row i of the result holds
// column i of a, as []uint64 bit-packed rows of length a.NRows columns.
// MulV/AddMulV need their matrix argument pre-transposed (spec.md §4.4);
// this helper exists so callers working from a row-major matrix don't
// have to hand-roll it.
func transposeRows(a *Matrix) *Matrix {
	t := AllocMatrix(a.nCols, a.nRows)
	for r := 0; r < a.nRows; r++ {
		row := a.Row(r)
		for c := 0; c < a.nCols; c++ {
			word := row[c/WordBits]
			bit := (word >> uint(c%WordBits)) & 1
			if bit != 0 {
				trow := t.rows[c]
				trow[r/WordBits] |= 1 << uint(r%WordBits)
			}
		}
	}
	return t
}

// Transpose is the exported form of transposeRows.
func Transpose(a *Matrix) *Matrix { return transposeRows(a) }

// MulV computes dst = v * a, where a is pre-transposed (row i of a holds
// the contribution of v's bit i): dst = XOR over all i where v's bit
// i is set of a.Row(i). v's column count must equal a.NRows.
func MulV(dst *Block, v *Block, a *Matrix) error {
	if v.NCols() != a.nRows {
		return fmt.Errorf("gf2: MulV: %w", ErrDimensionMismatch)
	}
	if dst.NCols() != a.nCols {
		return fmt.Errorf("gf2: MulV: %w", ErrDimensionMismatch)
	}
	kernelMulV(dst.Limbs(), v, a)
	dst.MaskHigh()
	return nil
}

// AddMulV computes dst ^= v * a under the same shape rules as MulV.
func AddMulV(dst *Block, v *Block, a *Matrix) error {
	if v.NCols() != a.nRows {
		return fmt.Errorf("gf2: AddMulV: %w", ErrDimensionMismatch)
	}
	if dst.NCols() != a.nCols {
		return fmt.Errorf("gf2: AddMulV: %w", ErrDimensionMismatch)
	}
	kernelAddMulV(dst.Limbs(), v, a)
	dst.MaskHigh()
	return nil
}

// MulVLeft computes dst = A * v (A given directly, not pre-transposed):
// dst's bit i is the parity of (A.Row(i) AND v). This is the
// complementary left-multiply variant supplementing MulV/AddMulV, named
// after mzd_mul_vl/mpc_const_mat_mul_l in the original, whose exact limb
// layout was not available from the retrieved source excerpt; this
// dot-product form is the natural reading of "multiply a vector on the
// left by a matrix" and is the interpretation implemented here.
func MulVLeft(dst *Block, a *Matrix, v *Block) error {
	if v.NCols() != a.nCols {
		return fmt.Errorf("gf2: MulVLeft: %w", ErrDimensionMismatch)
	}
	if dst.NCols() != a.nRows {
		return fmt.Errorf("gf2: MulVLeft: %w", ErrDimensionMismatch)
	}
	for i := range dst.Limbs() {
		dst.Limbs()[i] = 0
	}
	return AddMulVLeft(dst, a, v)
}

// AddMulVLeft computes dst ^= A * v under MulVLeft's shape rules.
func AddMulVLeft(dst *Block, a *Matrix, v *Block) error {
	if v.NCols() != a.nCols {
		return fmt.Errorf("gf2: AddMulVLeft: %w", ErrDimensionMismatch)
	}
	if dst.NCols() != a.nRows {
		return fmt.Errorf("gf2: AddMulVLeft: %w", ErrDimensionMismatch)
	}
	vLimbs := v.Limbs()
	dLimbs := dst.Limbs()
	for r := 0; r < a.nRows; r++ {
		row := a.Row(r)
		var acc uint64
		for i := 0; i < len(row); i++ {
			acc ^= row[i] & vLimbs[i]
		}
		if popcount64(acc)&1 != 0 {
			dLimbs[r/WordBits] ^= 1 << uint(r%WordBits)
		}
	}
	dst.MaskHigh()
	return nil
}

func popcount64(x uint64) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}
