package gf2

import "github.com/fishbegol/mpccore/internal/cpufeature"

// tier identifies which lane width a primitive's kernel should step by.
// Go has no portable SIMD intrinsics and this module never invokes the
// toolchain to verify assembly, so the three tiers are pure-Go functions
// differentiated by unroll width (1/2/4 limbs per step) rather than actual
// vector instructions. They exist to preserve the original's dispatch
// *shape* — precondition table, tier selection, per-tier kernel — so the
// control flow a reader already knows from the SIMD version still applies.
type tier int

const (
	tierScalar tier = iota
	tier128
	tier256
)

// selectTier implements spec.md §4.2's dispatch table: a primitive may use
// the 128-bit tier only if the row has at least 2 limbs and SSE2 is
// present, and the 256-bit tier only if the row has at least 4 limbs and
// AVX2 is present. requireSSE41 additionally gates the 128-bit tier on
// SSE4.1; every current caller passes false. Only kernelXor and kernelAnd
// change their loop by the tier returned here.
func selectTier(nLimbs int, requireSSE41 bool) tier {
	f := cpufeature.Current()
	if nLimbs >= avxBoundLimbs && f.AVX2 {
		return tier256
	}
	sse2ok := f.SSE2 && (!requireSSE41 || f.SSE41)
	if nLimbs >= 2 && sse2ok {
		return tier128
	}
	return tierScalar
}

// kernelXor computes dst = a XOR b over nLimbs limbs, choosing an unroll
// width by tier. All three tiers are semantically identical on clean
// operands; the tiering only changes loop shape, which is exactly what
// P6 (kernel agreement) exercises. Only the scalar tier re-masks the
// final limb by highMask afterward, matching mzd_xor's own trailing
// mask step — the SIMD tiers are contracted to leave that to the caller.
func kernelXor(dst, a, b []uint64, nLimbs int, highMask uint64) {
	switch selectTier(nLimbs, false) {
	case tier256:
		xorUnroll(dst, a, b, nLimbs, 4)
	case tier128:
		xorUnroll(dst, a, b, nLimbs, 2)
	default:
		xorUnroll(dst, a, b, nLimbs, 1)
		if nLimbs > 0 {
			dst[nLimbs-1] &= highMask
		}
	}
}

func xorUnroll(dst, a, b []uint64, nLimbs, lane int) {
	i := 0
	for ; i+lane <= nLimbs; i += lane {
		for j := 0; j < lane; j++ {
			dst[i+j] = a[i+j] ^ b[i+j]
		}
	}
	for ; i < nLimbs; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// kernelAnd computes dst = a AND b over nLimbs limbs. Only the scalar
// tier re-masks the final limb, for the same reason as kernelXor.
func kernelAnd(dst, a, b []uint64, nLimbs int, highMask uint64) {
	switch selectTier(nLimbs, false) {
	case tier256:
		andUnroll(dst, a, b, nLimbs, 4)
	case tier128:
		andUnroll(dst, a, b, nLimbs, 2)
	default:
		andUnroll(dst, a, b, nLimbs, 1)
		if nLimbs > 0 {
			dst[nLimbs-1] &= highMask
		}
	}
}

func andUnroll(dst, a, b []uint64, nLimbs, lane int) {
	i := 0
	for ; i+lane <= nLimbs; i += lane {
		for j := 0; j < lane; j++ {
			dst[i+j] = a[i+j] & b[i+j]
		}
	}
	for ; i < nLimbs; i++ {
		dst[i] = a[i] & b[i]
	}
}

// kernelEqual reports whether a and b agree on every limb up to nLimbs-1
// and agree on the masked high bits of limb nLimbs-1 (spec.md §4.5).
func kernelEqual(a, b []uint64, nLimbs int, highMask uint64) bool {
	_ = selectTier(nLimbs, false) // tier selection has no observable effect on a pure comparison
	if nLimbs == 0 {
		return true
	}
	for i := 0; i < nLimbs-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return (a[nLimbs-1] & highMask) == (b[nLimbs-1] & highMask)
}

// kernelMulV computes dst = v * A: dst starts at zero and for every set
// bit i of v (0-indexed from the low end), dst ^= A.Row(i). This is the
// row-selection-XOR shape of mzd_mul_v/mzd_addmul_v: the caller is
// responsible for passing A pre-transposed so row i holds the
// contribution of v's bit i to every output column, per spec.md §4.4.
func kernelMulV(dst []uint64, v *Block, a *Matrix) {
	for i := range dst {
		dst[i] = 0
	}
	kernelAddMulV(dst, v, a)
}

// kernelAddMulV computes dst ^= v * A by walking v 4 bits at a time: each
// 4-bit group of a selector word picks a subset of the next 4 rows of A
// (see addMulNibble), and the row cursor advances by 4 rows per group.
// Within a group the 4 bits are tested one at a time; there is no 16-case
// branch table. The walk stops once the row cursor reaches A.NRows().
// There is a single implementation; no kernel tier is selected here.
func kernelAddMulV(dst []uint64, v *Block, a *Matrix) {
	nLimbs := len(dst)
	vLimbs := v.Limbs()
	row := 0
	for w := 0; w < len(vLimbs) && row < a.nRows; w++ {
		word := vLimbs[w]
		for bit := 0; bit < WordBits && row < a.nRows; bit += 4 {
			nibble := (word >> uint(bit)) & 0xF
			addMulNibble(dst, a, row, nibble, nLimbs)
			row += 4
		}
	}
}

// addMulNibble XORs into dst the subset of {A.Row(row), A.Row(row+1),
// A.Row(row+2), A.Row(row+3)} selected by the 4 bits of nibble, skipping
// rows beyond a.NRows(). Each of the 4 bits is tested separately.
func addMulNibble(dst []uint64, a *Matrix, row int, nibble uint64, nLimbs int) {
	for k := 0; k < 4; k++ {
		if row+k >= a.nRows {
			return
		}
		if nibble&(1<<uint(k)) != 0 {
			r := a.rows[row+k]
			for i := 0; i < nLimbs; i++ {
				dst[i] ^= r[i]
			}
		}
	}
}
