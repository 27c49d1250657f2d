package mpc

import (
	"fmt"

	"github.com/fishbegol/mpccore/gf2"
)

// SCProof and SCVerify name the two share counts this package works
// with: a prover holds all three party shares (SCProof), a verifier
// recomputes from two shares plus the third party's published view
// (SCVerify).
const (
	SCProof  = 3
	SCVerify = 2
)

// ShareVector is a ZKBoo-style additive (XOR) sharing of a BitBlock: the
// wire value equals the XOR of all Shares, and no strict subset reveals
// anything about it. ShareTriple is an alias naming the SCProof-wide case
// used throughout ANDProof.
type ShareVector struct {
	Shares []*gf2.Block
}

// ShareTriple is a ShareVector known to hold exactly SCProof shares.
type ShareTriple = ShareVector

// SC returns the number of shares (3 in proof mode, 2 in verify mode).
func (sv *ShareVector) SC() int { return len(sv.Shares) }

// NCols returns the column width shared by every share in the vector.
func (sv *ShareVector) NCols() int {
	if len(sv.Shares) == 0 {
		return 0
	}
	return sv.Shares[0].NCols()
}

// InitEmptyShareVector allocates sc zero-filled shares of width n. Unlike
// InitShareVector/InitPlainShareVector, this constructor's shares are not
// immediately overwritten by its caller, so the zero-fill Alloc already
// performs is load-bearing here and is not redundant work to skip.
func InitEmptyShareVector(n, sc int) *ShareVector {
	shares := make([]*gf2.Block, sc)
	for i := range shares {
		shares[i] = gf2.Alloc(n)
	}
	return &ShareVector{Shares: shares}
}

// InitRandomVector allocates sc shares of width n and fills each
// independently from f. The zero-fill Alloc performs is immediately
// overwritten by Randomize, so it buys nothing here beyond what Go's
// allocator already guarantees.
func InitRandomVector(n, sc int, f gf2.Filler) *ShareVector {
	sv := InitEmptyShareVector(n, sc)
	for _, s := range sv.Shares {
		gf2.Randomize(s, f)
	}
	return sv
}

// InitPlainShareVector builds the trivial SCProof-wide sharing of v where
// every share equals v itself (used to seed public constants into the
// MPC evaluation, not to hide a secret).
func InitPlainShareVector(v *gf2.Block) (*ShareVector, error) {
	sv := InitEmptyShareVector(v.NCols(), SCProof)
	for _, s := range sv.Shares {
		if err := gf2.Copy(s, v); err != nil {
			return nil, fmt.Errorf("mpc: InitPlainShareVector: %w", err)
		}
	}
	return sv, nil
}

// InitShareVector builds a genuine 3-way XOR sharing of v: two shares are
// drawn uniformly from f, and the third is fixed so all three XOR back to
// v (mirroring mpc_init_share_vector).
func InitShareVector(v *gf2.Block, f gf2.Filler) (*ShareVector, error) {
	sv := InitEmptyShareVector(v.NCols(), SCProof)
	gf2.Randomize(sv.Shares[0], f)
	gf2.Randomize(sv.Shares[1], f)
	if err := gf2.Xor(sv.Shares[2], sv.Shares[0], sv.Shares[1]); err != nil {
		return nil, fmt.Errorf("mpc: InitShareVector: %w", err)
	}
	if err := gf2.Xor(sv.Shares[2], sv.Shares[2], v); err != nil {
		return nil, fmt.Errorf("mpc: InitShareVector: %w", err)
	}
	return sv, nil
}

func (sv *ShareVector) checkCompatible(other *ShareVector) error {
	if sv.SC() != other.SC() || sv.NCols() != other.NCols() {
		return ErrDimensionMismatch
	}
	return nil
}

// Add computes result.Shares[i] = a.Shares[i] XOR b.Shares[i] for every
// share index (mpc_add).
func Add(result, a, b *ShareVector) error {
	if err := result.checkCompatible(a); err != nil {
		return fmt.Errorf("mpc: Add: %w", err)
	}
	if err := result.checkCompatible(b); err != nil {
		return fmt.Errorf("mpc: Add: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.Xor(result.Shares[i], a.Shares[i], b.Shares[i]); err != nil {
			return fmt.Errorf("mpc: Add: %w", err)
		}
	}
	return nil
}

// AddConst XORs the public constant c into exactly one share, selected by
// position rather than party index: position 0 picks share 0, position
// sc picks the last share (sc-1), matching mpc_const_add(result, first,
// second, sc, c)'s own two special-cased values of c (0 and sc) against
// an sc-wide vector. mpc_const_add silently no-ops for every other value
// of c; here that is a contract violation instead, since a caller passing
// an interior position for a public-constant addition is a bug that
// should fail loudly rather than leave the sharing unmodified.
func AddConst(result, first *ShareVector, c *gf2.Block, position int) error {
	if err := result.checkCompatible(first); err != nil {
		return fmt.Errorf("mpc: AddConst: %w", err)
	}
	sc := result.SC()
	switch position {
	case 0:
		return gf2.Xor(result.Shares[0], first.Shares[0], c)
	case sc:
		return gf2.Xor(result.Shares[sc-1], first.Shares[sc-1], c)
	default:
		return fmt.Errorf("mpc: AddConst: position %d must be 0 or %d: %w", position, sc, ErrContractViolation)
	}
}

// ConstMatMul computes result.Shares[i] = v.Shares[i] * matrix for every
// share (mpc_const_mat_mul); matrix must already be transposed per
// gf2.MulV's contract.
func ConstMatMul(result, v *ShareVector, matrix *gf2.Matrix) error {
	if err := result.checkCompatible(v); err != nil {
		return fmt.Errorf("mpc: ConstMatMul: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.MulV(result.Shares[i], v.Shares[i], matrix); err != nil {
			return fmt.Errorf("mpc: ConstMatMul: %w", err)
		}
	}
	return nil
}

// ConstMatMulLeft computes result.Shares[i] = matrix * v.Shares[i] for
// every share (mpc_const_mat_mul_l), matrix given directly (not
// transposed).
func ConstMatMulLeft(result, v *ShareVector, matrix *gf2.Matrix) error {
	if err := result.checkCompatible(v); err != nil {
		return fmt.Errorf("mpc: ConstMatMulLeft: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.MulVLeft(result.Shares[i], matrix, v.Shares[i]); err != nil {
			return fmt.Errorf("mpc: ConstMatMulLeft: %w", err)
		}
	}
	return nil
}

// AddConstMatMulLeft computes result.Shares[i] ^= matrix * v.Shares[i]
// for every share (mpc_const_addmat_mul_l).
func AddConstMatMulLeft(result, v *ShareVector, matrix *gf2.Matrix) error {
	if err := result.checkCompatible(v); err != nil {
		return fmt.Errorf("mpc: AddConstMatMulLeft: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.AddMulVLeft(result.Shares[i], matrix, v.Shares[i]); err != nil {
			return fmt.Errorf("mpc: AddConstMatMulLeft: %w", err)
		}
	}
	return nil
}

// ShrVector, ShlVector shift every share of v right/left by count bits
// into result (mpc_shift_right/mpc_shift_left).
func ShrVector(result, v *ShareVector, count int) error {
	if err := result.checkCompatible(v); err != nil {
		return fmt.Errorf("mpc: ShrVector: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.Shr(result.Shares[i], v.Shares[i], count); err != nil {
			return fmt.Errorf("mpc: ShrVector: %w", err)
		}
	}
	return nil
}

func ShlVector(result, v *ShareVector, count int) error {
	if err := result.checkCompatible(v); err != nil {
		return fmt.Errorf("mpc: ShlVector: %w", err)
	}
	for i := range result.Shares {
		if err := gf2.Shl(result.Shares[i], v.Shares[i], count); err != nil {
			return fmt.Errorf("mpc: ShlVector: %w", err)
		}
	}
	return nil
}

// CopyShareVector copies src's shares into dst (mpc_copy).
func CopyShareVector(dst, src *ShareVector) error {
	if err := dst.checkCompatible(src); err != nil {
		return fmt.Errorf("mpc: CopyShareVector: %w", err)
	}
	for i := range dst.Shares {
		if err := gf2.Copy(dst.Shares[i], src.Shares[i]); err != nil {
			return fmt.Errorf("mpc: CopyShareVector: %w", err)
		}
	}
	return nil
}

// Reconstruct XORs every share together to recover the shared value
// (mpc_reconstruct_from_share), working for any share count, not just
// SCProof.
func Reconstruct(sv *ShareVector) (*gf2.Block, error) {
	if sv.SC() == 0 {
		return nil, fmt.Errorf("mpc: Reconstruct: %w", ErrDimensionMismatch)
	}
	dst := gf2.Alloc(sv.NCols())
	if err := gf2.Copy(dst, sv.Shares[0]); err != nil {
		return nil, fmt.Errorf("mpc: Reconstruct: %w", err)
	}
	for i := 1; i < sv.SC(); i++ {
		if err := gf2.Xor(dst, dst, sv.Shares[i]); err != nil {
			return nil, fmt.Errorf("mpc: Reconstruct: %w", err)
		}
	}
	return dst, nil
}
