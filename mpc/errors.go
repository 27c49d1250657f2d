package mpc

import "errors"

var (
	// ErrDimensionMismatch mirrors gf2.ErrDimensionMismatch for share-level
	// operations whose arguments disagree on column width or share count.
	ErrDimensionMismatch = errors.New("mpc: dimension mismatch")

	// ErrContractViolation signals a precondition violation specific to
	// the MPC layer: a position passed to AddConst that is neither 0 nor
	// the share count. ANDProof/ANDVerify report mismatched shapes as a
	// dimension mismatch (this package's or gf2's) and an out-of-range
	// viewshift as a wrapped gf2.ErrContractViolation.
	ErrContractViolation = errors.New("mpc: contract violation")
)
