package gf2

import "errors"

// Sentinel errors for the three fatal failure kinds of spec.md §4.7/§7.
// Every failure in this package is a precondition violation; there are no
// transient errors and nothing here is recoverable by the caller (the
// caller aborts the enclosing cryptographic operation).
var (
	// ErrDimensionMismatch signals that an argument's NCols/NRows does not
	// satisfy a primitive's precondition.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrAllocationFailure signals the aligned allocator could not satisfy
	// a request. Go's allocator does not report this the way aligned_alloc
	// can, but the sentinel is kept so callers that classify errors by
	// kind keep working if this package is ever backed by manual memory.
	ErrAllocationFailure = errors.New("gf2: allocation failure")

	// ErrContractViolation signals Free/FreeMany/FreeMatrix called on a
	// block that was not produced by this package's allocators (or was
	// already freed), or a Shr/Shl count outside [0, WordBits).
	ErrContractViolation = errors.New("gf2: contract violation")
)
