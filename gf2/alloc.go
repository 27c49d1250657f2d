package gf2

import "fmt"

// Matrix is the BitMatrix of spec.md §3: an m×n GF(2) matrix, rows packed
// limb-wise with a shared layout. A single backing slice holds every row;
// Row(i) returns a subslice view into it, mirroring the original's "row
// pointer table co-allocated in the same buffer" without exposing a raw
// pointer across the API (spec.md §9).
type Matrix struct {
	rowLayout
	nRows        int
	storage      []uint64
	rows         [][]uint64
	customLayout bool
}

// Block is the BitBlock of spec.md §3: a 1×n GF(2) row vector. It is
// implemented as a 1-row Matrix so the two types are guaranteed to share
// row layout, per spec.md §3's requirement.
type Block struct {
	m *Matrix
}

// AllocMatrix allocates a zero-initialized r×c BitMatrix (spec.md §4.1).
func AllocMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("gf2: negative matrix dimensions")
	}
	layout := computeLayout(cols)
	storage := make([]uint64, rows*layout.rowStride)
	rowViews := make([][]uint64, rows)
	for i := 0; i < rows; i++ {
		off := i * layout.rowStride
		// Cap capacity at the row's own stride so writes through one
		// row's slice can never spill into the next row's limbs.
		rowViews[i] = storage[off : off+layout.nLimbs : off+layout.rowStride]
	}
	return &Matrix{
		rowLayout:    layout,
		nRows:        rows,
		storage:      storage,
		rows:         rowViews,
		customLayout: true,
	}
}

// Alloc allocates a zero-initialized BitBlock of the given column width.
func Alloc(cols int) *Block {
	return &Block{m: AllocMatrix(1, cols)}
}

// AllocMany allocates n BitBlocks of identical shape in one contiguous
// backing allocation (spec.md §6 alloc_blocks), matching
// mzd_local_init_multiple's "one buffer, many headers" layout.
func AllocMany(n, cols int) []*Block {
	m := AllocMatrix(n, cols)
	out := make([]*Block, n)
	for i := 0; i < n; i++ {
		out[i] = rowAsBlock(m, i)
	}
	return out
}

// rowAsBlock wraps row i of m as a standalone Block sharing m's backing
// storage (no copy) — used by AllocMany to view a Matrix's rows as
// individually addressable blocks.
func rowAsBlock(m *Matrix, i int) *Block {
	return &Block{m: &Matrix{
		rowLayout:    m.rowLayout,
		nRows:        1,
		storage:      m.rows[i][:m.nLimbs:m.rowStride],
		rows:         [][]uint64{m.rows[i]},
		customLayout: m.customLayout,
	}}
}

// NCols, NLimbs, RowStride, HighMask, AlignmentTag expose the BitBlock's
// layout metadata (spec.md §3).
func (b *Block) NCols() int        { return b.m.nCols }
func (b *Block) NLimbs() int       { return b.m.nLimbs }
func (b *Block) RowStride() int    { return b.m.rowStride }
func (b *Block) HighMask() uint64  { return b.m.highMask }
func (b *Block) AlignmentTag() int { return b.m.alignmentTag }

// Limbs returns the block's valid limbs (length NLimbs). Callers must not
// retain this slice past the block's lifetime; it aliases the block's
// backing storage.
func (b *Block) Limbs() []uint64 { return b.m.rows[0] }

// NRows, NCols, RowStride, HighMask, AlignmentTag for Matrix.
func (m *Matrix) NRows() int       { return m.nRows }
func (m *Matrix) NCols() int       { return m.nCols }
func (m *Matrix) NLimbs() int      { return m.nLimbs }
func (m *Matrix) RowStride() int   { return m.rowStride }
func (m *Matrix) HighMask() uint64 { return m.highMask }

// Row returns row i's valid limbs (length NLimbs), aliasing the matrix's
// backing storage. This is the only sanctioned way to reach raw limbs.
func (m *Matrix) Row(i int) []uint64 { return m.rows[i] }

// Free marks b as released. Go is garbage collected, so this cannot fail
// with a dangling pointer the way mzd_local_free can, but the custom-
// layout contract check from spec.md §4.1/§4.7 is preserved: freeing a
// Block not produced by this package's allocators is a contract violation.
func Free(b *Block) error {
	if b == nil || b.m == nil {
		return nil
	}
	if !b.m.customLayout {
		return fmt.Errorf("gf2: Free: %w", ErrContractViolation)
	}
	b.m.storage = nil
	b.m.rows = nil
	b.m.customLayout = false
	return nil
}

// FreeMany frees every block in bs, stopping at (and returning) the first
// error encountered.
func FreeMany(bs []*Block) error {
	for _, b := range bs {
		if err := Free(b); err != nil {
			return err
		}
	}
	return nil
}

// FreeMatrix is Free's Matrix counterpart.
func FreeMatrix(m *Matrix) error {
	if m == nil {
		return nil
	}
	if !m.customLayout {
		return fmt.Errorf("gf2: FreeMatrix: %w", ErrContractViolation)
	}
	m.storage = nil
	m.rows = nil
	m.customLayout = false
	return nil
}

// Copy copies src's valid limbs into dst, row by row, using dst's row
// stride as the original's mzd_local_copy does. dst must have src's
// column width and at least src's row count (spec.md §4.1).
func Copy(dst, src *Block) error {
	if dst == src {
		return nil
	}
	if !dst.m.sameShape(src.m.rowLayout) {
		return fmt.Errorf("gf2: Copy: %w", ErrDimensionMismatch)
	}
	copy(dst.Limbs(), src.Limbs())
	return nil
}

// CopyMatrix is Copy's Matrix counterpart: dst.NCols must equal src.NCols
// and dst.NRows must be >= src.NRows.
func CopyMatrix(dst, src *Matrix) error {
	if dst == src {
		return nil
	}
	if !dst.sameShape(src.rowLayout) || dst.nRows < src.nRows {
		return fmt.Errorf("gf2: CopyMatrix: %w", ErrDimensionMismatch)
	}
	for i := 0; i < src.nRows; i++ {
		copy(dst.rows[i], src.rows[i])
	}
	return nil
}
