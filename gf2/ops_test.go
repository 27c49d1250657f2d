package gf2

import (
	"math/rand"
	"testing"

	"github.com/fishbegol/mpccore/internal/cpufeature"
)

func randomizeRawBlock(t *testing.T, b *Block, r *rand.Rand) {
	t.Helper()
	for i := range b.Limbs() {
		b.Limbs()[i] = r.Uint64()
	}
	b.MaskHigh()
}

func TestXorSelfInverse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := Alloc(130)
	b := Alloc(130)
	randomizeRawBlock(t, a, r)
	randomizeRawBlock(t, b, r)

	xored := Alloc(130)
	if err := Xor(xored, a, b); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	back := Alloc(130)
	if err := Xor(back, xored, b); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	eq, err := Equal(back, a)
	if err != nil || !eq {
		t.Fatalf("Xor is not self-inverse: eq=%v err=%v", eq, err)
	}
}

func TestAndWithAllOnesIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	a := Alloc(200)
	randomizeRawBlock(t, a, r)

	ones := Alloc(200)
	for i := range ones.Limbs() {
		ones.Limbs()[i] = ^uint64(0)
	}
	ones.MaskHigh()

	dst := Alloc(200)
	if err := And(dst, a, ones); err != nil {
		t.Fatalf("And: %v", err)
	}
	eq, err := Equal(dst, a)
	if err != nil || !eq {
		t.Fatalf("And with all-ones changed value: eq=%v err=%v", eq, err)
	}
}

func TestXorMasksDirtyOperandOnScalarTier(t *testing.T) {
	restore := cpufeature.ForceFeatures(cpufeature.Features{})
	defer restore()

	a := Alloc(4) // 1 limb, high 60 bits are padding
	a.Limbs()[0] = ^uint64(0)
	b := Alloc(4)
	b.Limbs()[0] = 0

	dst := Alloc(4)
	if err := Xor(dst, a, b); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	if dst.Limbs()[0]&^dst.HighMask() != 0 {
		t.Fatalf("Xor left dirty padding bits set: %x", dst.Limbs()[0])
	}
}

func TestAndMasksDirtyOperandOnScalarTier(t *testing.T) {
	restore := cpufeature.ForceFeatures(cpufeature.Features{})
	defer restore()

	a := Alloc(4)
	a.Limbs()[0] = ^uint64(0)
	b := Alloc(4)
	b.Limbs()[0] = ^uint64(0)

	dst := Alloc(4)
	if err := And(dst, a, b); err != nil {
		t.Fatalf("And: %v", err)
	}
	if dst.Limbs()[0]&^dst.HighMask() != 0 {
		t.Fatalf("And left dirty padding bits set: %x", dst.Limbs()[0])
	}
}

func TestShrThenShlDoesNotRecoverShiftedOutBits(t *testing.T) {
	a := Alloc(64)
	a.Limbs()[0] = 0x8000000000000001

	shifted := Alloc(64)
	if err := Shr(shifted, a, 1); err != nil {
		t.Fatalf("Shr: %v", err)
	}
	if shifted.Limbs()[0] != 0x4000000000000000 {
		t.Fatalf("Shr result = %x, want 4000000000000000", shifted.Limbs()[0])
	}

	back := Alloc(64)
	if err := Shl(back, shifted, 1); err != nil {
		t.Fatalf("Shl: %v", err)
	}
	if back.Limbs()[0] != 0x8000000000000000 {
		t.Fatalf("Shl(Shr(a, 1), 1) = %x, want 8000000000000000 (low bit lost)", back.Limbs()[0])
	}
}

func TestShlRequiresExplicitMask(t *testing.T) {
	a := Alloc(4)
	a.Limbs()[0] = 0xF // all 4 valid bits set

	shifted := Alloc(4)
	if err := Shl(shifted, a, 2); err != nil {
		t.Fatalf("Shl: %v", err)
	}
	if shifted.Limbs()[0]&^shifted.HighMask() == 0 {
		t.Fatal("test setup invalid: Shl happened to not touch padding bits")
	}
	shifted.MaskHigh()
	if shifted.Limbs()[0] != 0xC {
		t.Fatalf("after MaskHigh, limb = %x, want c", shifted.Limbs()[0])
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	a := Alloc(64)
	b := Alloc(128)
	if _, err := Equal(a, b); err == nil {
		t.Fatal("Equal across mismatched widths should error")
	}
}

func TestEqualIgnoresPaddingBeyondHighMask(t *testing.T) {
	a := Alloc(70)
	b := Alloc(70)
	a.Limbs()[1] = 0x3F
	b.Limbs()[1] = 0x3F | 1<<10 // bit 74: padding above NCols
	eq, err := Equal(a, b)
	if err != nil || !eq {
		t.Fatalf("Equal = %v, %v, want true, nil", eq, err)
	}
}

func TestMulVSelectsRows(t *testing.T) {
	// a transposed: row i is the output contribution when v's bit i is set.
	a := AllocMatrix(3, 64)
	a.Row(0)[0] = 0x1
	a.Row(1)[0] = 0x2
	a.Row(2)[0] = 0x4

	v := Alloc(3)
	v.Limbs()[0] = 0b101 // bits 0 and 2 set

	dst := Alloc(64)
	if err := MulV(dst, v, a); err != nil {
		t.Fatalf("MulV: %v", err)
	}
	if dst.Limbs()[0] != 0x5 {
		t.Fatalf("MulV result = %x, want 5", dst.Limbs()[0])
	}
}

func TestAddMulVNibbleJumpMatchesNaiveRowXor(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	const rows = 37 // deliberately not a multiple of 4, to exercise the tail
	const cols = 70
	a := AllocMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < a.NLimbs(); j++ {
			a.Row(i)[j] = r.Uint64()
		}
		a.Row(i)[a.NLimbs()-1] &= a.HighMask()
	}
	v := Alloc(rows)
	for i := range v.Limbs() {
		v.Limbs()[i] = r.Uint64()
	}
	v.MaskHigh()

	want := Alloc(cols)
	for i := 0; i < rows; i++ {
		bit := (v.Limbs()[i/WordBits] >> uint(i%WordBits)) & 1
		if bit != 0 {
			for j := 0; j < want.NLimbs(); j++ {
				want.Limbs()[j] ^= a.Row(i)[j]
			}
		}
	}

	got := Alloc(cols)
	if err := AddMulV(got, v, a); err != nil {
		t.Fatalf("AddMulV: %v", err)
	}
	eq, err := Equal(got, want)
	if err != nil || !eq {
		t.Fatalf("AddMulV disagrees with naive row-xor: eq=%v err=%v", eq, err)
	}
}

func TestKernelTiersAgree(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	a := Alloc(300)
	b := Alloc(300)
	randomizeRawBlock(t, a, r)
	randomizeRawBlock(t, b, r)

	tiers := []cpufeature.Features{
		{},
		{SSE2: true, SSE41: true},
		{SSE2: true, SSE41: true, AVX2: true},
	}
	var results [][]uint64
	for _, f := range tiers {
		restore := cpufeature.ForceFeatures(f)
		dst := Alloc(300)
		if err := Xor(dst, a, b); err != nil {
			t.Fatalf("Xor under %+v: %v", f, err)
		}
		results = append(results, append([]uint64(nil), dst.Limbs()...))
		restore()
	}
	for i := 1; i < len(results); i++ {
		for j := range results[0] {
			if results[0][j] != results[i][j] {
				t.Fatalf("tier %d disagrees with scalar tier at limb %d", i, j)
			}
		}
	}
}

func TestMulVLeftDotProduct(t *testing.T) {
	a := AllocMatrix(2, 4)
	a.Row(0)[0] = 0b1011
	a.Row(1)[0] = 0b0110

	v := Alloc(4)
	v.Limbs()[0] = 0b1010

	dst := Alloc(2)
	if err := MulVLeft(dst, a, v); err != nil {
		t.Fatalf("MulVLeft: %v", err)
	}
	// row0 . v = parity(1011 & 1010) = parity(1010) = 0
	// row1 . v = parity(0110 & 1010) = parity(0010) = 1
	if dst.Limbs()[0] != 0b10 {
		t.Fatalf("MulVLeft result = %b, want 10", dst.Limbs()[0])
	}
}
