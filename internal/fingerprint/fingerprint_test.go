package fingerprint

import "testing"

func TestOfIsDeterministic(t *testing.T) {
	a := Of("gate", 8, []byte("payload"))
	b := Of("gate", 8, []byte("payload"))
	if a != b {
		t.Fatalf("Of not deterministic: %s vs %s", a, b)
	}
}

func TestOfDiffersByLabel(t *testing.T) {
	a := Of("gate-x", 8, []byte("payload"))
	b := Of("gate-y", 8, []byte("payload"))
	if a == b {
		t.Fatal("different labels produced the same digest")
	}
}

func TestOfLimbsLength(t *testing.T) {
	d := OfLimbs("share", []uint64{1, 2, 3})
	if len(d) != 16 {
		t.Fatalf("digest hex length = %d, want 16 (8 bytes)", len(d))
	}
}
