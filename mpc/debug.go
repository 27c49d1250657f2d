package mpc

import "fmt"

// DebugString reconstructs sv and renders it as a hex string, replacing
// mpc_print's direct stdout write with a value the caller's own logger
// can place wherever it likes.
func DebugString(sv *ShareVector) (string, error) {
	v, err := Reconstruct(sv)
	if err != nil {
		return "", fmt.Errorf("mpc: DebugString: %w", err)
	}
	limbs := v.Limbs()
	s := fmt.Sprintf("mpc.ShareVector{cols=%d, sc=%d, value=", sv.NCols(), sv.SC())
	for i := len(limbs) - 1; i >= 0; i-- {
		s += fmt.Sprintf("%016x", limbs[i])
	}
	return s + "}", nil
}
