package bench

import (
	"testing"

	"github.com/fishbegol/mpccore/gf2"
	"github.com/fishbegol/mpccore/mpc"
)

func BenchmarkANDProof(b *testing.B) {
	adapter, err := mpc.NewPRNGAdapter([]byte("benchmark-seed-16"))
	if err != nil {
		b.Fatal(err)
	}
	const width = 4096
	x := gf2.Alloc(width)
	gf2.Randomize(x, adapter)
	y := gf2.Alloc(width)
	gf2.Randomize(y, adapter)

	xs, err := mpc.InitShareVector(x, adapter)
	if err != nil {
		b.Fatal(err)
	}
	ys, err := mpc.InitShareVector(y, adapter)
	if err != nil {
		b.Fatal(err)
	}
	r := mpc.InitRandomVector(width, mpc.SCProof, adapter)
	res := mpc.InitEmptyShareVector(width, mpc.SCProof)
	view := mpc.NewView(width, mpc.SCProof)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := mpc.ANDProof(res, xs, ys, r, view, 0); err != nil {
			b.Fatal(err)
		}
	}
}
