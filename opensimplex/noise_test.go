package opensimplex

import (
	"errors"
	"math"
	"sync"
	"testing"
)

const tolerance = 1e-9

func TestNew(t *testing.T) {
	n := New()
	if n == nil {
		t.Fatal("New returned nil")
	}
	if n.Seed() != DefaultSeed {
		t.Errorf("Expected seed %d, got %d", DefaultSeed, n.Seed())
	}
	if n.Perm() != GeneratePerm(DefaultSeed) {
		t.Error("New should use the default seed's table")
	}
}

func TestNewWithPerm(t *testing.T) {
	perm := GeneratePerm(99)
	n, err := NewWithPerm(perm)
	if err != nil {
		t.Fatalf("NewWithPerm returned error: %v", err)
	}
	if n.Seed() != 0 {
		t.Errorf("Expected seed 0 for an injected table, got %d", n.Seed())
	}

	seeded := NewWithSeed(99)
	if n.Eval2D(3.7, -1.2) != seeded.Eval2D(3.7, -1.2) {
		t.Error("Injected table should evaluate like the seeded generator")
	}

	perm[5] = perm[6]
	if _, err := NewWithPerm(perm); !errors.Is(err, ErrInvalidPerm) {
		t.Errorf("Expected ErrInvalidPerm, got %v", err)
	}
}

func TestPermIsCopy(t *testing.T) {
	n := NewWithSeed(5)
	perm := n.Perm()
	perm[0], perm[1] = perm[1], perm[0]

	if n.Perm() == perm {
		t.Error("Modifying the returned table should not affect the generator")
	}
}

func TestRegressionValues(t *testing.T) {
	zero := NewWithSeed(0)
	big := NewWithSeed(883279212983182319)
	other := NewWithSeed(42)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"2D origin", zero.Eval2D(0, 0), 0},
		{"2D seed 0", zero.Eval2D(0.5, 0.5), 0.45838844963081726},
		{"2D large seed", big.Eval2D(0.044*10, 0.044*10), -0.04837257685487002},
		{"2D negative seed", NewWithSeed(-1).Eval2D(12.34, -56.78), -0.14556168226648133},
		{"3D origin", zero.Eval3D(0, 0, 0), 0},
		{"3D seed 0", zero.Eval3D(0.1, 0.2, 0.3), 0.3902928352621357},
		{"3D seed 42", other.Eval3D(-3.25, 7.5, 1.125), -0.062410789854796665},
		{"4D seed 0", zero.Eval4D(0.1, 0.2, 0.3, 0.4), -0.3662154691326341},
		{"4D seed 0 mixed", zero.Eval4D(1.3, -2.7, 0.6, 1.1), 0.22179518435597112},
		{"4D seed 42", other.Eval4D(2.5, -1.25, 0.75, 3.0), 0.26146005214417145},
		{"2D tie", other.Eval2D(-0.25, 1.0/3), 0.16585063837684802},
		{"3D tie", zero.Eval3D(0.5, 0.5, 0.5), -0.031603964401294454},
		{"3D sixths", other.Eval3D(1.0/6, -1.0/3, 0.25), 0.12534954848177807},
		{"4D tie", zero.Eval4D(0.25, 0.25, 0.25, 0.25), -0.14961388215156515},
		{"4D sixths", other.Eval4D(0.5, -0.5, 1.0/6, 1.75), 0.02856184676818864},
	}

	for _, c := range cases {
		if math.Abs(c.got-c.want) > tolerance {
			t.Errorf("%s: expected %.17g, got %.17g", c.name, c.want, c.got)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := NewWithSeed(77)
	b := NewWithSeed(77)

	for i := 0; i < 200; i++ {
		x := float64(i)*0.731 - 40
		y := float64(i)*-0.273 + 12
		z := float64(i) * 0.119
		w := float64(i)*0.057 - 3

		if a.Eval2D(x, y) != b.Eval2D(x, y) {
			t.Fatalf("2D differs at (%f, %f)", x, y)
		}
		if a.Eval3D(x, y, z) != b.Eval3D(x, y, z) {
			t.Fatalf("3D differs at (%f, %f, %f)", x, y, z)
		}
		if a.Eval4D(x, y, z, w) != b.Eval4D(x, y, z, w) {
			t.Fatalf("4D differs at (%f, %f, %f, %f)", x, y, z, w)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := NewWithSeed(1)
	b := NewWithSeed(2)

	differ := false
	for i := 0; i < 50 && !differ; i++ {
		x := float64(i)*0.37 + 0.1
		differ = a.Eval2D(x, x*0.5) != b.Eval2D(x, x*0.5)
	}
	if !differ {
		t.Error("Different seeds should produce different noise")
	}
}

// steps returns lo, lo+step, ... up to and including hi.
func steps(lo, hi, step float64) []float64 {
	var out []float64
	for i := 0; lo+float64(i)*step <= hi; i++ {
		out = append(out, lo+float64(i)*step)
	}
	return out
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= -1 && v <= 1
}

func TestBounded(t *testing.T) {
	plane := steps(-100, 100, 0.5)
	coarse := steps(-100, 100, 2)
	depth := steps(-2, 2, 0.5)

	for _, seed := range []int64{0, -7, 883279212983182319} {
		n := NewWithSeed(seed)

		for _, x := range plane {
			for _, y := range plane {
				if v := n.Eval2D(x, y); !inRange(v) {
					t.Fatalf("Seed %d: 2D value %f at (%g, %g) out of [-1, 1]", seed, v, x, y)
				}
				for _, z := range depth {
					if v := n.Eval3D(x, y, z); !inRange(v) {
						t.Fatalf("Seed %d: 3D value %f at (%g, %g, %g) out of [-1, 1]", seed, v, x, y, z)
					}
				}
			}
		}

		for _, x := range coarse {
			for _, y := range coarse {
				for _, z := range []float64{-2, -1, 0, 1, 2} {
					for _, w := range depth {
						if v := n.Eval4D(x, y, z, w); !inRange(v) {
							t.Fatalf("Seed %d: 4D value %f at (%g, %g, %g, %g) out of [-1, 1]", seed, v, x, y, z, w)
						}
					}
				}
			}
		}
	}
}

func TestContinuity(t *testing.T) {
	n := NewWithSeed(3)
	const eps = 1e-6
	const limit = 1e-4

	for i := 0; i < 500; i++ {
		x := float64(i)*0.0791 - 20
		y := float64(i)*-0.0613 + 15
		z := float64(i)*0.0437 - 5
		w := float64(i) * 0.0219

		if d := math.Abs(n.Eval2D(x+eps, y) - n.Eval2D(x, y)); d > limit {
			t.Errorf("2D jump of %g at (%f, %f)", d, x, y)
		}
		if d := math.Abs(n.Eval3D(x, y+eps, z) - n.Eval3D(x, y, z)); d > limit {
			t.Errorf("3D jump of %g at (%f, %f, %f)", d, x, y, z)
		}
		if d := math.Abs(n.Eval4D(x, y, z, w+eps) - n.Eval4D(x, y, z, w)); d > limit {
			t.Errorf("4D jump of %g at (%f, %f, %f, %f)", d, x, y, z, w)
		}
	}
}

func TestLatticeOrigin(t *testing.T) {
	// At a lattice vertex every contributing offset is orthogonal to or
	// outside the kernel, so the value is 0 up to rounding for any seed.
	for _, seed := range []int64{0, 11, -5} {
		n := NewWithSeed(seed)
		if v := n.Eval2D(0, 0); math.Abs(v) > tolerance {
			t.Errorf("Seed %d: expected 0 at 2D origin, got %g", seed, v)
		}
		if v := n.Eval3D(0, 0, 0); math.Abs(v) > tolerance {
			t.Errorf("Seed %d: expected 0 at 3D origin, got %g", seed, v)
		}
		if v := n.Eval4D(0, 0, 0, 0); math.Abs(v) > tolerance {
			t.Errorf("Seed %d: expected 0 at 4D origin, got %g", seed, v)
		}
	}
}

func TestDimensionsIndependent(t *testing.T) {
	n := NewWithSeed(0)

	differ := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*0.173 + 0.3
		y := float64(i)*0.291 + 0.7
		if math.Abs(n.Eval3D(x, y, 0)-n.Eval2D(x, y)) > tolerance {
			differ++
		}
	}
	if differ == 0 {
		t.Error("3D noise on the z=0 plane should not reproduce 2D noise")
	}
}

func TestNonFiniteInput(t *testing.T) {
	n := NewWithSeed(0)
	nan := math.NaN()
	inf := math.Inf(1)

	values := map[string]float64{
		"2D NaN":  n.Eval2D(nan, 0),
		"2D +Inf": n.Eval2D(inf, 0),
		"2D -Inf": n.Eval2D(0, -inf),
		"3D NaN":  n.Eval3D(nan, 0, 0),
		"3D +Inf": n.Eval3D(inf, 0, 0),
		"4D NaN":  n.Eval4D(1, 2, nan, 4),
		"4D -Inf": n.Eval4D(0, 0, 0, -inf),
	}
	for name, v := range values {
		if !math.IsNaN(v) {
			t.Errorf("%s: expected NaN, got %f", name, v)
		}
	}
}

func TestEval(t *testing.T) {
	n := NewWithSeed(8)

	v, err := n.Eval(1.5, 2.5)
	if err != nil {
		t.Fatalf("Eval with 2 coordinates returned error: %v", err)
	}
	if v != n.Eval2D(1.5, 2.5) {
		t.Errorf("Expected Eval to match Eval2D, got %f", v)
	}

	v, err = n.Eval(1.5, 2.5, 3.5)
	if err != nil || v != n.Eval3D(1.5, 2.5, 3.5) {
		t.Errorf("Expected Eval to match Eval3D, got %f (%v)", v, err)
	}

	v, err = n.Eval(1.5, 2.5, 3.5, 4.5)
	if err != nil || v != n.Eval4D(1.5, 2.5, 3.5, 4.5) {
		t.Errorf("Expected Eval to match Eval4D, got %f (%v)", v, err)
	}

	for _, coords := range [][]float64{nil, {1}, {1, 2, 3, 4, 5}} {
		if _, err := n.Eval(coords...); !errors.Is(err, ErrDimension) {
			t.Errorf("Expected ErrDimension for %d coordinates, got %v", len(coords), err)
		}
	}
}

func TestConcurrentEval(t *testing.T) {
	n := NewWithSeed(21)
	want := n.Eval3D(4.2, -1.3, 8.8)

	var wg sync.WaitGroup
	errs := make(chan float64, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := n.Eval3D(4.2, -1.3, 8.8); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("Expected %f from every goroutine, got %f", want, got)
	}
}
