package sf

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStore(t *testing.T) {
	n := MaxLanes[float64]()
	src := make([]float64, n+3)
	for i := range src {
		src[i] = float64(i) + 0.5
	}

	v := Load(src)
	if v.NumLanes() != n {
		t.Fatalf("NumLanes() = %d, want %d", v.NumLanes(), n)
	}

	dst := make([]float64, n)
	v.Store(dst)
	if diff := cmp.Diff(src[:n], dst); diff != "" {
		t.Errorf("Store mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]float32{1, 2})
	if v.NumLanes() != 2 {
		t.Errorf("NumLanes() = %d, want 2", v.NumLanes())
	}
	if got := MaxLanes[float32](); got != 2*MaxLanes[float64]() {
		t.Errorf("MaxLanes[float32]() = %d, want twice MaxLanes[float64]()", got)
	}
}

func TestSetZero(t *testing.T) {
	s := Set(2.5)
	for i, x := range s.Data() {
		if x != 2.5 {
			t.Errorf("Set lane %d = %v, want 2.5", i, x)
		}
	}
	z := Zero[float32]()
	if z.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Zero lanes = %d, want %d", z.NumLanes(), MaxLanes[float32]())
	}
	for i, x := range z.Data() {
		if x != 0 {
			t.Errorf("Zero lane %d = %v", i, x)
		}
	}
}

func TestMap(t *testing.T) {
	v := Load([]float32{0, 1, 4, 9})
	got := Map(v, math.Sqrt).Data()
	want := []float32{0, 1, 2, 3}[:v.NumLanes()]
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map(Sqrt) mismatch (-want +got):\n%s", diff)
	}

	pow := Map2(2, Load([]float64{3, 4}), math.Pow).Data()
	if diff := cmp.Diff([]float64{8, 16}, pow); diff != "" {
		t.Errorf("Map2(Pow) mismatch (-want +got):\n%s", diff)
	}
}
