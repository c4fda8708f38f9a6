package countnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkNewWidthGate(t *testing.T) {
	for _, w := range []int{0, 3, 5, 6, 7, 9, 15} {
		w := w
		outputs := make([]int, w)
		_, err := New(outputs)
		if w == 0 {
			assert.ErrorIs(t, err, ErrWidthZero, "width %d", w)
			continue
		}
		assert.ErrorIs(t, err, ErrWidthNotPowerOfTwo, "width %d", w)
	}
}

func TestNetworkNewValidWidths(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8, 16, 32} {
		outputs := make([]int, w)
		for i := range outputs {
			outputs[i] = i + 1
		}
		n, err := New(outputs)
		if err != nil {
			t.Fatalf("width %d: unexpected error: %v", w, err)
		}
		if n.Width() != w {
			t.Fatalf("width %d: Width() = %d", w, n.Width())
		}
		if len(n.Outputs()) != w {
			t.Fatalf("width %d: len(Outputs()) = %d", w, len(n.Outputs()))
		}
		for i, v := range n.Outputs() {
			if v != i+1 {
				t.Fatalf("width %d: Outputs()[%d] = %d, want %d", w, i, v, i+1)
			}
		}
		wantBalancers := 0
		if w >= 2 {
			wantBalancers = (w / 2) * networkDepth(w)
		}
		if len(n.balancers) != wantBalancers {
			t.Fatalf("width %d: got %d balancers, want %d", w, len(n.balancers), wantBalancers)
		}
	}
}

func TestNetworkTraverseWidthOne(t *testing.T) {
	n, err := New([]string{"only"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		got := n.Traverse()
		if *got != "only" {
			t.Fatalf("Traverse() = %q, want %q", *got, "only")
		}
	}
}

func TestNetworkStepPropertySequential(t *testing.T) {
	for _, w := range []int{2, 4, 8, 16} {
		outputs := make([]int, w)
		n, err := New(outputs)
		if err != nil {
			t.Fatal(err)
		}

		counts := make([]int, w)
		const rounds = 500
		for i := 0; i < rounds; i++ {
			out := n.Traverse()
			// identify which output cell this is by comparing its address
			// with each cell of the owned arena.
			idx := outputIndex(n, out)
			counts[idx]++
		}

		for i := 0; i < w; i++ {
			for j := i + 1; j < w; j++ {
				diff := counts[i] - counts[j]
				if diff < 0 || diff > 1 {
					t.Fatalf("width %d: step property violated: counts[%d]=%d counts[%d]=%d", w, i, counts[i], j, counts[j])
				}
			}
		}
	}
}

// outputIndex finds the index of an output cell within n's arena. It
// exists only to let tests attribute a Traverse result to its output
// index without adding an index-reporting method to the public API.
func outputIndex[O any](n *Network[O], out *O) int {
	for i := range n.outputs {
		if &n.outputs[i] == out {
			return i
		}
	}
	panic("output not found in network arena")
}
