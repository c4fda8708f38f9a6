package countnet

// wirePair is a single balancer connection between wires i and j, i < j.
type wirePair struct {
	i, j int
}

// schedule returns the exact ordered sequence of balancer connections that
// realizes the bitonic[w] counting network of Aspnes, Herlihy & Shavit, for
// a power-of-two width w. The order is the construction contract: each
// wire's balancers must appear shallowest-first, so that newNetwork can
// wire successors in a single backward pass over the sequence.
//
// schedule follows the textbook recursive definition directly:
//
//	Bitonic[w]  = Bitonic[w/2] on the top half, Bitonic[w/2] on the bottom
//	              half (in either order, they don't interact), then Merge[w]
//	              across the whole width.
//	Merge[w]    = split top/bottom into even/odd-indexed wires, recurse on
//	              the two recombined halves, then place one final balancer
//	              per pair of wires that reunite at the same output slot.
//	Merge[2]    = a single balancer between the two wires.
func schedule(w int) []wirePair {
	if w < 2 {
		return nil
	}
	wires := make([]int, w)
	for i := range wires {
		wires[i] = i
	}
	var out []wirePair
	bitonicSort(wires, &out)
	return out
}

func bitonicSort(wires []int, out *[]wirePair) {
	if len(wires) < 2 {
		return
	}
	half := len(wires) / 2
	bitonicSort(wires[:half], out)
	bitonicSort(wires[half:], out)
	bitonicMerge(wires, out)
}

func bitonicMerge(wires []int, out *[]wirePair) {
	if len(wires) == 2 {
		*out = append(*out, newWirePair(wires[0], wires[1]))
		return
	}

	half := len(wires) / 2
	top, bottom := wires[:half], wires[half:]

	// top-even ∪ bottom-odd, and top-odd ∪ bottom-even: the two halves that
	// Merge[w/2] runs on in parallel before the final balancer layer.
	left := make([]int, 0, half)
	right := make([]int, 0, half)
	for i, wire := range top {
		if i%2 == 0 {
			left = append(left, wire)
		} else {
			right = append(right, wire)
		}
	}
	for i, wire := range bottom {
		if i%2 == 0 {
			right = append(right, wire)
		} else {
			left = append(left, wire)
		}
	}

	bitonicMerge(left, out)
	bitonicMerge(right, out)

	// final layer: one balancer per matched pair of wires that re-unite at
	// the same positional slot across the two sub-merges.
	for k := range left {
		*out = append(*out, newWirePair(left[k], right[k]))
	}
}

func newWirePair(a, b int) wirePair {
	if a > b {
		a, b = b, a
	}
	return wirePair{i: a, j: b}
}

// networkDepth returns L(w) = log2(w)*(log2(w)+1)/2, the number of
// balancer layers (and thus the number of balancer hops any traversal
// makes) in bitonic[w].
func networkDepth(w int) int {
	l := log2(w)
	return l * (l + 1) / 2
}
