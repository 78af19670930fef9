// Package solver — index-tour primitives shared by the local-search
// engines. All helpers operate on open orders (permutations of [0..n-1]
// without the closing element) and mutate in place where documented.
package solver

// reverseSegmentInPlace reverses the inclusive segment order[i..k] and
// books the element writes on the counter. This is the 2-opt move core.
//
// Contract: 0 ≤ i ≤ k < len(order).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(order []int, i, k int, ctr *Counter) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		ctr.AddWrites(2)
		i++
		k--
	}
}

// copyOrder returns an independent copy of an index order.
//
// Complexity: O(n).
func copyOrder(order []int) []int {
	out := make([]int, len(order))
	copy(out, order)

	return out
}

// assignOrder copies src into dst (same length) and books the writes.
func assignOrder(dst, src []int, ctr *Counter) {
	copy(dst, src)
	ctr.AddWrites(int64(len(src)))
}
