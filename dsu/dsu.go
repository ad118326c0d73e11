// Package dsu implements a disjoint-set forest (union-find) over dense
// integer indices 0..n-1, with iterative path compression and union by size.
//
// It is the cycle detector behind maze generation: two cells may be joined
// by an open passage only while their sets differ.
//
// Complexity:
//
//   - Find:  amortized near-O(1) (inverse Ackermann) over repeated calls.
//   - Union: amortized near-O(1); dominated by two Finds.
//   - Space: O(n) for the parent and size slices.
//
// Indices outside 0..n-1 are the caller's responsibility; the structure
// performs no bounds checks of its own.
package dsu

// DisjointSet tracks a partition of the elements 0..n-1 into disjoint sets.
// The zero value is not usable; construct with New.
type DisjointSet struct {
	parent []int // parent[i] == i marks a root
	size   []int // size[r] is the element count of the set rooted at r
	count  int   // number of live sets
}

// New returns a DisjointSet of n singleton sets, one per element.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the representative of the set containing x.
// It compresses the path as it walks: each visited element is pointed
// at its grandparent, halving the chain for future lookups.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing a and b, attaching the smaller set
// under the larger set's root. It reports whether a merge happened;
// false means a and b were already in the same set.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Keep ra as the larger root so the tree stays shallow.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Count returns the number of disjoint sets currently in the forest.
// A freshly built forest has n; a spanning structure over all elements has 1.
func (d *DisjointSet) Count() int {
	return d.count
}

// Size returns the number of elements in the set containing x.
func (d *DisjointSet) Size(x int) int {
	return d.size[d.Find(x)]
}
