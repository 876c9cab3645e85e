package generator

import "github.com/fmindex-go/fmindex/searchscheme"

// PEXNode is one node of the explicit PEX (pattern extension) binary
// tree: a contiguous range of parts, [PartStart, PartEnd), and the error
// budget allocated to matching that whole range. Leaves (Left == -1) are
// single parts. Grounded on
// orig:search_scheme/generator/pex-top-down.h and pex-bottom-up.h.
type PEXNode struct {
	PartStart, PartEnd int
	ErrorBudget         int
	Parent              int
	Left, Right         int
}

// buildPEXTreeRange recursively splits [start,end) in half, passing the
// error budget down split proportionally to each half's size (the
// larger half gets the ceiling), and appends nodes to tree, returning the
// new node's index.
func buildPEXTreeRange(tree *[]PEXNode, parent, start, end, budget int) int {
	idx := len(*tree)
	*tree = append(*tree, PEXNode{PartStart: start, PartEnd: end, ErrorBudget: budget, Parent: parent, Left: -1, Right: -1})
	if end-start <= 1 {
		return idx
	}
	mid := start + (end-start)/2
	leftSize, rightSize := mid-start, end-mid
	total := leftSize + rightSize
	leftBudget := budget * leftSize / total
	rightBudget := budget - leftBudget

	left := buildPEXTreeRange(tree, idx, start, mid, leftBudget)
	right := buildPEXTreeRange(tree, idx, mid, end, rightBudget)
	(*tree)[idx].Left = left
	(*tree)[idx].Right = right
	return idx
}

// PEXTopDown builds a PEX tree for `parts` pattern parts and k total
// errors by recursively halving the part range from the root down,
// apportioning error budget by sub-range size at each split.
func PEXTopDown(parts, k int) []PEXNode {
	var tree []PEXNode
	buildPEXTreeRange(&tree, -1, 0, parts, k)
	return tree
}

// PEXBottomUp builds the same shaped tree, but constructs it leaf-first:
// every part starts as its own budget-0 leaf, and pairs of adjacent
// subtrees are merged upward, accumulating budget as
// ceil(k * coveredParts / parts) at each merge. The resulting tree has
// the same leaves as PEXTopDown; only the order of construction (and,
// for non-power-of-two part counts, the exact rounding of intermediate
// budgets) differs. Grounded on orig:search_scheme/generator/pex-bottom-up.h.
func PEXBottomUp(parts, k int) []PEXNode {
	var tree []PEXNode
	type handle struct{ idx, start, end int }
	level := make([]handle, parts)
	for p := 0; p < parts; p++ {
		idx := len(tree)
		tree = append(tree, PEXNode{PartStart: p, PartEnd: p + 1, Parent: -1, Left: -1, Right: -1})
		level[p] = handle{idx: idx, start: p, end: p + 1}
	}
	for len(level) > 1 {
		var next []handle
		for i := 0; i+1 < len(level); i += 2 {
			l, r := level[i], level[i+1]
			start, end := l.start, r.end
			budget := (k*(end-start) + parts - 1) / parts
			idx := len(tree)
			tree = append(tree, PEXNode{PartStart: start, PartEnd: end, ErrorBudget: budget, Parent: -1, Left: l.idx, Right: r.idx})
			tree[l.idx].Parent = idx
			tree[r.idx].Parent = idx
			next = append(next, handle{idx: idx, start: start, end: end})
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}
	if len(level) == 1 {
		tree[level[0].idx].ErrorBudget = k
	}
	return tree
}

// pexSearchFromLeaf walks from leaf up to the root, building a search
// whose traversal order expands from the leaf's single part outward to
// match each ancestor's covered range, with the ancestor's ErrorBudget as
// the U bound for every step within that range.
func pexSearchFromLeaf(tree []PEXNode, leafIdx int) searchscheme.Search {
	// Collect the root-to-leaf ancestor chain.
	var chain []int
	for i := leafIdx; i != -1; i = tree[i].Parent {
		chain = append([]int{i}, chain...)
	}

	var pi, l, u []int
	visited := make([]bool, tree[chain[0]].PartEnd)

	// Walk leaf-to-root (chain is stored root-first), widening the
	// covered range at each ancestor level.
	for i := len(chain) - 1; i >= 0; i-- {
		node := tree[chain[i]]
		// Expand outward from the covered range to [node.PartStart,
		// node.PartEnd): parts left of it are added right-to-left and parts
		// right of it left-to-right, so every prefix of pi stays contiguous.
		add := func(p int) {
			if !visited[p] {
				visited[p] = true
				pi = append(pi, p)
				l = append(l, 0)
				u = append(u, node.ErrorBudget)
			}
		}
		lo := node.PartEnd
		for p := node.PartStart; p < node.PartEnd; p++ {
			if visited[p] {
				lo = p
				break
			}
		}
		for p := lo - 1; p >= node.PartStart; p-- {
			add(p)
		}
		for p := node.PartStart; p < node.PartEnd; p++ {
			add(p)
		}
	}
	return searchscheme.Search{Pi: pi, L: l, U: u}
}

// PEXToScheme derives one search per leaf of a PEX tree.
func PEXToScheme(tree []PEXNode) searchscheme.Scheme {
	var scheme searchscheme.Scheme
	for i, node := range tree {
		if node.Left == -1 && node.Right == -1 {
			scheme = append(scheme, pexSearchFromLeaf(tree, i))
		}
	}
	return scheme
}

// IncreaseL tightens every search's lower bounds using the pigeonhole
// argument: under the Hamming error model, each of the parts not yet
// visited at step i can contribute at most one error, so if fewer than
// k-accumulated errors remain possible in the unvisited parts, at least
// that many errors must already have occurred. The bound takes the total
// error count to be exactly k: L[i] is raised to k minus the number of
// steps after i, so profiles with fewer than k errors can fall below the
// raised bounds. Completeness is not re-checked. Grounded on the
// "increaseL" tightening pass of the original PEX generators, but
// applicable to any Scheme built over a fixed part count.
func IncreaseL(scheme searchscheme.Scheme, parts, k int) searchscheme.Scheme {
	out := make(searchscheme.Scheme, len(scheme))
	for si, s := range scheme {
		newL := make([]int, len(s.L))
		for i := range s.L {
			remaining := parts - (i + 1)
			bound := k - remaining
			if bound < 0 {
				bound = 0
			}
			if bound > s.L[i] {
				newL[i] = bound
			} else {
				newL[i] = s.L[i]
			}
		}
		out[si] = searchscheme.Search{Pi: append([]int(nil), s.Pi...), L: newL, U: append([]int(nil), s.U...)}
	}
	return out
}
