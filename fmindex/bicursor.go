package fmindex

// BiCursor is the bidirectional cursor from spec §5: it maintains
// matching intervals on both the forward and reverse rank dictionaries in
// lockstep, so ExtendRight costs the same O(1) rank-query budget as
// ExtendLeft despite both updating two intervals at once. Grounded on the
// standard bidirectional (FMD-index style) extension: extending in one
// direction needs only that direction's dictionary to move both
// intervals, because the "how many matched rows have a smaller opposite
// symbol" count computed from the extending dictionary is exactly the
// opposite interval's shift.
type BiCursor struct {
	idx   *BiFMIndex
	lb    int // forward interval lower bound
	lbRev int // reverse interval lower bound
	len   int // shared interval length
	depth int
}

func (c BiCursor) IsEmptyMatch() bool { return c.depth == 0 }
func (c BiCursor) IsMatch() bool      { return c.len > 0 }
func (c BiCursor) Count() int         { return c.len }
func (c BiCursor) Depth() int         { return c.depth }
func (c BiCursor) Len() int           { return c.len }

// ForwardLowerBound and ReverseLowerBound expose the raw BWT intervals.
func (c BiCursor) ForwardLowerBound() int { return c.lb }
func (c BiCursor) ReverseLowerBound() int { return c.lbRev }

// ExtendLeft prepends sym to the matched pattern, updating the forward
// interval via backward search on the forward dictionary and shifting
// the reverse interval by the count of matched rows whose forward-BWT
// symbol sorts below sym.
func (c BiCursor) ExtendLeft(sym Symbol) BiCursor {
	ranksAtLB := c.idx.forward.AllRanks(c.lb)
	ranksAtUB := c.idx.forward.AllRanks(c.lb + c.len)

	var smaller uint64
	for s := 0; s < int(sym); s++ {
		smaller += ranksAtUB[s] - ranksAtLB[s]
	}
	occ := ranksAtUB[sym] - ranksAtLB[sym]

	return BiCursor{
		idx:   c.idx,
		lb:    int(c.idx.forwardC[sym] + ranksAtLB[sym]),
		lbRev: c.lbRev + int(smaller),
		len:   int(occ),
		depth: c.depth + 1,
	}
}

// ExtendRight appends sym to the matched pattern, the mirror image of
// ExtendLeft using the reverse dictionary.
func (c BiCursor) ExtendRight(sym Symbol) BiCursor {
	ranksAtLB := c.idx.reverse.AllRanks(c.lbRev)
	ranksAtUB := c.idx.reverse.AllRanks(c.lbRev + c.len)

	var smaller uint64
	for s := 0; s < int(sym); s++ {
		smaller += ranksAtUB[s] - ranksAtLB[s]
	}
	occ := ranksAtUB[sym] - ranksAtLB[sym]

	return BiCursor{
		idx:   c.idx,
		lb:    c.lb + int(smaller),
		lbRev: int(c.idx.reverseC[sym] + ranksAtLB[sym]),
		len:   int(occ),
		depth: c.depth + 1,
	}
}

// ExtendLeftAll returns ExtendLeft(sym) for every symbol in one fused
// pass over the forward dictionary's AllRanks.
func (c BiCursor) ExtendLeftAll() []BiCursor {
	sigma := c.idx.alphabet.Sigma
	ranksAtLB := c.idx.forward.AllRanks(c.lb)
	ranksAtUB := c.idx.forward.AllRanks(c.lb + c.len)

	out := make([]BiCursor, sigma)
	var smaller uint64
	for sym := 0; sym < sigma; sym++ {
		occ := ranksAtUB[sym] - ranksAtLB[sym]
		out[sym] = BiCursor{
			idx:   c.idx,
			lb:    int(c.idx.forwardC[sym] + ranksAtLB[sym]),
			lbRev: c.lbRev + int(smaller),
			len:   int(occ),
			depth: c.depth + 1,
		}
		smaller += occ
	}
	return out
}

// ExtendRightAll returns ExtendRight(sym) for every symbol in one fused
// pass over the reverse dictionary's AllRanks.
func (c BiCursor) ExtendRightAll() []BiCursor {
	sigma := c.idx.alphabet.Sigma
	ranksAtLB := c.idx.reverse.AllRanks(c.lbRev)
	ranksAtUB := c.idx.reverse.AllRanks(c.lbRev + c.len)

	out := make([]BiCursor, sigma)
	var smaller uint64
	for sym := 0; sym < sigma; sym++ {
		occ := ranksAtUB[sym] - ranksAtLB[sym]
		out[sym] = BiCursor{
			idx:   c.idx,
			lb:    c.lb + int(smaller),
			lbRev: int(c.idx.reverseC[sym] + ranksAtLB[sym]),
			len:   int(occ),
			depth: c.depth + 1,
		}
		smaller += occ
	}
	return out
}

// Locate resolves every row in this cursor's forward interval to its
// position.
func (c BiCursor) Locate() []Position {
	out := make([]Position, 0, c.len)
	for row := c.lb; row < c.lb+c.len; row++ {
		out = append(out, c.idx.Locate(row))
	}
	return out
}
