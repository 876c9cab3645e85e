package fmindex

// MergeSource holds the raw sequences one already-built index was built
// from, the information Merge needs but an FMIndex does not retain once
// built (it keeps only the succinct BWT rank dictionary and sampled
// suffix array, not the original bytes). It does not hold the index
// itself.
type MergeSource struct {
	Sequences [][]byte
}

// Merge rebuilds a single FMIndex over the concatenation of every
// source's sequences.
//
// This is a reference-grade merge: it does not attempt the sort-free
// succinct merge algorithms the literature describes for combining two
// BWTs without revisiting the original text; it simply pools the raw
// inputs and reruns Build. That keeps this corner of the module correct
// and easy to audit, at the cost of paying full construction cost again
// on merge — acceptable for a reference implementation where merging is
// an occasional maintenance operation, not a query-path hot loop.
func Merge(sources []MergeSource, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder) (*FMIndex, error) {
	var all [][]byte
	for _, s := range sources {
		all = append(all, s.Sequences...)
	}
	return Build(all, alphabet, rankBuilder, saBuilder)
}

// MergeBidirectional is Merge's BiFMIndex counterpart.
func MergeBidirectional(sources []MergeSource, alphabet *Alphabet, rankBuilder RankBuilder, saBuilder SABuilder) (*BiFMIndex, error) {
	var all [][]byte
	for _, s := range sources {
		all = append(all, s.Sequences...)
	}
	return BuildBidirectional(all, alphabet, rankBuilder, saBuilder)
}
