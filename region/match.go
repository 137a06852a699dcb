package region

// Matches reports whether fragment lies on the same chromosome and strand as
// region and either nests inside it (boundaries inclusive) or strictly
// encloses it. Partial overlap does not match.
func Matches(r Region, f Fragment) bool {
	if r.Chromosome != f.Chromosome || r.Strand != f.Strand {
		return false
	}
	switch {
	case f.Start >= r.Start && f.End <= r.End:
		return true
	case f.Start < r.Start && f.End > r.End:
		return true
	}
	return false
}

// MatchesAny reports whether any region matches any fragment. It stops at the
// first matching pair; with no regions or no fragments nothing matches.
func MatchesAny(regions []Region, frags []Fragment) bool {
	for _, r := range regions {
		for _, f := range frags {
			if Matches(r, f) {
				return true
			}
		}
	}
	return false
}
