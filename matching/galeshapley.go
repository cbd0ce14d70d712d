package matching

// preference is one side's ranked candidate list, best first.
type preference struct {
	id    string
	prefs []string
}

// galeShapley runs classic deferred acceptance to a fixed point.
// Unmatched proposers walk down their lists; each acceptor holds the
// best offer seen so far by its own ranking and rejects worse ones,
// freeing the rejected proposer to continue. Returns proposer ->
// acceptor. A proposer that exhausts its list stays unmatched, which
// is not an error.
//
// The result is deterministic: proposers are processed in slice order
// and preference lists are built with stable ordering by the caller.
func galeShapley(proposers, acceptors []preference) map[string]string {
	ranking := make(map[string]map[string]int, len(acceptors))
	for _, a := range acceptors {
		r := make(map[string]int, len(a.prefs))
		for i, id := range a.prefs {
			r[id] = i
		}
		ranking[a.id] = r
	}

	next := make(map[string]int, len(proposers))
	engaged := make(map[string]string, len(acceptors)) // acceptor -> proposer
	matched := make(map[string]string, len(proposers)) // proposer -> acceptor

	for {
		progressed := false
		for _, p := range proposers {
			if _, ok := matched[p.id]; ok {
				continue
			}
			i := next[p.id]
			if i >= len(p.prefs) {
				continue
			}
			next[p.id] = i + 1
			progressed = true

			target := p.prefs[i]
			rank, ok := ranking[target]
			if !ok {
				continue
			}
			myRank, ranked := rank[p.id]
			if !ranked {
				// The acceptor does not rank this proposer at all.
				continue
			}

			current, taken := engaged[target]
			if !taken {
				engaged[target] = p.id
				matched[p.id] = target
				continue
			}
			if myRank < rank[current] {
				delete(matched, current)
				engaged[target] = p.id
				matched[p.id] = target
			}
		}
		if !progressed {
			return matched
		}
	}
}
