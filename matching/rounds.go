package matching

import "sort"

// roundPair is one pairing produced by one matching round, recorded
// from the proposer's side.
type roundPair struct {
	proposer string
	acceptor string
	round    int
}

// runRounds runs deferred acceptance once per round, excluding pairs
// consumed in earlier rounds, so every participant gets a distinct
// partner each round. Output order is deterministic: rounds ascending,
// proposers in snapshot order within a round.
func runRounds(pairs pairTable, proposers, acceptors []Participant, rounds int) []roundPair {
	used := make(map[pairKey]bool)
	var out []roundPair

	for round := 1; round <= rounds; round++ {
		pPrefs := buildPreferences(proposers, acceptors, pairs, used)
		aPrefs := buildPreferences(acceptors, proposers, pairs, used)

		matchedPairs := galeShapley(pPrefs, aPrefs)

		for _, p := range proposers {
			partner, ok := matchedPairs[p.ID]
			if !ok {
				continue
			}
			used[pairKey{p.ID, partner}] = true
			used[pairKey{partner, p.ID}] = true
			out = append(out, roundPair{proposer: p.ID, acceptor: partner, round: round})
		}
	}
	return out
}

// buildPreferences builds each side member's candidate list, sorted by
// descending raw score. The stable sort preserves candidate
// enumeration order on ties, which fixes the tie-break rule.
func buildPreferences(side, candidates []Participant, pairs pairTable, used map[pairKey]bool) []preference {
	prefs := make([]preference, 0, len(side))
	for _, s := range side {
		eligible := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if used[pairKey{s.ID, c.ID}] {
				continue
			}
			eligible = append(eligible, c.ID)
		}
		sort.SliceStable(eligible, func(i, j int) bool {
			return pairs[pairKey{s.ID, eligible[i]}].Raw > pairs[pairKey{s.ID, eligible[j]}].Raw
		})
		prefs = append(prefs, preference{id: s.ID, prefs: eligible})
	}
	return prefs
}
