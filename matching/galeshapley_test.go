package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaleShapleyContestedAcceptor(t *testing.T) {
	// Both proposers want a1 first; a1 prefers p2, so p1 is bumped to a2.
	proposers := []preference{
		{id: "p1", prefs: []string{"a1", "a2"}},
		{id: "p2", prefs: []string{"a1", "a2"}},
	}
	acceptors := []preference{
		{id: "a1", prefs: []string{"p2", "p1"}},
		{id: "a2", prefs: []string{"p1", "p2"}},
	}

	matched := galeShapley(proposers, acceptors)

	require.Equal(t, "a2", matched["p1"])
	require.Equal(t, "a1", matched["p2"])
}

func TestGaleShapleyDisplacement(t *testing.T) {
	// p1 gets a1 first, then p2 arrives and a1 prefers p2: p1 must be
	// freed and continue down its list.
	proposers := []preference{
		{id: "p1", prefs: []string{"a1", "a2"}},
		{id: "p2", prefs: []string{"a2", "a1"}},
		{id: "p3", prefs: []string{"a1", "a3"}},
	}
	acceptors := []preference{
		{id: "a1", prefs: []string{"p3", "p1", "p2"}},
		{id: "a2", prefs: []string{"p1", "p2", "p3"}},
		{id: "a3", prefs: []string{"p1", "p2", "p3"}},
	}

	matched := galeShapley(proposers, acceptors)

	assert.Equal(t, "a2", matched["p1"])
	assert.Equal(t, "a1", matched["p3"])
	// p2 loses a2 to p1, is rejected by a1, and never listed a3:
	// it exhausts its list and stays unmatched.
	_, ok := matched["p2"]
	assert.False(t, ok)
}

func TestGaleShapleyUnevenGroupsLeaveUnmatched(t *testing.T) {
	proposers := []preference{
		{id: "p1", prefs: []string{"a1"}},
		{id: "p2", prefs: []string{"a1"}},
	}
	acceptors := []preference{
		{id: "a1", prefs: []string{"p1", "p2"}},
	}

	matched := galeShapley(proposers, acceptors)

	require.Len(t, matched, 1)
	assert.Equal(t, "a1", matched["p1"])
}

func TestGaleShapleyEmptyPreferences(t *testing.T) {
	matched := galeShapley(
		[]preference{{id: "p1"}},
		[]preference{{id: "a1"}},
	)
	assert.Empty(t, matched)
}

func TestGaleShapleyStability(t *testing.T) {
	// No proposer/acceptor pair may both prefer each other over their
	// assigned partners.
	proposers := []preference{
		{id: "p1", prefs: []string{"a2", "a1", "a3"}},
		{id: "p2", prefs: []string{"a1", "a3", "a2"}},
		{id: "p3", prefs: []string{"a1", "a2", "a3"}},
	}
	acceptors := []preference{
		{id: "a1", prefs: []string{"p1", "p3", "p2"}},
		{id: "a2", prefs: []string{"p3", "p1", "p2"}},
		{id: "a3", prefs: []string{"p2", "p3", "p1"}},
	}

	matched := galeShapley(proposers, acceptors)
	require.Len(t, matched, 3)

	rankOf := func(list []string, id string) int {
		for i, v := range list {
			if v == id {
				return i
			}
		}
		return len(list)
	}
	engaged := map[string]string{}
	for p, a := range matched {
		engaged[a] = p
	}
	for _, p := range proposers {
		for _, a := range acceptors {
			pRank := rankOf(p.prefs, a.id)
			if pRank >= rankOf(p.prefs, matched[p.id]) {
				continue
			}
			// p prefers a over its partner; a must not prefer p back.
			aRank := rankOf(a.prefs, p.id)
			assert.GreaterOrEqual(t, aRank, rankOf(a.prefs, engaged[a.id]),
				"blocking pair %s-%s", p.id, a.id)
		}
	}
}

func TestRunRoundsDistinctPartners(t *testing.T) {
	females := []Participant{{ID: "f1"}, {ID: "f2"}, {ID: "f3"}, {ID: "f4"}}
	males := []Participant{{ID: "m1"}, {ID: "m2"}, {ID: "m3"}, {ID: "m4"}}

	pairs := make(pairTable)
	for _, f := range females {
		for _, m := range males {
			pairs[pairKey{f.ID, m.ID}] = &PairScore{From: f.ID, To: m.ID}
			pairs[pairKey{m.ID, f.ID}] = &PairScore{From: m.ID, To: f.ID}
		}
	}

	out := runRounds(pairs, females, males, 4)

	require.Len(t, out, 16)
	partners := map[string]map[string]bool{}
	perRound := map[int]map[string]bool{}
	for _, rp := range out {
		for _, pair := range [][2]string{{rp.proposer, rp.acceptor}, {rp.acceptor, rp.proposer}} {
			if partners[pair[0]] == nil {
				partners[pair[0]] = map[string]bool{}
			}
			require.False(t, partners[pair[0]][pair[1]],
				"%s paired with %s twice", pair[0], pair[1])
			partners[pair[0]][pair[1]] = true

			if perRound[rp.round] == nil {
				perRound[rp.round] = map[string]bool{}
			}
			require.False(t, perRound[rp.round][pair[0]],
				"%s appears twice in round %d", pair[0], rp.round)
			perRound[rp.round][pair[0]] = true
		}
	}
	for id, set := range partners {
		assert.Len(t, set, 4, "participant %s", id)
	}
}

func TestRunRoundsDeterministicTieBreak(t *testing.T) {
	females := []Participant{{ID: "f1"}, {ID: "f2"}}
	males := []Participant{{ID: "m1"}, {ID: "m2"}}

	pairs := make(pairTable)
	for _, f := range females {
		for _, m := range males {
			pairs[pairKey{f.ID, m.ID}] = &PairScore{}
			pairs[pairKey{m.ID, f.ID}] = &PairScore{}
		}
	}

	// All raw scores tie: enumeration order decides, every run.
	first := runRounds(pairs, females, males, 2)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, runRounds(pairs, females, males, 2))
	}
	require.Equal(t, []roundPair{
		{proposer: "f1", acceptor: "m1", round: 1},
		{proposer: "f2", acceptor: "m2", round: 1},
		{proposer: "f1", acceptor: "m2", round: 2},
		{proposer: "f2", acceptor: "m1", round: 2},
	}, first)
}
