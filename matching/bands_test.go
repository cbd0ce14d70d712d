package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBandSmallEventUsesBaseTable(t *testing.T) {
	cfg := DefaultConfig()

	low, high := scoreBand(1, 4, cfg)
	assert.Equal(t, 90.0, low)
	assert.Equal(t, 95.0, high)

	low, high = scoreBand(4, 4, cfg)
	assert.Equal(t, 55.0, low)
	assert.Equal(t, 65.0, high)
}

func TestScoreBandLargeEventUsesMaxTable(t *testing.T) {
	cfg := DefaultConfig()

	low, high := scoreBand(1, 20, cfg)
	assert.Equal(t, 95.0, low)
	assert.Equal(t, 99.0, high)

	// Values past the interpolation ceiling clamp at the max table.
	low2, high2 := scoreBand(1, 50, cfg)
	assert.Equal(t, low, low2)
	assert.Equal(t, high, high2)
}

func TestScoreBandInterpolatesBetweenTables(t *testing.T) {
	cfg := DefaultConfig()

	// N=12 puts nFactor at exactly 0.5.
	low, high := scoreBand(2, 12, cfg)
	assert.Equal(t, 84.0, low)
	assert.Equal(t, 89.0, high)
}

func TestScoreBandMonotonicAcrossRanks(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{2, 4, 8, 12, 16, 20, 40} {
		prevLow, prevHigh := scoreBand(1, n, cfg)
		for rank := 2; rank <= 4; rank++ {
			low, high := scoreBand(rank, n, cfg)
			require.LessOrEqual(t, low, prevLow, "rank %d low at n=%d", rank, n)
			require.LessOrEqual(t, high, prevHigh, "rank %d high at n=%d", rank, n)
			prevLow, prevHigh = low, high
		}
	}
}

func TestScoreBandRankPastFourReusesLastBand(t *testing.T) {
	cfg := DefaultConfig()
	low4, high4 := scoreBand(4, 10, cfg)
	low9, high9 := scoreBand(9, 10, cfg)
	assert.Equal(t, low4, low9)
	assert.Equal(t, high4, high9)
}

func TestNormalizeEvidenceFloorCapsNoEvidencePairs(t *testing.T) {
	// One-directional likes only: no auction overlap, no mutual
	// interest. The score must come from the low fixed floor, never
	// the rank band.
	cfg := DefaultConfig()
	snap := Snapshot{
		Participants: []Participant{
			{ID: "f1", Gender: "female"},
			{ID: "m1", Gender: "male"},
		},
		Likes: []Like{
			{FromID: "f1", ToID: "m1"},
			{FromID: "f1", ToID: "m1"},
		},
	}

	res, err := Compute(snap, cfg)
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)

	m := res.Matches[0]
	assert.Equal(t, 0, m.Evidence.AuctionScore)
	assert.False(t, m.Evidence.IsMutual)
	// H=3 here: feed = 18*(2/3) = 12, so 25 + 15*(12/25) = 32.2.
	assert.Equal(t, 32, m.CompatibilityScore)
	assert.LessOrEqual(t, m.CompatibilityScore, 40)
}

func TestNormalizeRarestCommonItem(t *testing.T) {
	cfg := DefaultConfig()
	snap := Snapshot{
		Participants: []Participant{
			{ID: "f1", Gender: "female"}, {ID: "f2", Gender: "female"},
			{ID: "f3", Gender: "female"},
			{ID: "m1", Gender: "male"}, {ID: "m2", Gender: "male"},
			{ID: "m3", Gender: "male"},
		},
		Items: []Item{
			{ID: "i1", Title: "Adventure"},
			{ID: "i2", Title: "Stability"},
		},
		Bids: []Bid{
			// Everyone bids on Stability; only f1/m1 bid on Adventure.
			{ParticipantID: "f1", ItemID: "i1", Amount: 300},
			{ParticipantID: "m1", ItemID: "i1", Amount: 300},
			{ParticipantID: "f1", ItemID: "i2", Amount: 200},
			{ParticipantID: "f2", ItemID: "i2", Amount: 200},
			{ParticipantID: "f3", ItemID: "i2", Amount: 200},
			{ParticipantID: "m1", ItemID: "i2", Amount: 200},
			{ParticipantID: "m2", ItemID: "i2", Amount: 200},
			{ParticipantID: "m3", ItemID: "i2", Amount: 200},
		},
	}

	res, err := Compute(snap, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.Matches)

	var found bool
	for _, m := range res.Matches {
		if m.Participant1ID == "f1" && m.Participant2ID == "m1" {
			found = true
			assert.Equal(t, []string{"Adventure", "Stability"}, m.Evidence.CommonItems)
			assert.Equal(t, "Adventure", m.Evidence.RarestCommonItem)
			assert.Equal(t, 2, m.Evidence.RarestCommonItemBidders)
			assert.Equal(t, 6, m.Evidence.TotalParticipants)
		}
	}
	require.True(t, found, "f1-m1 pairing missing")
}
