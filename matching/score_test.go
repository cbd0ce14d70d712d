package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenParticipants() []Participant {
	return []Participant{
		{ID: "f1", Gender: "female"}, {ID: "f2", Gender: "female"},
		{ID: "f3", Gender: "female"}, {ID: "f4", Gender: "female"},
		{ID: "f5", Gender: "female"},
		{ID: "m1", Gender: "male"}, {ID: "m2", Gender: "male"},
		{ID: "m3", Gender: "male"}, {ID: "m4", Gender: "male"},
		{ID: "m5", Gender: "male"},
	}
}

func TestScoreScarcityBonusExactValue(t *testing.T) {
	// Two of ten participants bid the same amount on one rare item:
	// similarity ratio 1.0 boosted by 1.3 before normalization.
	cfg := DefaultConfig()
	snap := Snapshot{
		Participants: tenParticipants(),
		Items:        []Item{{ID: "i1", Title: "Adventure"}},
		Bids: []Bid{
			{ParticipantID: "f1", ItemID: "i1", Amount: 500},
			{ParticipantID: "m1", ItemID: "i1", Amount: 500},
		},
	}
	sig := aggregate(&snap)

	ps := scoreOne("f1", "m1", &snap, sig, len(snap.Participants), 5, cfg)

	// 1.0 * 1.3, normalized by overlap 1, scaled to the 75-point ceiling.
	require.InDelta(t, 1.3*cfg.AuctionWeight, ps.Auction, 1e-9)
	assert.Equal(t, []string{"Adventure"}, ps.CommonItems)
	assert.False(t, ps.Mutual)
}

func TestScoreScarcityBoostBands(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 1.3, scarcityBoost(2, 10, cfg), 1e-9)  // 20%
	assert.InDelta(t, 1.15, scarcityBoost(3, 10, cfg), 1e-9) // 30%
	assert.InDelta(t, 1.0, scarcityBoost(4, 10, cfg), 1e-9)  // 40%
	assert.InDelta(t, 1.0, scarcityBoost(0, 0, cfg), 1e-9)   // degenerate
}

func TestScoreScarcityMonotonicInRarity(t *testing.T) {
	// Identical bid ratios: the rarer item must contribute at least as
	// much as the popular one.
	cfg := DefaultConfig()
	rare := scarcityBoost(2, 10, cfg)
	popular := scarcityBoost(8, 10, cfg)
	assert.GreaterOrEqual(t, rare, popular)
}

func TestScoreMutualBonusMidBand(t *testing.T) {
	// 5v5 event: H = round(2.5*sqrt(5)) = 6. Both directions at 3
	// likes puts min/H at exactly 0.5, the 1.2x band.
	cfg := DefaultConfig()
	snap := Snapshot{Participants: tenParticipants()}
	for i := 0; i < 3; i++ {
		snap.Likes = append(snap.Likes,
			Like{FromID: "f1", ToID: "m1"},
			Like{FromID: "m1", ToID: "f1"},
		)
	}
	sig := aggregate(&snap)

	maxHearts := heartCap(5, cfg)
	require.Equal(t, 6, maxHearts)

	ps := scoreOne("f1", "m1", &snap, sig, len(snap.Participants), maxHearts, cfg)

	require.True(t, ps.Mutual)
	feed := cfg.FeedGivenWeight*0.5 + cfg.FeedReceivedWeight*0.5
	require.InDelta(t, feed, ps.Feed, 1e-9)
	// 1.2x, not the 1.1x or 1.3x band.
	require.InDelta(t, feed*cfg.MutualMidBoost, ps.Raw, 1e-9)
}

func TestScoreZeroSignalPairIsValidZero(t *testing.T) {
	cfg := DefaultConfig()
	snap := Snapshot{Participants: tenParticipants()}
	sig := aggregate(&snap)

	ps := scoreOne("f1", "m1", &snap, sig, len(snap.Participants), 5, cfg)

	require.NotNil(t, ps)
	assert.Zero(t, ps.Raw)
	assert.Zero(t, ps.Auction)
	assert.Zero(t, ps.Feed)
	assert.False(t, ps.Mutual)
	assert.Empty(t, ps.CommonItems)
}

func TestScoreFeedCapsAtMaxHearts(t *testing.T) {
	cfg := DefaultConfig()
	snap := Snapshot{Participants: tenParticipants()}
	for i := 0; i < 20; i++ {
		snap.Likes = append(snap.Likes, Like{FromID: "f1", ToID: "m1"})
	}
	sig := aggregate(&snap)

	ps := scoreOne("f1", "m1", &snap, sig, len(snap.Participants), 6, cfg)

	// 20 likes given, capped at H=6: the given sub-score tops out.
	require.InDelta(t, cfg.FeedGivenWeight, ps.Feed, 1e-9)
	assert.False(t, ps.Mutual)
}

func TestScoreAuctionNormalizedBySmallerVector(t *testing.T) {
	cfg := DefaultConfig()
	snap := Snapshot{
		Participants: tenParticipants(),
		Items: []Item{
			{ID: "i1", Title: "Adventure"},
			{ID: "i2", Title: "Stability"},
			{ID: "i3", Title: "Freedom"},
		},
		Bids: []Bid{
			// f1 spreads over three items, m1 bids on one.
			{ParticipantID: "f1", ItemID: "i1", Amount: 400},
			{ParticipantID: "f1", ItemID: "i2", Amount: 400},
			{ParticipantID: "f1", ItemID: "i3", Amount: 400},
			{ParticipantID: "m1", ItemID: "i1", Amount: 400},
			// Widen i1's bidder pool past the scarcity cuts.
			{ParticipantID: "f2", ItemID: "i1", Amount: 100},
			{ParticipantID: "f3", ItemID: "i1", Amount: 100},
			{ParticipantID: "m2", ItemID: "i1", Amount: 100},
			{ParticipantID: "m3", ItemID: "i1", Amount: 100},
		},
	}
	sig := aggregate(&snap)

	ps := scoreOne("f1", "m1", &snap, sig, len(snap.Participants), 5, cfg)

	// One common item at ratio 1.0, no scarcity boost (6 of 10 bid on
	// i1), normalized by m1's single-item vector.
	require.InDelta(t, cfg.AuctionWeight, ps.Auction, 1e-9)
}
