package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSumsBidsRegardlessOfOrder(t *testing.T) {
	items := []Item{{ID: "i1", Title: "Adventure"}, {ID: "i2", Title: "Stability"}}
	bids := []Bid{
		{ParticipantID: "p1", ItemID: "i1", Amount: 300},
		{ParticipantID: "p1", ItemID: "i1", Amount: 200},
		{ParticipantID: "p1", ItemID: "i2", Amount: 100},
		{ParticipantID: "p2", ItemID: "i1", Amount: 400},
	}
	reversed := []Bid{bids[3], bids[2], bids[1], bids[0]}

	a := aggregate(&Snapshot{Items: items, Bids: bids})
	b := aggregate(&Snapshot{Items: items, Bids: reversed})

	require.Equal(t, a.vectors, b.vectors)
	require.Equal(t, a.bidders, b.bidders)

	assert.Equal(t, int64(500), a.vectors["p1"]["i1"])
	assert.Equal(t, int64(100), a.vectors["p1"]["i2"])
	assert.Equal(t, 2, a.bidders["i1"])
	assert.Equal(t, 1, a.bidders["i2"])
	assert.Equal(t, 2, a.biddersByTitle["Adventure"])
}

func TestAggregateSkipsMalformedRows(t *testing.T) {
	items := []Item{{ID: "i1", Title: "Adventure"}}
	snap := Snapshot{
		Items: items,
		Bids: []Bid{
			{ParticipantID: "", ItemID: "i1", Amount: 100},
			{ParticipantID: "p1", ItemID: "", Amount: 100},
			{ParticipantID: "p1", ItemID: "i1", Amount: 0},
			{ParticipantID: "p1", ItemID: "ghost", Amount: 100},
			{ParticipantID: "p1", ItemID: "i1", Amount: 100},
		},
		Likes: []Like{
			{FromID: "p1", ToID: "p1"},
			{FromID: "", ToID: "p2"},
			{FromID: "p1", ToID: "p2"},
		},
	}

	sig := aggregate(&snap)

	assert.Equal(t, 4, sig.skippedBids)
	assert.Equal(t, 2, sig.skippedLikes)
	// The valid rows still land.
	assert.Equal(t, int64(100), sig.vectors["p1"]["i1"])
	assert.Equal(t, 1, sig.likeCount("p1", "p2"))
}

func TestAggregateParticipantWithoutBids(t *testing.T) {
	sig := aggregate(&Snapshot{Items: []Item{{ID: "i1", Title: "Adventure"}}})

	_, ok := sig.vectors["p1"]
	assert.False(t, ok)
	assert.Equal(t, 0, sig.bidders["i1"])
}

func TestAggregateFirstActionIsEarliest(t *testing.T) {
	t0 := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	snap := Snapshot{
		Items: []Item{{ID: "i1", Title: "Adventure"}},
		Bids: []Bid{
			{ParticipantID: "p1", ItemID: "i1", Amount: 100, CreatedAt: t0.Add(10 * time.Minute)},
		},
		Likes: []Like{
			{FromID: "p1", ToID: "p2", CreatedAt: t0},
			{FromID: "p2", ToID: "p1", CreatedAt: t0.Add(5 * time.Minute)},
		},
	}

	sig := aggregate(&snap)

	assert.Equal(t, t0, sig.firstAction["p1"])
	assert.Equal(t, t0.Add(5*time.Minute), sig.firstAction["p2"])
	assert.Equal(t, t0, sig.firstOf("p1", "p2"))
	assert.True(t, sig.firstOf("p3", "p4").IsZero())
}

func TestAggregateTopItems(t *testing.T) {
	items := []Item{
		{ID: "i1", Title: "Adventure"},
		{ID: "i2", Title: "Stability"},
		{ID: "i3", Title: "Freedom"},
		{ID: "i4", Title: "Success"},
	}
	snap := Snapshot{
		Items: items,
		Bids: []Bid{
			{ParticipantID: "p1", ItemID: "i2", Amount: 500},
			{ParticipantID: "p1", ItemID: "i1", Amount: 300},
			{ParticipantID: "p1", ItemID: "i3", Amount: 300},
			{ParticipantID: "p1", ItemID: "i4", Amount: 100},
		},
	}

	sig := aggregate(&snap)

	// Highest total first; equal totals fall back to item order.
	assert.Equal(t, []string{"Stability", "Adventure", "Freedom"}, sig.topItems["p1"])
}
