package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"amoura_server/matching"
	"amoura_server/models"
)

// SnapshotService loads one session's rows into an immutable snapshot
// for the matching engine. Rows are sorted by creation time (row ID as
// tie-break) so two loads of the same data enumerate identically.
type SnapshotService struct {
	Dynamo *DynamoService
}

func (ss *SnapshotService) LoadSnapshot(ctx context.Context, sessionID string) (*matching.Snapshot, error) {
	bySession := map[string]string{"sessionId": sessionID}

	var participants []models.Participant
	if err := ss.Dynamo.ScanEqual(ctx, models.ParticipantsTable, bySession, &participants); err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].CreatedAt != participants[j].CreatedAt {
			return participants[i].CreatedAt < participants[j].CreatedAt
		}
		return participants[i].ParticipantID < participants[j].ParticipantID
	})

	var items []models.AuctionItem
	if err := ss.Dynamo.ScanEqual(ctx, models.AuctionItemsTable, bySession, &items); err != nil {
		return nil, fmt.Errorf("failed to load auction items: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ItemID < items[j].ItemID
	})

	var bids []models.Bid
	if err := ss.Dynamo.ScanEqual(ctx, models.BidsTable, bySession, &bids); err != nil {
		return nil, fmt.Errorf("failed to load bids: %w", err)
	}
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].CreatedAt != bids[j].CreatedAt {
			return bids[i].CreatedAt < bids[j].CreatedAt
		}
		return bids[i].BidID < bids[j].BidID
	})

	var likes []models.FeedLike
	if err := ss.Dynamo.ScanEqual(ctx, models.FeedLikesTable, bySession, &likes); err != nil {
		return nil, fmt.Errorf("failed to load feed likes: %w", err)
	}
	sort.SliceStable(likes, func(i, j int) bool {
		if likes[i].CreatedAt != likes[j].CreatedAt {
			return likes[i].CreatedAt < likes[j].CreatedAt
		}
		return likes[i].LikeID < likes[j].LikeID
	})

	snap := &matching.Snapshot{}
	for _, p := range participants {
		snap.Participants = append(snap.Participants, matching.Participant{
			ID:     p.ParticipantID,
			Gender: p.Gender,
		})
	}
	for _, it := range items {
		snap.Items = append(snap.Items, matching.Item{
			ID:    it.ItemID,
			Title: it.Title,
		})
	}
	for _, b := range bids {
		snap.Bids = append(snap.Bids, matching.Bid{
			ParticipantID: b.ParticipantID,
			ItemID:        b.ItemID,
			Amount:        b.Amount,
			CreatedAt:     parseCreatedAt(b.CreatedAt),
		})
	}
	for _, l := range likes {
		snap.Likes = append(snap.Likes, matching.Like{
			FromID:    l.FromParticipantID,
			ToID:      l.ToParticipantID,
			CreatedAt: parseCreatedAt(l.CreatedAt),
		})
	}
	return snap, nil
}

// parseCreatedAt is forgiving: an unparseable timestamp degrades to the
// zero time rather than failing the whole finalize run.
func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
