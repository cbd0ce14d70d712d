package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"amoura_server/matching"
	"amoura_server/models"
)

// MatchService finalizes and serves matches for a session.
type MatchService struct {
	Dynamo   *DynamoService
	Snapshot *SnapshotService
	Session  *SessionService
}

// FinalizeSummary is what the admin sees after a finalize run.
type FinalizeSummary struct {
	SessionID           string `json:"sessionId"`
	MatchesCreated      int    `json:"matchesCreated"`
	Rounds              int    `json:"rounds"`
	MaxHearts           int    `json:"maxHearts"`
	PerGroupCount       int    `json:"perGroupCount"`
	SkippedBids         int    `json:"skippedBids"`
	SkippedLikes        int    `json:"skippedLikes"`
	SkippedParticipants int    `json:"skippedParticipants"`
}

// FinalizeMatches loads the session snapshot, runs the matching engine,
// replaces any previously finalized matches of the session, and
// publishes the heart budget used by the run.
//
// Re-running is safe: the result depends only on the stored rows, and
// prior matches are deleted before the new set is written.
func (ms *MatchService) FinalizeMatches(ctx context.Context, sessionID string) (*FinalizeSummary, error) {
	snap, err := ms.Snapshot.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	result, err := matching.Compute(*snap, matching.DefaultConfig())
	if err != nil {
		return nil, err
	}
	log.Printf("Finalize for session %s: %d matches over %d rounds (skipped %d bids, %d likes, %d participants)",
		sessionID, len(result.Matches), result.Rounds,
		result.SkippedBids, result.SkippedLikes, result.SkippedParticipants)

	if err := ms.deleteSessionMatches(ctx, sessionID); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var writes []types.WriteRequest
	for _, m := range result.Matches {
		record := models.Match{
			MatchID:            uuid.NewString(),
			SessionID:          sessionID,
			Participant1ID:     m.Participant1ID,
			Participant2ID:     m.Participant2ID,
			Round:              m.Round,
			CompatibilityScore: m.CompatibilityScore,
			Evidence: models.MatchEvidence{
				AuctionScore:            m.Evidence.AuctionScore,
				FeedScore:               m.Evidence.FeedScore,
				IsMutual:                m.Evidence.IsMutual,
				CommonItems:             m.Evidence.CommonItems,
				RarestCommonItem:        m.Evidence.RarestCommonItem,
				RarestCommonItemBidders: m.Evidence.RarestCommonItemBidders,
				TotalParticipants:       m.Evidence.TotalParticipants,
				PartnerTopItem:          m.Evidence.PartnerTopItem,
			},
			CreatedAt: now,
		}
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal match record: %w", err)
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	if len(writes) > 0 {
		if err := ms.Dynamo.BatchWriteItems(ctx, models.MatchesTable, writes); err != nil {
			return nil, err
		}
	}

	if result.MaxHearts > 0 {
		if err := ms.Session.PutSetting(ctx, models.SettingMaxHearts, strconv.Itoa(result.MaxHearts)); err != nil {
			return nil, fmt.Errorf("failed to publish heart budget: %w", err)
		}
	}

	return &FinalizeSummary{
		SessionID:           sessionID,
		MatchesCreated:      len(result.Matches),
		Rounds:              result.Rounds,
		MaxHearts:           result.MaxHearts,
		PerGroupCount:       result.PerGroupCount,
		SkippedBids:         result.SkippedBids,
		SkippedLikes:        result.SkippedLikes,
		SkippedParticipants: result.SkippedParticipants,
	}, nil
}

func (ms *MatchService) deleteSessionMatches(ctx context.Context, sessionID string) error {
	var existing []models.Match
	if err := ms.Dynamo.ScanEqual(ctx, models.MatchesTable, map[string]string{"sessionId": sessionID}, &existing); err != nil {
		return fmt.Errorf("failed to load existing matches: %w", err)
	}
	if len(existing) == 0 {
		return nil
	}

	var deletes []types.WriteRequest
	for _, m := range existing {
		deletes = append(deletes, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"matchId": &types.AttributeValueMemberS{Value: m.MatchID},
				},
			},
		})
	}
	log.Printf("Replacing %d existing matches for session %s", len(deletes), sessionID)
	return ms.Dynamo.BatchWriteItems(ctx, models.MatchesTable, deletes)
}

// GetMatchesForParticipant returns the participant's matches for a
// session, ordered by round.
func (ms *MatchService) GetMatchesForParticipant(ctx context.Context, sessionID, participantID string) ([]models.Match, error) {
	var all []models.Match
	if err := ms.Dynamo.ScanEqual(ctx, models.MatchesTable, map[string]string{"sessionId": sessionID}, &all); err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	var mine []models.Match
	for _, m := range all {
		if m.Participant1ID == participantID || m.Participant2ID == participantID {
			mine = append(mine, m)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].Round < mine[j].Round })
	return mine, nil
}

// GetSessionMatches returns every finalized match of the session,
// ordered by round.
func (ms *MatchService) GetSessionMatches(ctx context.Context, sessionID string) ([]models.Match, error) {
	var all []models.Match
	if err := ms.Dynamo.ScanEqual(ctx, models.MatchesTable, map[string]string{"sessionId": sessionID}, &all); err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Round < all[j].Round })
	return all, nil
}
