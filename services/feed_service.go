package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"amoura_server/models"
)

// DefaultMaxHearts is the like budget used before a finalize run has
// published a session-specific one.
const DefaultMaxHearts = 5

var (
	ErrSelfLike            = errors.New("cannot like your own photo")
	ErrHeartBudgetExceeded = errors.New("heart budget exhausted")
)

// FeedService records likes on the photo feed, enforcing the per-
// participant heart budget.
type FeedService struct {
	Dynamo  *DynamoService
	Session *SessionService
}

func (fs *FeedService) RecordLike(ctx context.Context, sessionID, fromID, toID, photoKey string) (*models.FeedLike, error) {
	if fromID == toID {
		return nil, ErrSelfLike
	}

	budget := fs.Session.MaxHearts(ctx, DefaultMaxHearts)
	given, err := fs.countLikesGiven(ctx, sessionID, fromID)
	if err != nil {
		return nil, err
	}
	if given >= budget {
		return nil, ErrHeartBudgetExceeded
	}

	like := models.FeedLike{
		LikeID:            uuid.NewString(),
		FromParticipantID: fromID,
		ToParticipantID:   toID,
		SessionID:         sessionID,
		PhotoKey:          photoKey,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if err := fs.Dynamo.PutItem(ctx, models.FeedLikesTable, like); err != nil {
		return nil, fmt.Errorf("failed to record like: %w", err)
	}
	return &like, nil
}

// HeartsRemaining reports how many likes the participant can still give.
func (fs *FeedService) HeartsRemaining(ctx context.Context, sessionID, participantID string) (int, error) {
	budget := fs.Session.MaxHearts(ctx, DefaultMaxHearts)
	given, err := fs.countLikesGiven(ctx, sessionID, participantID)
	if err != nil {
		return 0, err
	}
	remaining := budget - given
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (fs *FeedService) countLikesGiven(ctx context.Context, sessionID, participantID string) (int, error) {
	var likes []models.FeedLike
	err := fs.Dynamo.ScanEqual(ctx, models.FeedLikesTable, map[string]string{
		"sessionId":         sessionID,
		"fromParticipantId": participantID,
	}, &likes)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return len(likes), nil
}
