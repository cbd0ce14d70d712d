package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"amoura_server/models"
)

// DefaultBalance is the auction budget every participant starts with.
const DefaultBalance = 1000

var ErrParticipantNotFound = errors.New("participant not found")

// ParticipantService handles registration and lookup of attendees.
type ParticipantService struct {
	Dynamo *DynamoService
}

// Register creates a participant with the default auction balance.
func (ps *ParticipantService) Register(ctx context.Context, sessionID, name, gender string) (*models.Participant, error) {
	participant := models.Participant{
		ParticipantID: uuid.NewString(),
		Name:          name,
		Gender:        gender,
		SessionID:     sessionID,
		Balance:       DefaultBalance,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := ps.Dynamo.PutItem(ctx, models.ParticipantsTable, participant); err != nil {
		return nil, fmt.Errorf("failed to register participant: %w", err)
	}
	return &participant, nil
}

func (ps *ParticipantService) Get(ctx context.Context, participantID string) (*models.Participant, error) {
	raw, err := ps.Dynamo.GetItem(ctx, models.ParticipantsTable, map[string]types.AttributeValue{
		"participantId": &types.AttributeValueMemberS{Value: participantID},
	})
	if err != nil {
		return nil, ErrParticipantNotFound
	}
	var participant models.Participant
	if err := unmarshalMap(raw, &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}
	return &participant, nil
}

// List returns the session's participants in registration order.
func (ps *ParticipantService) List(ctx context.Context, sessionID string) ([]models.Participant, error) {
	var participants []models.Participant
	if err := ps.Dynamo.ScanEqual(ctx, models.ParticipantsTable, map[string]string{"sessionId": sessionID}, &participants); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].CreatedAt != participants[j].CreatedAt {
			return participants[i].CreatedAt < participants[j].CreatedAt
		}
		return participants[i].ParticipantID < participants[j].ParticipantID
	})
	return participants, nil
}
