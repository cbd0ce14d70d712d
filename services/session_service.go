package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"amoura_server/models"
	"amoura_server/utils"
)

// SessionService manages the key/value event settings: the active
// session, the current phase, and the heart budget published at
// finalize time.
type SessionService struct {
	Dynamo *DynamoService
}

var validPhases = map[string]bool{
	models.PhaseRegistration: true,
	models.PhaseAuction:      true,
	models.PhaseFeed:         true,
	models.PhaseMatching:     true,
	models.PhaseReport:       true,
}

// IsValidPhase reports whether name is a known event phase.
func IsValidPhase(name string) bool {
	return validPhases[name]
}

func (ss *SessionService) PutSetting(ctx context.Context, key, value string) error {
	return ss.Dynamo.PutItem(ctx, models.SettingsTable, models.Setting{Key: key, Value: value})
}

func (ss *SessionService) GetSetting(ctx context.Context, key string) (string, error) {
	item, err := ss.Dynamo.GetItem(ctx, models.SettingsTable, map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	})
	if err != nil {
		return "", fmt.Errorf("failed to read setting '%s': %w", key, err)
	}
	return utils.ExtractString(item, "value"), nil
}

// CurrentSession returns the active session ID, or "" when none is set.
func (ss *SessionService) CurrentSession(ctx context.Context) string {
	value, err := ss.GetSetting(ctx, models.SettingCurrentSession)
	if err != nil {
		return ""
	}
	return value
}

// MaxHearts returns the published heart budget, or fallback when the
// setting is missing or malformed.
func (ss *SessionService) MaxHearts(ctx context.Context, fallback int) int {
	value, err := ss.GetSetting(ctx, models.SettingMaxHearts)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
