package models

// Setting is one key/value row of event-wide configuration.
type Setting struct {
	Key   string `dynamodbav:"key" json:"key"`
	Value string `dynamodbav:"value" json:"value"`
}

// SettingsTable is the DynamoDB table name for event settings
const SettingsTable = "Settings"

// Well-known setting keys
const (
	SettingCurrentSession = "current_session"
	SettingCurrentPhase   = "current_phase"
	SettingMaxHearts      = "max_hearts"
)
