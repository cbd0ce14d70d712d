package models

// Participant defines the structure for event participants
type Participant struct {
	ParticipantID string `dynamodbav:"participantId" json:"participantId"`
	Name          string `dynamodbav:"name,omitempty" json:"name,omitempty"`
	Gender        string `dynamodbav:"gender" json:"gender"`
	SessionID     string `dynamodbav:"sessionId" json:"sessionId"`
	Balance       int64  `dynamodbav:"balance" json:"balance"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// ParticipantsTable is the DynamoDB table name for participants
const ParticipantsTable = "Participants"
