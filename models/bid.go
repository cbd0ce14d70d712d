package models

// Bid is one weighted expression of interest in an auction item.
// Bids are append-only; totals per (participant, item) are summed at
// match time.
type Bid struct {
	BidID         string `dynamodbav:"bidId" json:"bidId"`
	ItemID        string `dynamodbav:"itemId" json:"itemId"`
	ParticipantID string `dynamodbav:"participantId" json:"participantId"`
	SessionID     string `dynamodbav:"sessionId" json:"sessionId"`
	Amount        int64  `dynamodbav:"amount" json:"amount"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// BidsTable is the DynamoDB table name for bid history
const BidsTable = "Bids"
