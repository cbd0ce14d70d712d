package models

// AuctionItem is a value proposition participants bid on during the
// auction phase.
type AuctionItem struct {
	ItemID          string `dynamodbav:"itemId" json:"itemId"`
	SessionID       string `dynamodbav:"sessionId" json:"sessionId"`
	Title           string `dynamodbav:"title" json:"title"`
	Status          string `dynamodbav:"status" json:"status"` // active, closed
	CurrentBid      int64  `dynamodbav:"currentBid" json:"currentBid"`
	HighestBidderID string `dynamodbav:"highestBidderId,omitempty" json:"highestBidderId,omitempty"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}

// AuctionItemsTable is the DynamoDB table name for auction items
const AuctionItemsTable = "AuctionItems"
