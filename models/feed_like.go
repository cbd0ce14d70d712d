package models

// FeedLike is a directed like between two participants, optionally
// tied to a feed photo.
type FeedLike struct {
	LikeID            string `dynamodbav:"likeId" json:"likeId"`
	FromParticipantID string `dynamodbav:"fromParticipantId" json:"fromParticipantId"`
	ToParticipantID   string `dynamodbav:"toParticipantId" json:"toParticipantId"`
	SessionID         string `dynamodbav:"sessionId" json:"sessionId"`
	PhotoKey          string `dynamodbav:"photoKey,omitempty" json:"photoKey,omitempty"`
	CreatedAt         string `dynamodbav:"createdAt" json:"createdAt"`
}

// FeedLikesTable is the DynamoDB table name for feed likes
const FeedLikesTable = "FeedLikes"
