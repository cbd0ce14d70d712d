package models

// MatchEvidence carries the component scores and presentation metadata
// behind one finalized match.
type MatchEvidence struct {
	AuctionScore            int      `dynamodbav:"auctionScore" json:"auctionScore"`
	FeedScore               int      `dynamodbav:"feedScore" json:"feedScore"`
	IsMutual                bool     `dynamodbav:"isMutual" json:"isMutual"`
	CommonItems             []string `dynamodbav:"commonItems,omitempty" json:"commonItems,omitempty"`
	RarestCommonItem        string   `dynamodbav:"rarestCommonItem,omitempty" json:"rarestCommonItem,omitempty"`
	RarestCommonItemBidders int      `dynamodbav:"rarestCommonItemBidders" json:"rarestCommonItemBidders"`
	TotalParticipants       int      `dynamodbav:"totalParticipants" json:"totalParticipants"`
	PartnerTopItem          string   `dynamodbav:"partnerTopItem,omitempty" json:"partnerTopItem,omitempty"`
}

// Match is one finalized pairing for one round. A fresh finalize run
// replaces all Match rows of the session.
type Match struct {
	MatchID            string        `dynamodbav:"matchId" json:"matchId"`
	SessionID          string        `dynamodbav:"sessionId" json:"sessionId"`
	Participant1ID     string        `dynamodbav:"participant1Id" json:"participant1Id"`
	Participant2ID     string        `dynamodbav:"participant2Id" json:"participant2Id"`
	Round              int           `dynamodbav:"round" json:"round"`
	CompatibilityScore int           `dynamodbav:"compatibilityScore" json:"compatibilityScore"`
	Evidence           MatchEvidence `dynamodbav:"evidence" json:"evidence"`
	CreatedAt          string        `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for finalized matches
const MatchesTable = "Matches"
