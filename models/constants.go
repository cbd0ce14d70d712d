package models

// Gender groups used for opposite-group matching
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// Auction item statuses
const (
	ItemStatusActive = "active"
	ItemStatusClosed = "closed"
)

// Event phases
const (
	PhaseRegistration = "registration"
	PhaseAuction      = "auction"
	PhaseFeed         = "feed"
	PhaseMatching     = "matching"
	PhaseReport       = "report"
)
