// Package matching computes finalized compatibility matches for one
// event session from auction bids and feed likes.
//
// The package is a pure batch computation: it takes an immutable
// point-in-time Snapshot of one session's rows, runs a fixed number of
// Gale-Shapley rounds over pairwise compatibility scores, and returns
// the full set of Match records. It performs no I/O and is
// deterministic for identical input.
package matching

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Gender groups recognized by the engine.
const (
	GroupFemale = "female"
	GroupMale   = "male"
)

// ErrNoGenderGroups is returned when participants exist but none of
// them carries a classifiable gender. It is distinguishable from a
// legitimate empty result.
var ErrNoGenderGroups = errors.New("matching: participants cannot be classified into gender groups")

// Participant is one event attendee.
type Participant struct {
	ID     string
	Gender string
}

// Item is one auction value proposition.
type Item struct {
	ID    string
	Title string
}

// Bid is one weighted expression of interest in an item. Multiple
// bids per (participant, item) are summed.
type Bid struct {
	ParticipantID string
	ItemID        string
	Amount        int64
	CreatedAt     time.Time
}

// Like is a directed expression of interest between two participants.
type Like struct {
	FromID    string
	ToID      string
	CreatedAt time.Time
}

// Snapshot is the immutable input of one matching run, scoped to one
// session. Gathering it is the caller's responsibility.
type Snapshot struct {
	Participants []Participant
	Items        []Item
	Bids         []Bid
	Likes        []Like
}

// Evidence explains one match: component scores and presentation
// metadata, taken from the first participant's perspective.
type Evidence struct {
	AuctionScore            int
	FeedScore               int
	IsMutual                bool
	CommonItems             []string
	RarestCommonItem        string
	RarestCommonItemBidders int
	TotalParticipants       int
	PartnerTopItem          string
}

// Match is one finalized pairing. Participant1 is always a member of
// the proposing group; the pairing itself is symmetric.
type Match struct {
	Participant1ID     string
	Participant2ID     string
	Round              int
	CompatibilityScore int
	Evidence           Evidence
}

// Result is the output of one matching run, including diagnostics
// about input rows that were skipped during aggregation.
type Result struct {
	Matches             []Match
	Rounds              int
	MaxHearts           int
	PerGroupCount       int
	SkippedBids         int
	SkippedLikes        int
	SkippedParticipants int
}

// Compute runs the full pipeline: aggregate signals, score every
// opposite-group pair, run round-robin stable matching, and rescale
// raw scores into presentation bands.
//
// An empty session yields an empty Result and no error. A session
// whose participants cannot be classified into gender groups at all
// yields ErrNoGenderGroups.
func Compute(snap Snapshot, cfg Config) (*Result, error) {
	if len(snap.Participants) == 0 {
		return &Result{}, nil
	}

	females, males, skippedParticipants := splitGroups(snap.Participants)
	if len(females) == 0 && len(males) == 0 {
		return nil, ErrNoGenderGroups
	}

	sig := aggregate(&snap)

	n := len(females)
	if len(males) < n {
		n = len(males)
	}
	maxHearts := heartCap(n, cfg)

	res := &Result{
		MaxHearts:           maxHearts,
		PerGroupCount:       n,
		SkippedBids:         sig.skippedBids,
		SkippedLikes:        sig.skippedLikes,
		SkippedParticipants: skippedParticipants,
	}
	if n == 0 {
		// One side of the event is empty; a legitimate empty result.
		return res, nil
	}

	pairs := scorePairs(&snap, sig, females, males, maxHearts, cfg)

	rounds := n
	if rounds > cfg.MaxRounds {
		rounds = cfg.MaxRounds
	}

	// The female group proposes; fixed for the whole run.
	raw := runRounds(pairs, females, males, rounds)

	res.Rounds = rounds
	res.Matches = normalize(raw, pairs, sig, n, len(snap.Participants), cfg)
	return res, nil
}

// heartCap returns the dynamic like cap H = max(base, round(scale*sqrt(N))).
func heartCap(n int, cfg Config) int {
	h := int(math.Round(cfg.HeartScale * math.Sqrt(float64(n))))
	if h < cfg.HeartBase {
		return cfg.HeartBase
	}
	return h
}

// splitGroups classifies participants into the two gender groups,
// preserving snapshot order. Rows with an unrecognized gender or a
// missing id are skipped and counted.
func splitGroups(participants []Participant) (females, males []Participant, skipped int) {
	for _, p := range participants {
		if p.ID == "" {
			skipped++
			continue
		}
		switch classifyGender(p.Gender) {
		case GroupFemale:
			females = append(females, p)
		case GroupMale:
			males = append(males, p)
		default:
			skipped++
		}
	}
	return females, males, skipped
}

func classifyGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "f", "female", "woman":
		return GroupFemale
	case "m", "male", "man":
		return GroupMale
	}
	return ""
}
