package matching

// Config holds every tunable of the scoring and banding pipeline.
// DefaultConfig preserves the values the event has been run with; they
// are subject to product tuning, so nothing outside this struct should
// hard-code them.
type Config struct {
	// Auction/value-alignment component ceiling (out of 100).
	AuctionWeight float64
	// Feed-affinity sub-weights: likes given count more than received.
	FeedGivenWeight    float64
	FeedReceivedWeight float64

	// Scarcity bonus: items bid on by at most TightCut (LooseCut) of
	// all participants get their similarity ratio multiplied.
	ScarcityTightCut   float64
	ScarcityTightBoost float64
	ScarcityLooseCut   float64
	ScarcityLooseBoost float64

	// Mutual-like multiplier, keyed on min(given, received)/H.
	MutualHighCut   float64
	MutualHighBoost float64
	MutualMidCut    float64
	MutualMidBoost  float64
	MutualBaseBoost float64

	// Dynamic like cap H = max(HeartBase, round(HeartScale*sqrt(N))).
	HeartBase  int
	HeartScale float64

	// Maximum number of stable-matching rounds.
	MaxRounds int

	// Rank band endpoints for ranks 1-4, interpolated between the
	// base (small event) and max (large event) tables by
	// clamp((N-4)/16, 0, 1).
	BandBaseLow  [4]int
	BandBaseHigh [4]int
	BandMaxLow   [4]int
	BandMaxHigh  [4]int

	// Evidence scaling: band results are pulled toward EvidenceFloor
	// proportionally to min(1, raw/EvidenceScale).
	EvidenceFloor  float64
	EvidenceScale  float64
	// Pairs with no auction overlap and no mutual like score
	// NoEvidenceBase + min(1, feed/FeedOnlyScale) * NoEvidenceSpan.
	NoEvidenceBase float64
	NoEvidenceSpan float64
	FeedOnlyScale  float64
}

// DefaultConfig returns the tuned production values.
func DefaultConfig() Config {
	return Config{
		AuctionWeight:      75,
		FeedGivenWeight:    18,
		FeedReceivedWeight: 7,

		ScarcityTightCut:   0.20,
		ScarcityTightBoost: 1.3,
		ScarcityLooseCut:   0.35,
		ScarcityLooseBoost: 1.15,

		MutualHighCut:   0.6,
		MutualHighBoost: 1.3,
		MutualMidCut:    0.4,
		MutualMidBoost:  1.2,
		MutualBaseBoost: 1.1,

		HeartBase:  3,
		HeartScale: 2.5,

		MaxRounds: 4,

		BandBaseLow:  [4]int{90, 80, 70, 55},
		BandBaseHigh: [4]int{95, 85, 75, 65},
		BandMaxLow:   [4]int{95, 88, 81, 74},
		BandMaxHigh:  [4]int{99, 93, 86, 79},

		EvidenceFloor:  35,
		EvidenceScale:  75,
		NoEvidenceBase: 25,
		NoEvidenceSpan: 15,
		FeedOnlyScale:  25,
	}
}
