package matching

import "math"

// scoreBand returns the [low, high] percentage interval for a rank,
// interpolated between the base (small event) and max (large event)
// tables by nFactor = clamp((n-4)/16, 0, 1). Band 1 dominates band 2
// and so on at both endpoints.
func scoreBand(rank, n int, cfg Config) (low, high float64) {
	idx := rank - 1
	if idx < 0 {
		idx = 0
	}
	if idx > 3 {
		idx = 3
	}
	nFactor := (float64(n) - 4) / 16
	if nFactor < 0 {
		nFactor = 0
	}
	if nFactor > 1 {
		nFactor = 1
	}
	low = math.Round(float64(cfg.BandBaseLow[idx]) + float64(cfg.BandMaxLow[idx]-cfg.BandBaseLow[idx])*nFactor)
	high = math.Round(float64(cfg.BandBaseHigh[idx]) + float64(cfg.BandMaxHigh[idx]-cfg.BandBaseHigh[idx])*nFactor)
	return low, high
}

// normalize rescales each pairing's raw score into its round's rank
// band, relative to the proposer's own raw score range, and applies
// the evidence floor. Raw scores are not comparable across
// participants, so standing is computed within each proposer's own
// result set; the floor keeps coincidental pairings from presenting
// false confidence.
func normalize(raw []roundPair, pairs pairTable, sig *signals, n, totalParticipants int, cfg Config) []Match {
	minRaw := make(map[string]float64)
	maxRaw := make(map[string]float64)
	for _, rp := range raw {
		r := pairs[pairKey{rp.proposer, rp.acceptor}].Raw
		lo, seen := minRaw[rp.proposer]
		if !seen || r < lo {
			minRaw[rp.proposer] = r
		}
		if hi, seen := maxRaw[rp.proposer]; !seen || r > hi {
			maxRaw[rp.proposer] = r
		}
	}

	matches := make([]Match, 0, len(raw))
	for _, rp := range raw {
		ps := pairs[pairKey{rp.proposer, rp.acceptor}]

		bandLow, bandHigh := scoreBand(rp.round, n, cfg)

		relative := 0.5
		if spread := maxRaw[rp.proposer] - minRaw[rp.proposer]; spread > 0 {
			relative = (ps.Raw - minRaw[rp.proposer]) / spread
		}
		rankScore := bandLow + relative*(bandHigh-bandLow)

		var score int
		if ps.Auction == 0 && !ps.Mutual {
			// No measurable basis: fixed low floor driven only by the
			// feed component.
			feedOnly := math.Min(1, ps.Feed/cfg.FeedOnlyScale)
			score = int(math.Round(cfg.NoEvidenceBase + feedOnly*cfg.NoEvidenceSpan))
		} else {
			evidence := math.Min(1, ps.Raw/cfg.EvidenceScale)
			score = int(math.Round(cfg.EvidenceFloor + (rankScore-cfg.EvidenceFloor)*evidence))
		}

		rarest, rarestCount := rarestCommonItem(ps, sig, totalParticipants)

		matches = append(matches, Match{
			Participant1ID:     rp.proposer,
			Participant2ID:     rp.acceptor,
			Round:              rp.round,
			CompatibilityScore: score,
			Evidence: Evidence{
				AuctionScore:            int(math.Round(ps.Auction)),
				FeedScore:               int(math.Round(ps.Feed)),
				IsMutual:                ps.Mutual,
				CommonItems:             ps.CommonItems,
				RarestCommonItem:        rarest,
				RarestCommonItemBidders: rarestCount,
				TotalParticipants:       totalParticipants,
				PartnerTopItem:          ps.PartnerTopItem,
			},
		})
	}
	return matches
}

// rarestCommonItem picks the common item with the smallest global
// bidder count. With no common items it falls back to the partner's
// top item as a conversation hook.
func rarestCommonItem(ps *PairScore, sig *signals, totalParticipants int) (string, int) {
	rarest := ps.PartnerTopItem
	if len(ps.CommonItems) > 0 {
		rarest = ps.CommonItems[0]
	}
	rarestCount := totalParticipants
	for _, title := range ps.CommonItems {
		count, ok := sig.biddersByTitle[title]
		if !ok {
			count = totalParticipants
		}
		if count < rarestCount {
			rarestCount = count
			rarest = title
		}
	}
	return rarest, rarestCount
}
