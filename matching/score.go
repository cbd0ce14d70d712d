package matching

import "time"

// PairScore is the raw directed compatibility of one opposite-group
// pair, computed fresh each run.
type PairScore struct {
	From string
	To   string

	Raw     float64
	Auction float64
	Feed    float64
	Mutual  bool

	CommonItems    []string
	PartnerTopItem string
	FirstAction    time.Time
}

type pairKey struct {
	from, to string
}

type pairTable map[pairKey]*PairScore

// scorePairs computes a PairScore for every ordered opposite-group
// pair. Pairs with no overlapping signal still get a valid zero score;
// they stay legal, low-priority candidates for the matcher.
func scorePairs(snap *Snapshot, sig *signals, females, males []Participant, maxHearts int, cfg Config) pairTable {
	pairs := make(pairTable, 2*len(females)*len(males))
	total := len(snap.Participants)
	for _, f := range females {
		for _, m := range males {
			pairs[pairKey{f.ID, m.ID}] = scoreOne(f.ID, m.ID, snap, sig, total, maxHearts, cfg)
			pairs[pairKey{m.ID, f.ID}] = scoreOne(m.ID, f.ID, snap, sig, total, maxHearts, cfg)
		}
	}
	return pairs
}

func scoreOne(from, to string, snap *Snapshot, sig *signals, totalParticipants, maxHearts int, cfg Config) *PairScore {
	ps := &PairScore{From: from, To: to}

	myVec := sig.vectors[from]
	otherVec := sig.vectors[to]

	// Value alignment: per commonly-bid item, min/max bid ratio with a
	// scarcity bonus for items few participants bid on at all.
	auction := 0.0
	for _, it := range snap.Items {
		myBid := myVec[it.ID]
		otherBid := otherVec[it.ID]
		if myBid <= 0 || otherBid <= 0 {
			continue
		}
		ratio := float64(minInt64(myBid, otherBid)) / float64(maxInt64(myBid, otherBid))
		auction += ratio * scarcityBoost(sig.bidders[it.ID], totalParticipants, cfg)
		ps.CommonItems = append(ps.CommonItems, it.Title)
	}
	// Normalize by the smaller bid-item count, then scale to the
	// component ceiling. Vectors only hold positive totals.
	overlapCap := len(myVec)
	if len(otherVec) < overlapCap {
		overlapCap = len(otherVec)
	}
	if overlapCap > 0 {
		auction = auction / float64(overlapCap) * cfg.AuctionWeight
	}
	ps.Auction = auction

	// Feed affinity: likes given weigh more than likes received, both
	// linear against the dynamic cap H.
	given := sig.likeCount(from, to)
	received := sig.likeCount(to, from)
	gh := given
	if gh > maxHearts {
		gh = maxHearts
	}
	rh := received
	if rh > maxHearts {
		rh = maxHearts
	}
	ps.Feed = cfg.FeedGivenWeight*float64(gh)/float64(maxHearts) +
		cfg.FeedReceivedWeight*float64(rh)/float64(maxHearts)

	ps.Mutual = given > 0 && received > 0
	raw := ps.Auction + ps.Feed
	if ps.Mutual {
		minHearts := gh
		if rh < minHearts {
			minHearts = rh
		}
		switch heartRatio := float64(minHearts) / float64(maxHearts); {
		case heartRatio >= cfg.MutualHighCut:
			raw *= cfg.MutualHighBoost
		case heartRatio >= cfg.MutualMidCut:
			raw *= cfg.MutualMidBoost
		default:
			raw *= cfg.MutualBaseBoost
		}
	}
	ps.Raw = raw

	ps.FirstAction = sig.firstOf(from, to)
	if top := sig.topItems[to]; len(top) > 0 {
		ps.PartnerTopItem = top[0]
	}
	return ps
}

// scarcityBoost rewards alignment on items few participants bid on.
// An item nobody bid on never reaches here, but a zero participant
// count still yields the neutral multiplier rather than dividing.
func scarcityBoost(bidderCount, totalParticipants int, cfg Config) float64 {
	if totalParticipants <= 0 {
		return 1
	}
	switch ratio := float64(bidderCount) / float64(totalParticipants); {
	case ratio <= cfg.ScarcityTightCut:
		return cfg.ScarcityTightBoost
	case ratio <= cfg.ScarcityLooseCut:
		return cfg.ScarcityLooseBoost
	}
	return 1
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
