package matching

import (
	"sort"
	"time"
)

type likeKey struct {
	from, to string
}

// signals holds the per-user vectors and derived counts the scorer
// works from. Summation is commutative, so the result is independent
// of input row ordering.
type signals struct {
	// vectors maps participant -> item -> summed bid amount. Entries
	// are always positive; a participant with no bids has no entry.
	vectors map[string]map[string]int64
	// bidders maps item id -> distinct bidder count.
	bidders map[string]int
	// biddersByTitle is the same count keyed by item title, for
	// presentation metadata.
	biddersByTitle map[string]int
	// likes maps (from, to) -> like count.
	likes map[likeKey]int
	// firstAction is each participant's earliest bid-or-like time.
	// Audit/tie-break metadata only; never scored.
	firstAction map[string]time.Time
	// topItems holds each participant's top three item titles by
	// summed bid amount.
	topItems map[string][]string

	itemTitle map[string]string
	itemOrder map[string]int

	skippedBids  int
	skippedLikes int
}

// aggregate collapses raw bid and like rows into per-user vectors and
// derived counts. Malformed rows are skipped and counted, never
// allowed to corrupt totals.
func aggregate(snap *Snapshot) *signals {
	sig := &signals{
		vectors:        make(map[string]map[string]int64),
		bidders:        make(map[string]int),
		biddersByTitle: make(map[string]int),
		likes:          make(map[likeKey]int),
		firstAction:    make(map[string]time.Time),
		topItems:       make(map[string][]string),
		itemTitle:      make(map[string]string),
		itemOrder:      make(map[string]int),
	}

	for i, it := range snap.Items {
		if it.ID == "" {
			continue
		}
		sig.itemTitle[it.ID] = it.Title
		sig.itemOrder[it.ID] = i
	}

	distinct := make(map[string]map[string]struct{})
	for _, b := range snap.Bids {
		if b.ParticipantID == "" || b.ItemID == "" || b.Amount <= 0 {
			sig.skippedBids++
			continue
		}
		if _, known := sig.itemTitle[b.ItemID]; !known {
			// Bid referencing an item outside the snapshot.
			sig.skippedBids++
			continue
		}
		vec := sig.vectors[b.ParticipantID]
		if vec == nil {
			vec = make(map[string]int64)
			sig.vectors[b.ParticipantID] = vec
		}
		vec[b.ItemID] += b.Amount

		set := distinct[b.ItemID]
		if set == nil {
			set = make(map[string]struct{})
			distinct[b.ItemID] = set
		}
		set[b.ParticipantID] = struct{}{}

		sig.touch(b.ParticipantID, b.CreatedAt)
	}

	for _, l := range snap.Likes {
		if l.FromID == "" || l.ToID == "" || l.FromID == l.ToID {
			sig.skippedLikes++
			continue
		}
		sig.likes[likeKey{l.FromID, l.ToID}]++
		sig.touch(l.FromID, l.CreatedAt)
	}

	for itemID, set := range distinct {
		sig.bidders[itemID] = len(set)
	}
	// Keyed by title for presentation; later items win duplicate titles.
	for _, it := range snap.Items {
		if n, ok := sig.bidders[it.ID]; ok {
			sig.biddersByTitle[it.Title] = n
		}
	}

	sig.rankTopItems()
	return sig
}

// touch records t as the participant's first action if it is earlier
// than anything seen so far. Zero times are ignored.
func (sig *signals) touch(participantID string, t time.Time) {
	if t.IsZero() {
		return
	}
	cur, ok := sig.firstAction[participantID]
	if !ok || t.Before(cur) {
		sig.firstAction[participantID] = t
	}
}

// rankTopItems extracts each participant's top three item titles by
// summed amount, breaking amount ties by snapshot item order so the
// result is reproducible.
func (sig *signals) rankTopItems() {
	for participantID, vec := range sig.vectors {
		type itemTotal struct {
			id     string
			amount int64
		}
		totals := make([]itemTotal, 0, len(vec))
		for id, amount := range vec {
			totals = append(totals, itemTotal{id, amount})
		}
		sort.Slice(totals, func(i, j int) bool {
			if totals[i].amount != totals[j].amount {
				return totals[i].amount > totals[j].amount
			}
			return sig.itemOrder[totals[i].id] < sig.itemOrder[totals[j].id]
		})
		top := make([]string, 0, 3)
		for _, t := range totals {
			if len(top) == 3 {
				break
			}
			top = append(top, sig.itemTitle[t.id])
		}
		sig.topItems[participantID] = top
	}
}

func (sig *signals) likeCount(from, to string) int {
	return sig.likes[likeKey{from, to}]
}

// firstOf returns the earlier first-action time of the two
// participants, or zero if neither ever acted.
func (sig *signals) firstOf(a, b string) time.Time {
	ta, okA := sig.firstAction[a]
	tb, okB := sig.firstAction[b]
	switch {
	case okA && okB:
		if tb.Before(ta) {
			return tb
		}
		return ta
	case okA:
		return ta
	case okB:
		return tb
	}
	return time.Time{}
}
