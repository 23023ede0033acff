// Package counter tracks which ranks are still unseen and who played each copy.
package counter

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-trainer/internal/game/card"
)

// History records, per rank, the seat that played each successive copy.
type History [card.NumRanks][]int

// Of returns a copy of the seats that played rank r, in play order.
func (h History) Of(r card.Rank) []int {
	return slices.Clone(h[r.Index()])
}

// Clone deep-copies the history.
func (h History) Clone() History {
	var out History
	for i, seats := range h {
		out[i] = slices.Clone(seats)
	}
	return out
}

// Ledger is the remaining-count and played-history bookkeeping of one match.
// It is a value: Record returns a new Ledger and never touches the receiver.
type Ledger struct {
	remaining card.Counts
	history   History
}

// NewLedger starts from a full deck.
func NewLedger() Ledger {
	return Ledger{remaining: card.InitialCounts()}
}

// Record deducts the played cards and appends seat once per card to the
// rank's history.
func (l Ledger) Record(cards []card.Card, seat int) Ledger {
	if seat < 0 || seat >= card.PlayerCount {
		panic(fmt.Sprintf("counter: seat %d out of range", seat))
	}

	next := Ledger{remaining: l.remaining, history: l.history}
	touched := make(map[int]bool, len(cards))
	for _, c := range cards {
		idx := c.Rank.Index()
		if !touched[idx] {
			// copy on first write so the previous ledger keeps its slice
			next.history[idx] = slices.Clone(l.history[idx])
			touched[idx] = true
		}
		if len(next.history[idx]) >= c.Rank.InitialCount() {
			panic(fmt.Sprintf("counter: more than %d copies of %s played", c.Rank.InitialCount(), c.Rank))
		}
		next.history[idx] = append(next.history[idx], seat)
		if next.remaining[idx] > 0 {
			next.remaining[idx]--
		}
	}
	return next
}

// Remaining returns the per-rank counts not yet played.
func (l Ledger) Remaining() card.Counts {
	return l.remaining
}

// RemainingOf returns how many copies of r are still unseen.
func (l Ledger) RemainingOf(r card.Rank) int {
	return l.remaining.Get(r)
}

// History returns a deep copy of the played history.
func (l Ledger) History() History {
	return l.history.Clone()
}

// PlayedTotal is the number of cards played so far.
func (l Ledger) PlayedTotal() int {
	return card.DeckSize - l.remaining.Total()
}
