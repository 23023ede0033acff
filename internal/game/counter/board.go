package counter

import "github.com/palemoky/landlord-trainer/internal/game/card"

// SlotKind describes one copy of a rank on the recorder board.
type SlotKind int

const (
	SlotEmpty    SlotKind = iota // not played, not shown in my hand
	SlotPlayed                   // played by Seat
	SlotInMyHand                 // still in seat 0's hand
)

// Slot is one cell of a board row.
type Slot struct {
	Kind SlotKind
	Seat int
}

// BoardRow is one rank with a slot per copy.
type BoardRow struct {
	Rank  card.Rank
	Slots []Slot
}

// BoardOrder lists the ordinary ranks strongest first.
var BoardOrder = []card.Rank{
	card.Rank2, card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10,
	card.Rank9, card.Rank8, card.Rank7, card.Rank6, card.Rank5, card.Rank4, card.Rank3,
}

// GridOrder lists every rank strongest first, jokers included.
var GridOrder = append([]card.Rank{card.RankRedJoker, card.RankBlackJoker}, BoardOrder...)

// Board lays out the played history per ordinary rank. Played copies fill the
// leading slots in play order; when showMyHand is set, copies held in myHand
// fill the slots right after them.
func Board(l Ledger, myHand []card.Card, showMyHand bool) []BoardRow {
	mine := card.CountRanks(myHand)
	rows := make([]BoardRow, 0, len(BoardOrder))
	for _, r := range BoardOrder {
		played := l.history[r.Index()]
		row := BoardRow{Rank: r, Slots: make([]Slot, r.InitialCount())}
		for i := range row.Slots {
			switch {
			case i < len(played):
				row.Slots[i] = Slot{Kind: SlotPlayed, Seat: played[i]}
			case showMyHand && i < len(played)+mine.Get(r):
				row.Slots[i] = Slot{Kind: SlotInMyHand}
			default:
				row.Slots[i] = Slot{Kind: SlotEmpty}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
