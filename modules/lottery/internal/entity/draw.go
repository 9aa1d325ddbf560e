package entity

import (
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

// DrawResult is one completed draw. Never mutated after creation.
type DrawResult struct {
	// ResultFingerprint is the hash of (winning numbers, entropy seed, draw
	// timestamp).
	ResultFingerprint string

	// WinningNumbers is the derived set, sorted ascending.
	WinningNumbers numberset.NumberSet

	// EntropySeed is the external seed the numbers were derived from,
	// published so third parties can reproduce the draw.
	EntropySeed string

	// DrawTimestamp is unix milliseconds at draw time.
	DrawTimestamp int64

	// TotalTicketsSold is the quantity-weighted ticket count at draw time.
	TotalTicketsSold int64

	// TotalPrizePool is TotalTicketsSold x unit ticket price.
	TotalPrizePool decimal.Decimal

	// Winners holds one record per ledger ticket with at least one match,
	// in ledger order. Tickets with zero matches are omitted entirely.
	Winners []WinnerRecord
}

// WinnerRecord is derived from a ticket and the winning numbers; it is only
// persisted as part of its DrawResult.
type WinnerRecord struct {
	TicketFingerprint string              `json:"ticketFingerprint"`
	Buyer             string              `json:"buyer"`
	Numbers           numberset.NumberSet `json:"numbers"`
	MatchCount        int                 `json:"matchCount"`
	Prize             string              `json:"prize"`
	PrizeValue        string              `json:"prizeValue"`
}
