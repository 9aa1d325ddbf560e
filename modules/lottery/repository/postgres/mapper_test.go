package postgres

import (
	"testing"

	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTicketModelToType(t *testing.T) {
	t.Run("valid model", func(t *testing.T) {
		ticket, err := mapTicketModelToType(ticketModel{
			Fingerprint:       "abc123",
			Numbers:           []int32{35, 7, 28, 14, 21},
			Quantity:          2,
			Buyer:             "buyerA",
			PurchaseTimestamp: 1700000000000,
			PaymentReference:  "pending",
		})
		require.NoError(t, err)

		assert.Equal(t, "abc123", ticket.Fingerprint)
		assert.Equal(t, []int32{35, 7, 28, 14, 21}, ticket.Numbers.Slice())
		assert.Equal(t, "7,14,21,28,35", ticket.Numbers.CanonicalString())
	})

	t.Run("corrupt stored numbers", func(t *testing.T) {
		_, err := mapTicketModelToType(ticketModel{
			Fingerprint: "abc123",
			Numbers:     []int32{1, 2, 3},
		})
		require.Error(t, err)
	})
}

func TestMapDrawModelToType(t *testing.T) {
	t.Run("valid model", func(t *testing.T) {
		result, err := mapDrawModelToType(drawModel{
			ResultFingerprint: "draw-1",
			WinningNumbers:    []int32{2, 23, 29, 38, 45},
			EntropySeed:       "seed",
			DrawTimestamp:     1700000000000,
			TotalTicketsSold:  10,
			TotalPrizePool:    "0.10",
			Winners:           []byte(`[{"ticketFingerprint":"abc","buyer":"buyerA","numbers":[2,23,1,3,4],"matchCount":2,"prize":"Fourth Prize - Dream Vacation","prizeValue":"$25,000"}]`),
		})
		require.NoError(t, err)

		assert.Equal(t, numberset.NumberSet{2, 23, 29, 38, 45}, result.WinningNumbers)
		assert.Equal(t, "0.1", result.TotalPrizePool.String())
		require.Len(t, result.Winners, 1)
		assert.Equal(t, "buyerA", result.Winners[0].Buyer)
		assert.Equal(t, 2, result.Winners[0].MatchCount)
	})

	t.Run("corrupt prize pool", func(t *testing.T) {
		_, err := mapDrawModelToType(drawModel{
			ResultFingerprint: "draw-1",
			WinningNumbers:    []int32{1, 2, 3, 4, 5},
			TotalPrizePool:    "not-a-number",
			Winners:           []byte(`[]`),
		})
		require.Error(t, err)
	})
}

func TestMarshalWinners(t *testing.T) {
	t.Run("nil becomes empty array", func(t *testing.T) {
		out, err := marshalWinners(nil)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(out))
	})

	t.Run("round trip through model", func(t *testing.T) {
		winners := []entity.WinnerRecord{{
			TicketFingerprint: "abc",
			Buyer:             "buyerA",
			Numbers:           numberset.NumberSet{2, 23, 1, 3, 4},
			MatchCount:        2,
			Prize:             "Fourth Prize - Dream Vacation",
			PrizeValue:        "$25,000",
		}}
		out, err := marshalWinners(winners)
		require.NoError(t, err)

		result, err := mapDrawModelToType(drawModel{
			ResultFingerprint: "draw-1",
			WinningNumbers:    []int32{2, 23, 29, 38, 45},
			TotalPrizePool:    "0.10",
			Winners:           out,
		})
		require.NoError(t, err)
		assert.Equal(t, winners, result.Winners)
	})
}
