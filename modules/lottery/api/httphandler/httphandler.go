package httphandler

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type ticketResult struct {
	Fingerprint       string  `json:"fingerprint"`
	Numbers           []int32 `json:"numbers"`
	Quantity          int32   `json:"quantity"`
	Buyer             string  `json:"buyer"`
	PurchaseTimestamp int64   `json:"purchaseTimestamp"`
	PaymentReference  string  `json:"paymentReference"`
}

func ticketResultFromEntity(ticket *entity.Ticket) ticketResult {
	return ticketResult{
		Fingerprint:       ticket.Fingerprint,
		Numbers:           ticket.Numbers.Slice(),
		Quantity:          ticket.Quantity,
		Buyer:             ticket.Buyer,
		PurchaseTimestamp: ticket.PurchaseTimestamp,
		PaymentReference:  ticket.PaymentReference,
	}
}

type drawResult struct {
	ResultFingerprint string                `json:"resultFingerprint"`
	WinningNumbers    []int32               `json:"winningNumbers"`
	EntropySeed       string                `json:"entropySeed"`
	DrawTimestamp     int64                 `json:"drawTimestamp"`
	TotalTicketsSold  int64                 `json:"totalTicketsSold"`
	TotalPrizePool    decimal.Decimal       `json:"totalPrizePool"`
	Winners           []entity.WinnerRecord `json:"winners"`
}

func drawResultFromEntity(result *entity.DrawResult) drawResult {
	return drawResult{
		ResultFingerprint: result.ResultFingerprint,
		WinningNumbers:    result.WinningNumbers.Canonical().Slice(),
		EntropySeed:       result.EntropySeed,
		DrawTimestamp:     result.DrawTimestamp,
		TotalTicketsSold:  result.TotalTicketsSold,
		TotalPrizePool:    result.TotalPrizePool,
		Winners:           lo.Ternary(result.Winners != nil, result.Winners, make([]entity.WinnerRecord, 0)),
	}
}
