package postgres

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

type ticketModel struct {
	Fingerprint       string
	Numbers           []int32
	Quantity          int32
	Buyer             string
	PurchaseTimestamp int64
	PaymentReference  string
}

type drawModel struct {
	ResultFingerprint string
	WinningNumbers    []int32
	EntropySeed       string
	DrawTimestamp     int64
	TotalTicketsSold  int64
	TotalPrizePool    string
	Winners           []byte
}

func mapTicketModelToType(model ticketModel) (*entity.Ticket, error) {
	numbers, err := numberset.New(model.Numbers)
	if err != nil {
		return nil, errors.Wrapf(err, "stored ticket %q has invalid numbers", model.Fingerprint)
	}
	return &entity.Ticket{
		Fingerprint:       model.Fingerprint,
		Numbers:           numbers,
		Quantity:          model.Quantity,
		Buyer:             model.Buyer,
		PurchaseTimestamp: model.PurchaseTimestamp,
		PaymentReference:  model.PaymentReference,
	}, nil
}

func mapDrawModelToType(model drawModel) (*entity.DrawResult, error) {
	numbers, err := numberset.New(model.WinningNumbers)
	if err != nil {
		return nil, errors.Wrapf(err, "stored draw %q has invalid winning numbers", model.ResultFingerprint)
	}
	pool, err := decimal.NewFromString(model.TotalPrizePool)
	if err != nil {
		return nil, errors.Wrapf(err, "stored draw %q has invalid prize pool", model.ResultFingerprint)
	}
	var winners []entity.WinnerRecord
	if err := json.Unmarshal(model.Winners, &winners); err != nil {
		return nil, errors.Wrapf(err, "stored draw %q has invalid winners", model.ResultFingerprint)
	}
	return &entity.DrawResult{
		ResultFingerprint: model.ResultFingerprint,
		WinningNumbers:    numbers,
		EntropySeed:       model.EntropySeed,
		DrawTimestamp:     model.DrawTimestamp,
		TotalTicketsSold:  model.TotalTicketsSold,
		TotalPrizePool:    pool,
		Winners:           winners,
	}, nil
}

func marshalWinners(winners []entity.WinnerRecord) ([]byte, error) {
	if winners == nil {
		winners = []entity.WinnerRecord{}
	}
	out, err := json.Marshal(winners)
	return out, errors.WithStack(err)
}
