package usecase

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/datagateway"
	"github.com/solotto/draw-engine/modules/lottery/draw"
	"github.com/solotto/draw-engine/modules/lottery/tickethash"
	"github.com/solotto/draw-engine/pkg/entropy"
)

type Usecase struct {
	ticketDg  datagateway.TicketDataGateway
	drawDg    datagateway.DrawDataGateway
	engine    *draw.Engine
	hasher    tickethash.Hasher
	entropy   entropy.Source
	unitPrice decimal.Decimal

	// purchaseMu serializes the check-then-append window so two concurrent
	// purchases of the same combination cannot both pass the uniqueness check.
	purchaseMu sync.Mutex

	now func() time.Time
}

func New(ticketDg datagateway.TicketDataGateway, drawDg datagateway.DrawDataGateway, engine *draw.Engine, hasher tickethash.Hasher, entropySource entropy.Source, unitPrice decimal.Decimal) *Usecase {
	return &Usecase{
		ticketDg:  ticketDg,
		drawDg:    drawDg,
		engine:    engine,
		hasher:    hasher,
		entropy:   entropySource,
		unitPrice: unitPrice,
		now:       time.Now,
	}
}
