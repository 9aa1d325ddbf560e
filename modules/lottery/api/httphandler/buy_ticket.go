package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
)

type buyTicketRequest struct {
	Numbers  []int32 `json:"numbers"`
	Quantity int32   `json:"quantity"`
	Buyer    string  `json:"buyer"`
}

type buyTicketResponse = common.HttpResponse[ticketResult]

func (h *HttpHandler) BuyTicket(ctx *fiber.Ctx) (err error) {
	var req buyTicketRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("unable to parse request body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ticket, err := h.usecase.PurchaseTicket(ctx.UserContext(), usecase.PurchaseTicketParams{
		Numbers:  req.Numbers,
		Quantity: req.Quantity,
		Buyer:    req.Buyer,
	})
	if err != nil {
		return errors.Wrap(err, "error during PurchaseTicket")
	}

	resp := buyTicketResponse{
		Result: lo.ToPtr(ticketResultFromEntity(ticket)),
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
