package httphandler

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

type getTicketsRequest struct {
	Buyer   string `query:"buyer"`
	Numbers string `query:"numbers"`
}

func (r getTicketsRequest) ParseNumbers() ([]int32, error) {
	if r.Numbers == "" {
		return nil, nil
	}
	parts := strings.Split(r.Numbers, ",")
	numbers := make([]int32, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, errs.NewPublicError("'numbers' must be a comma-separated list of integers")
		}
		numbers = append(numbers, int32(n))
	}
	return numbers, nil
}

type getTicketsResult struct {
	Tickets []ticketResult `json:"tickets"`
}

type getTicketsResponse = common.HttpResponse[getTicketsResult]

func (h *HttpHandler) GetTickets(ctx *fiber.Ctx) (err error) {
	var req getTicketsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	numbers, err := req.ParseNumbers()
	if err != nil {
		return errors.WithStack(err)
	}

	var tickets []*entity.Ticket
	switch {
	case len(numbers) > 0:
		tickets, err = h.usecase.SearchTicketsByNumbers(ctx.UserContext(), numbers)
		if err != nil {
			return errors.Wrap(err, "error during SearchTicketsByNumbers")
		}
		if req.Buyer != "" {
			tickets = lo.Filter(tickets, func(t *entity.Ticket, _ int) bool { return t.Buyer == req.Buyer })
		}
	case req.Buyer != "":
		tickets, err = h.usecase.GetTicketsByBuyer(ctx.UserContext(), req.Buyer)
		if err != nil {
			return errors.Wrap(err, "error during GetTicketsByBuyer")
		}
	default:
		tickets, err = h.usecase.GetTickets(ctx.UserContext())
		if err != nil {
			return errors.Wrap(err, "error during GetTickets")
		}
	}

	resp := getTicketsResponse{
		Result: &getTicketsResult{
			Tickets: lo.Map(tickets, func(t *entity.Ticket, _ int) ticketResult {
				return ticketResultFromEntity(t)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
