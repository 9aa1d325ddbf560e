package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/common/errs"
)

type confirmPaymentRequest struct {
	PaymentReference string `json:"paymentReference"`
}

type confirmPaymentResult struct {
	Fingerprint string `json:"fingerprint"`
	Updated     bool   `json:"updated"`
}

type confirmPaymentResponse = common.HttpResponse[confirmPaymentResult]

func (h *HttpHandler) ConfirmPayment(ctx *fiber.Ctx) (err error) {
	fingerprint := ctx.Params("fingerprint")

	var req confirmPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.NewPublicError("unable to parse request body")
	}

	updated, err := h.usecase.ConfirmPayment(ctx.UserContext(), fingerprint, req.PaymentReference)
	if err != nil {
		return errors.Wrap(err, "error during ConfirmPayment")
	}
	if !updated {
		return fiber.NewError(fiber.StatusNotFound, "no pending ticket with this fingerprint")
	}

	resp := confirmPaymentResponse{
		Result: &confirmPaymentResult{
			Fingerprint: fingerprint,
			Updated:     updated,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
