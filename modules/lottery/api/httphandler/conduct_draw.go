package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/common/errs"
)

type conductDrawRequest struct {
	EntropySeed string `json:"entropySeed"`
}

type conductDrawResponse = common.HttpResponse[drawResult]

func (h *HttpHandler) ConductDraw(ctx *fiber.Ctx) (err error) {
	var req conductDrawRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return errs.NewPublicError("unable to parse request body")
		}
	}

	result, err := h.usecase.ConductDraw(ctx.UserContext(), req.EntropySeed)
	if err != nil {
		return errors.Wrap(err, "error during ConductDraw")
	}

	resp := conductDrawResponse{
		Result: lo.ToPtr(drawResultFromEntity(result)),
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(resp))
}
