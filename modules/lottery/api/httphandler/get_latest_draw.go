package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/common/errs"
)

type getLatestDrawResponse = common.HttpResponse[drawResult]

func (h *HttpHandler) GetLatestDraw(ctx *fiber.Ctx) (err error) {
	result, err := h.usecase.GetLatestDraw(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no draw has been conducted yet")
		}
		return errors.Wrap(err, "error during GetLatestDraw")
	}

	resp := getLatestDrawResponse{
		Result: lo.ToPtr(drawResultFromEntity(result)),
	}
	return errors.WithStack(ctx.JSON(resp))
}
