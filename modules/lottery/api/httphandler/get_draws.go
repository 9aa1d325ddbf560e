package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

type getDrawsResult struct {
	Draws []drawResult `json:"draws"`
}

type getDrawsResponse = common.HttpResponse[getDrawsResult]

func (h *HttpHandler) GetDraws(ctx *fiber.Ctx) (err error) {
	results, err := h.usecase.GetDrawHistory(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetDrawHistory")
	}

	resp := getDrawsResponse{
		Result: &getDrawsResult{
			Draws: lo.Map(results, func(r *entity.DrawResult, _ int) drawResult {
				return drawResultFromEntity(r)
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
