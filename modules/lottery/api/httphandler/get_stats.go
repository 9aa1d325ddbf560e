package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
)

type getStatsResponse = common.HttpResponse[usecase.AdminStats]

func (h *HttpHandler) GetStats(ctx *fiber.Ctx) (err error) {
	stats, err := h.usecase.GetAdminStats(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetAdminStats")
	}

	resp := getStatsResponse{
		Result: stats,
	}
	return errors.WithStack(ctx.JSON(resp))
}
