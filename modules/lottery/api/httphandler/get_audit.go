package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/solotto/draw-engine/common"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
)

type getAuditResponse = common.HttpResponse[usecase.AuditReport]

func (h *HttpHandler) GetAudit(ctx *fiber.Ctx) (err error) {
	report, err := h.usecase.AuditLedger(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during AuditLedger")
	}

	resp := getAuditResponse{
		Result: report,
	}
	return errors.WithStack(ctx.JSON(resp))
}
