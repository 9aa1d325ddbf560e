package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/lottery/v1")

	r.Post("/tickets", h.BuyTicket)
	r.Post("/tickets/:fingerprint/payment", h.ConfirmPayment)
	r.Get("/tickets", h.GetTickets)
	r.Get("/stats", h.GetStats)
	r.Post("/draws", h.ConductDraw)
	r.Get("/draws/latest", h.GetLatestDraw)
	r.Get("/draws", h.GetDraws)
	r.Get("/audit", h.GetAudit)
	return nil
}
