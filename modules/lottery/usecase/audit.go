package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

const (
	auditChunkSize   = 256
	auditConcurrency = 8
)

type AuditReport struct {
	TotalTickets           int      `json:"totalTickets"`
	VerifiedTickets        int      `json:"verifiedTickets"`
	MismatchedFingerprints []string `json:"mismatchedFingerprints"`
	PendingPayments        int      `json:"pendingPayments"`
}

// AuditLedger recomputes every ticket fingerprint from its stored fields and
// reports the ones that no longer match, along with how many tickets still
// await payment confirmation. Verification runs over ledger chunks in
// parallel.
func (u *Usecase) AuditLedger(ctx context.Context) (*AuditReport, error) {
	tickets, err := u.ticketDg.GetTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't load ticket ledger")
	}

	out := make(chan []string)
	stream := cstream.NewStream(ctx, auditConcurrency, out)
	go func() {
		defer close(out)
		_ = stream.Wait()
	}()
	go func() {
		defer stream.Close()
		for _, chunk := range lo.Chunk(tickets, auditChunkSize) {
			chunk := chunk
			stream.Go(func() []string {
				var mismatched []string
				for _, t := range chunk {
					expected := u.hasher.Fingerprint(t.Numbers, t.Buyer, t.PurchaseTimestamp)
					if expected != t.Fingerprint {
						mismatched = append(mismatched, t.Fingerprint)
					}
				}
				return mismatched
			})
		}
	}()

	report := &AuditReport{
		TotalTickets:           len(tickets),
		MismatchedFingerprints: make([]string, 0),
	}
	for mismatched := range out {
		report.MismatchedFingerprints = append(report.MismatchedFingerprints, mismatched...)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	report.VerifiedTickets = report.TotalTickets - len(report.MismatchedFingerprints)
	report.PendingPayments = lo.CountBy(tickets, func(t *entity.Ticket) bool {
		return t.PaymentReference == entity.PendingPaymentReference
	})
	return report, nil
}
