package entity

import (
	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

// PendingPaymentReference is the placeholder payment reference a ticket
// carries until the on-chain transfer confirms.
const PendingPaymentReference = "pending"

// Ticket is one paid entry in the ledger. Everything except PaymentReference
// is immutable after creation.
type Ticket struct {
	// Fingerprint is the stable hash of (numbers, buyer, purchase timestamp),
	// computed once at creation. It is the ticket's identity.
	Fingerprint string

	// Numbers is the validated selection, in pick order.
	Numbers numberset.NumberSet

	// Quantity is the count of identical physical tickets bought under this
	// combination. Always >= 1.
	Quantity int32

	// Buyer is the purchasing wallet's public key string. Opaque.
	Buyer string

	// PurchaseTimestamp is unix milliseconds, assigned at creation.
	PurchaseTimestamp int64

	// PaymentReference is the external transaction id. Starts as
	// PendingPaymentReference and is updated once payment confirms; the only
	// mutable field.
	PaymentReference string
}

// Validate enforces structural well-formedness. A failure here is a broken
// caller contract, not a user mistake.
func (t Ticket) Validate() error {
	if t.Fingerprint == "" {
		return errors.Wrap(errs.InvalidArgument, "ticket fingerprint is empty")
	}
	if t.Buyer == "" {
		return errors.Wrap(errs.InvalidArgument, "ticket buyer identity is empty")
	}
	if t.Quantity < 1 {
		return errors.Wrapf(errs.InvalidArgument, "ticket quantity must be >= 1, got %d", t.Quantity)
	}
	if t.PurchaseTimestamp <= 0 {
		return errors.Wrapf(errs.InvalidArgument, "ticket purchase timestamp must be positive, got %d", t.PurchaseTimestamp)
	}
	if t.PaymentReference == "" {
		return errors.Wrap(errs.InvalidArgument, "ticket payment reference is empty")
	}
	return nil
}
