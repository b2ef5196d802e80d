package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecord marks whether a cost was paid in a particular month. PaidAt
// always reflects the most recent toggle, paid or unpaid.
type PaymentRecord struct {
	Paid   bool      `json:"paid"`
	PaidAt time.Time `json:"paidAt"`
}

// Ledger holds per-cost, per-month payment marks. It is deliberately not
// constrained to months in which a cost is active: a user may mark any month
// paid, which permits correcting mistakes and recording off-schedule payments.
// Entries are kept after an installment series completes.
type Ledger map[uuid.UUID]map[MonthID]PaymentRecord

func NewLedger() Ledger {
	return make(Ledger)
}

// Record returns the payment record for the given cost and month
func (l Ledger) Record(costID uuid.UUID, month MonthID) (PaymentRecord, bool) {
	rec, ok := l[costID][month]
	return rec, ok
}

// IsPaid reports whether the given cost is marked paid for the given month
func (l Ledger) IsPaid(costID uuid.UUID, month MonthID) bool {
	return l[costID][month].Paid
}

// Toggle flips the paid flag for the given cost and month, stamping the
// record with now. Toggling twice restores the original paid state.
func (l Ledger) Toggle(costID uuid.UUID, month MonthID, now time.Time) PaymentRecord {
	months := l[costID]
	if months == nil {
		months = make(map[MonthID]PaymentRecord)
		l[costID] = months
	}
	rec := PaymentRecord{Paid: !months[month].Paid, PaidAt: now}
	months[month] = rec
	return rec
}

// Set writes a payment record directly, used when folding persisted history
// back into the ledger
func (l Ledger) Set(costID uuid.UUID, month MonthID, rec PaymentRecord) {
	months := l[costID]
	if months == nil {
		months = make(map[MonthID]PaymentRecord)
		l[costID] = months
	}
	months[month] = rec
}

// RemoveCost drops all entries for a cost. Called when the cost is deleted
// from the catalog.
func (l Ledger) RemoveCost(costID uuid.UUID) {
	delete(l, costID)
}

// History returns a copy of all payment records for a cost keyed by month
func (l Ledger) History(costID uuid.UUID) map[MonthID]PaymentRecord {
	months := l[costID]
	if len(months) == 0 {
		return nil
	}
	out := make(map[MonthID]PaymentRecord, len(months))
	for m, rec := range months {
		out[m] = rec
	}
	return out
}

// Clone returns a deep copy of the ledger
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for costID, months := range l {
		copied := make(map[MonthID]PaymentRecord, len(months))
		for m, rec := range months {
			copied[m] = rec
		}
		out[costID] = copied
	}
	return out
}
