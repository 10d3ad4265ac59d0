package plan

import (
	"fmt"
	"time"

	"crewhub/internal/shared/id"
)

type BillingStatus string

const (
	BillingPending BillingStatus = "PENDING"
	BillingPaid    BillingStatus = "PAID"
	BillingFailed  BillingStatus = "FAILED"
)

func (s BillingStatus) IsValid() bool {
	switch s {
	case BillingPending, BillingPaid, BillingFailed:
		return true
	}
	return false
}

// BillingHistory is an immutable ledger row recording a charge against
// a company for a plan.
type BillingHistory struct {
	id        uint
	companyID uint
	planID    uint
	invoiceNo string
	amount    float64
	status    BillingStatus
	date      time.Time
	createdAt time.Time
}

// NewBillingHistory opens a PENDING ledger row with a generated
// invoice number.
func NewBillingHistory(companyID, planID uint, amount float64) (*BillingHistory, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("billing amount cannot be negative")
	}

	now := time.Now()

	return &BillingHistory{
		companyID: companyID,
		planID:    planID,
		invoiceNo: id.MustGenerateWithPrefix(id.PrefixInvoice, id.DefaultLength),
		amount:    amount,
		status:    BillingPending,
		date:      now,
		createdAt: now,
	}, nil
}

func ReconstructBillingHistory(
	historyID uint,
	companyID uint,
	planID uint,
	invoiceNo string,
	amount float64,
	status BillingStatus,
	date time.Time,
	createdAt time.Time,
) (*BillingHistory, error) {
	if historyID == 0 {
		return nil, fmt.Errorf("billing history ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid billing status: %s", status)
	}

	return &BillingHistory{
		id:        historyID,
		companyID: companyID,
		planID:    planID,
		invoiceNo: invoiceNo,
		amount:    amount,
		status:    status,
		date:      date,
		createdAt: createdAt,
	}, nil
}

func (h *BillingHistory) ID() uint              { return h.id }
func (h *BillingHistory) CompanyID() uint       { return h.companyID }
func (h *BillingHistory) PlanID() uint          { return h.planID }
func (h *BillingHistory) InvoiceNo() string     { return h.invoiceNo }
func (h *BillingHistory) Amount() float64       { return h.amount }
func (h *BillingHistory) Status() BillingStatus { return h.status }
func (h *BillingHistory) Date() time.Time       { return h.date }
func (h *BillingHistory) CreatedAt() time.Time  { return h.createdAt }

func (h *BillingHistory) SetID(historyID uint) error {
	if h.id != 0 {
		return fmt.Errorf("billing history ID is already set")
	}
	if historyID == 0 {
		return fmt.Errorf("billing history ID cannot be zero")
	}
	h.id = historyID
	return nil
}

func (h *BillingHistory) MarkPaid() {
	h.status = BillingPaid
}

func (h *BillingHistory) MarkFailed() {
	h.status = BillingFailed
}
