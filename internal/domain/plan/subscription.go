package plan

import (
	"fmt"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionPending, SubscriptionActive, SubscriptionPastDue, SubscriptionCancelled:
		return true
	}
	return false
}

// Subscription ties a company to a plan. A company has at most one
// subscription row; a plan change creates it in PENDING when absent
// and leaves an existing one untouched.
type Subscription struct {
	id          uint
	companyID   uint
	planID      uint
	status      SubscriptionStatus
	users       int
	totalAmount float64
	nextBilling time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPendingSubscription seats the company on the plan's minimum user
// count, priced at the plan's minimum total, awaiting payment.
func NewPendingSubscription(companyID uint, p *Plan, nextBilling time.Time) (*Subscription, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if p == nil || p.ID() == 0 {
		return nil, fmt.Errorf("a persisted plan is required")
	}

	now := time.Now()

	return &Subscription{
		companyID:   companyID,
		planID:      p.ID(),
		status:      SubscriptionPending,
		users:       p.MinimumUsers(),
		totalAmount: p.MinimumTotal(),
		nextBilling: nextBilling,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSubscription(
	subscriptionID uint,
	companyID uint,
	planID uint,
	status SubscriptionStatus,
	users int,
	totalAmount float64,
	nextBilling time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:          subscriptionID,
		companyID:   companyID,
		planID:      planID,
		status:      status,
		users:       users,
		totalAmount: totalAmount,
		nextBilling: nextBilling,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                   { return s.id }
func (s *Subscription) CompanyID() uint            { return s.companyID }
func (s *Subscription) PlanID() uint               { return s.planID }
func (s *Subscription) Status() SubscriptionStatus { return s.status }
func (s *Subscription) Users() int                 { return s.users }
func (s *Subscription) TotalAmount() float64       { return s.totalAmount }
func (s *Subscription) NextBilling() time.Time     { return s.nextBilling }
func (s *Subscription) CreatedAt() time.Time       { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time       { return s.updatedAt }

func (s *Subscription) SetID(subscriptionID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if subscriptionID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = subscriptionID
	return nil
}

func (s *Subscription) Activate() error {
	if s.status == SubscriptionCancelled {
		return fmt.Errorf("cannot activate a cancelled subscription")
	}
	s.status = SubscriptionActive
	s.updatedAt = time.Now()
	return nil
}

func (s *Subscription) Cancel() {
	s.status = SubscriptionCancelled
	s.updatedAt = time.Now()
}

// AdvanceBilling moves the next billing date forward after an invoice
// is cut. Only active subscriptions accrue further charges.
func (s *Subscription) AdvanceBilling(next time.Time) error {
	if s.status != SubscriptionActive {
		return fmt.Errorf("cannot advance billing on a %s subscription", s.status)
	}
	if !next.After(s.nextBilling) {
		return fmt.Errorf("next billing date must be after the current one")
	}
	s.nextBilling = next
	s.updatedAt = time.Now()
	return nil
}
