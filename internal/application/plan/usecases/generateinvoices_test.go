package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/plan"
)

func newDueSubscription(t *testing.T, subID, companyID uint, amount float64, nextBilling time.Time) *plan.Subscription {
	t.Helper()

	now := time.Now()
	s, err := plan.ReconstructSubscription(subID, companyID, 3, plan.SubscriptionActive,
		5, amount, nextBilling, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	require.NoError(t, err)
	return s
}

func TestGenerateInvoices_CutsLedgerRowsAndRollsPeriod(t *testing.T) {
	due := time.Now().Add(-time.Hour)
	subA := newDueSubscription(t, 1, 10, 45.0, due)
	subB := newDueSubscription(t, 2, 20, 90.0, due)

	var saved []*plan.BillingHistory
	var updated []*plan.Subscription

	subscriptionRepo := &mockSubscriptionRepository{
		ListDueForBillingFunc: func(ctx context.Context, before time.Time) ([]*plan.Subscription, error) {
			return []*plan.Subscription{subA, subB}, nil
		},
		UpdateFunc: func(ctx context.Context, s *plan.Subscription) error {
			updated = append(updated, s)
			return nil
		},
	}
	billingRepo := &mockBillingHistoryRepository{
		SaveFunc: func(ctx context.Context, h *plan.BillingHistory) error {
			saved = append(saved, h)
			return nil
		},
	}

	uc := NewGenerateInvoicesUseCase(subscriptionRepo, billingRepo, &mockTransactionManager{}, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, saved, 2)
	assert.Equal(t, uint(10), saved[0].CompanyID())
	assert.Equal(t, 45.0, saved[0].Amount())
	assert.Equal(t, plan.BillingPending, saved[0].Status())
	assert.NotEmpty(t, saved[0].InvoiceNo())

	require.Len(t, updated, 2)
	assert.Equal(t, due.AddDate(0, 1, 0), updated[0].NextBilling())
}

func TestGenerateInvoices_SkipsFailedSubscription(t *testing.T) {
	due := time.Now().Add(-time.Hour)
	subA := newDueSubscription(t, 1, 10, 45.0, due)
	subB := newDueSubscription(t, 2, 20, 90.0, due)

	subscriptionRepo := &mockSubscriptionRepository{
		ListDueForBillingFunc: func(ctx context.Context, before time.Time) ([]*plan.Subscription, error) {
			return []*plan.Subscription{subA, subB}, nil
		},
	}
	billingRepo := &mockBillingHistoryRepository{
		SaveFunc: func(ctx context.Context, h *plan.BillingHistory) error {
			if h.CompanyID() == 10 {
				return fmt.Errorf("write failed")
			}
			return nil
		},
	}

	uc := NewGenerateInvoicesUseCase(subscriptionRepo, billingRepo, &mockTransactionManager{}, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the failing subscription is skipped, not fatal")
}

func TestGenerateInvoices_NothingDue(t *testing.T) {
	uc := NewGenerateInvoicesUseCase(&mockSubscriptionRepository{}, &mockBillingHistoryRepository{}, &mockTransactionManager{}, &mockLogger{})

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
