package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/logger"
)

// GenerateInvoicesUseCase cuts billing ledger rows for subscriptions
// whose billing date has arrived and rolls them to the next period.
// It runs as a scheduled batch job.
type GenerateInvoicesUseCase struct {
	subscriptionRepo plan.SubscriptionRepository
	billingRepo      plan.BillingHistoryRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewGenerateInvoicesUseCase(
	subscriptionRepo plan.SubscriptionRepository,
	billingRepo plan.BillingHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *GenerateInvoicesUseCase {
	return &GenerateInvoicesUseCase{
		subscriptionRepo: subscriptionRepo,
		billingRepo:      billingRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute returns the number of invoices generated. A failure on one
// subscription is logged and skipped so the rest of the batch proceeds.
func (uc *GenerateInvoicesUseCase) Execute(ctx context.Context) (int, error) {
	now := time.Now()

	due, err := uc.subscriptionRepo.ListDueForBilling(ctx, now)
	if err != nil {
		return 0, err
	}

	generated := 0
	for _, sub := range due {
		if err := uc.invoiceOne(ctx, sub, now); err != nil {
			uc.logger.Errorw("failed to generate invoice",
				"subscription_id", sub.ID(),
				"company_id", sub.CompanyID(),
				"error", err,
			)
			continue
		}
		generated++
	}

	if generated > 0 {
		uc.logger.Infow("invoices generated", "count", generated, "due", len(due))
	}

	return generated, nil
}

func (uc *GenerateInvoicesUseCase) invoiceOne(ctx context.Context, sub *plan.Subscription, now time.Time) error {
	history, err := plan.NewBillingHistory(sub.CompanyID(), sub.PlanID(), sub.TotalAmount())
	if err != nil {
		return err
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.billingRepo.Save(txCtx, history); err != nil {
			return err
		}
		if err := sub.AdvanceBilling(sub.NextBilling().AddDate(0, 1, 0)); err != nil {
			return err
		}
		return uc.subscriptionRepo.Update(txCtx, sub)
	})
}
