package usecases

import (
	"context"
	"time"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/plan"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	CompanyID   uint
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Website     string
	DateFormat  string
	WeeklyOff   []string
	PlanSID     string
}

type UpdateCompanyResult struct {
	Company     *company.Company
	PlanChanged bool
	InvoiceNo   string
}

// UpdateCompanyUseCase applies a partial profile update. When the
// request carries a different plan, the plan switch, the pending
// subscription and the billing history row all commit in one
// transaction.
type UpdateCompanyUseCase struct {
	companyRepo      company.Repository
	planRepo         plan.Repository
	subscriptionRepo plan.SubscriptionRepository
	billingRepo      plan.BillingHistoryRepository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewUpdateCompanyUseCase(
	companyRepo company.Repository,
	planRepo plan.Repository,
	subscriptionRepo plan.SubscriptionRepository,
	billingRepo plan.BillingHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo:      companyRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		billingRepo:      billingRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*UpdateCompanyResult, error) {
	uc.logger.Infow("executing update company use case", "company_id", cmd.CompanyID)

	c, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateProfile(cmd.Name, cmd.Email, cmd.PhoneNumber, cmd.Address, cmd.Website, cmd.DateFormat, cmd.WeeklyOff); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var targetPlan *plan.Plan
	planChanged := false
	if cmd.PlanSID != "" {
		targetPlan, err = uc.planRepo.GetBySID(ctx, cmd.PlanSID)
		if err != nil {
			return nil, err
		}
		if !targetPlan.Active() {
			return nil, errors.NewValidationError("plan is not available")
		}

		planChanged, err = c.ChangePlan(targetPlan.ID())
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	result := &UpdateCompanyResult{Company: c}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companyRepo.Update(txCtx, c); err != nil {
			return err
		}

		if !planChanged {
			return nil
		}

		if err := uc.applyPlanChange(txCtx, c, targetPlan, result); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	result.PlanChanged = planChanged
	uc.logger.Infow("company updated", "company_id", c.ID(), "plan_changed", planChanged)
	return result, nil
}

// applyPlanChange provisions the billing side effects of a plan
// switch. A company without a subscription gets a pending one sized at
// the plan's minimum seats; every switch writes a pending invoice.
func (uc *UpdateCompanyUseCase) applyPlanChange(ctx context.Context, c *company.Company, targetPlan *plan.Plan, result *UpdateCompanyResult) error {
	_, err := uc.subscriptionRepo.GetByCompanyID(ctx, c.ID())
	switch {
	case errors.IsNotFoundError(err):
		nextBilling := time.Now().AddDate(0, 1, 0)
		sub, err := plan.NewPendingSubscription(c.ID(), targetPlan, nextBilling)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subscriptionRepo.Save(ctx, sub); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	history, err := plan.NewBillingHistory(c.ID(), targetPlan.ID(), targetPlan.MinimumTotal())
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.billingRepo.Save(ctx, history); err != nil {
		return err
	}

	result.InvoiceNo = history.InvoiceNo()
	return nil
}
