package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/plan"
	"crewhub/internal/infrastructure/persistence/models"
)

// PlanMapper converts plans, features, subscriptions, and billing
// history rows. Plan feature links travel separately so the repository
// can replace them wholesale on update.
type PlanMapper interface {
	ToModel(p *plan.Plan) *models.PlanModel
	ToDomain(model *models.PlanModel, featureModels []models.PlanFeatureModel) (*plan.Plan, error)
	FeatureLinkToModels(planID uint, features []*plan.PlanFeature) []models.PlanFeatureModel

	FeatureToModel(f *plan.Feature) *models.FeatureModel
	FeatureToDomain(model *models.FeatureModel) (*plan.Feature, error)

	SubscriptionToModel(s *plan.Subscription) *models.SubscriptionModel
	SubscriptionToDomain(model *models.SubscriptionModel) (*plan.Subscription, error)

	BillingHistoryToModel(h *plan.BillingHistory) *models.BillingHistoryModel
	BillingHistoryToDomain(model *models.BillingHistoryModel) (*plan.BillingHistory, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToModel(p *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:           p.ID(),
		SID:          p.SID(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price(),
		MinimumUsers: p.MinimumUsers(),
		Active:       p.Active(),
		CreatedAt:    p.CreatedAt().UnixMilli(),
		UpdatedAt:    p.UpdatedAt().UnixMilli(),
	}
}

func (m *PlanMapperImpl) ToDomain(model *models.PlanModel, featureModels []models.PlanFeatureModel) (*plan.Plan, error) {
	features := make([]*plan.PlanFeature, 0, len(featureModels))
	for _, fm := range featureModels {
		features = append(features, plan.ReconstructPlanFeature(fm.FeatureID, fm.HasLimit, fm.MaxLimit))
	}

	p, err := plan.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.Price,
		model.MinimumUsers,
		model.Active,
		features,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan: %w", err)
	}

	return p, nil
}

func (m *PlanMapperImpl) FeatureLinkToModels(planID uint, features []*plan.PlanFeature) []models.PlanFeatureModel {
	featureModels := make([]models.PlanFeatureModel, 0, len(features))
	for _, f := range features {
		featureModels = append(featureModels, models.PlanFeatureModel{
			PlanID:    planID,
			FeatureID: f.FeatureID(),
			HasLimit:  f.HasLimit(),
			MaxLimit:  f.MaxLimit(),
		})
	}
	return featureModels
}

func (m *PlanMapperImpl) FeatureToModel(f *plan.Feature) *models.FeatureModel {
	return &models.FeatureModel{
		ID:        f.ID(),
		Name:      f.Name(),
		Active:    f.Active(),
		Archived:  f.Archived(),
		CreatedAt: f.CreatedAt().UnixMilli(),
		UpdatedAt: f.UpdatedAt().UnixMilli(),
	}
}

func (m *PlanMapperImpl) FeatureToDomain(model *models.FeatureModel) (*plan.Feature, error) {
	f, err := plan.ReconstructFeature(
		model.ID,
		model.Name,
		model.Active,
		model.Archived,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feature: %w", err)
	}

	return f, nil
}

func (m *PlanMapperImpl) SubscriptionToModel(s *plan.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:          s.ID(),
		CompanyID:   s.CompanyID(),
		PlanID:      s.PlanID(),
		Status:      string(s.Status()),
		Users:       s.Users(),
		TotalAmount: s.TotalAmount(),
		NextBilling: s.NextBilling().UnixMilli(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *PlanMapperImpl) SubscriptionToDomain(model *models.SubscriptionModel) (*plan.Subscription, error) {
	s, err := plan.ReconstructSubscription(
		model.ID,
		model.CompanyID,
		model.PlanID,
		plan.SubscriptionStatus(model.Status),
		model.Users,
		model.TotalAmount,
		time.UnixMilli(model.NextBilling),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription: %w", err)
	}

	return s, nil
}

func (m *PlanMapperImpl) BillingHistoryToModel(h *plan.BillingHistory) *models.BillingHistoryModel {
	return &models.BillingHistoryModel{
		ID:        h.ID(),
		CompanyID: h.CompanyID(),
		PlanID:    h.PlanID(),
		InvoiceNo: h.InvoiceNo(),
		Amount:    h.Amount(),
		Status:    string(h.Status()),
		Date:      h.Date().UnixMilli(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

func (m *PlanMapperImpl) BillingHistoryToDomain(model *models.BillingHistoryModel) (*plan.BillingHistory, error) {
	h, err := plan.ReconstructBillingHistory(
		model.ID,
		model.CompanyID,
		model.PlanID,
		model.InvoiceNo,
		model.Amount,
		plan.BillingStatus(model.Status),
		time.UnixMilli(model.Date),
		time.UnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct billing history: %w", err)
	}

	return h, nil
}
