package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/onboarding"
	"crewhub/internal/infrastructure/persistence/models"
)

type OnboardingMapper interface {
	FlowToModel(f *onboarding.Flow) *models.OnboardingFlowModel
	StepsToModels(flowID uint, steps []*onboarding.Step) []models.OnboardingStepModel
	FlowToDomain(model *models.OnboardingFlowModel, stepModels []models.OnboardingStepModel) (*onboarding.Flow, error)
}

type OnboardingMapperImpl struct{}

func NewOnboardingMapper() OnboardingMapper {
	return &OnboardingMapperImpl{}
}

func (m *OnboardingMapperImpl) FlowToModel(f *onboarding.Flow) *models.OnboardingFlowModel {
	return &models.OnboardingFlowModel{
		ID:          f.ID(),
		SID:         f.SID(),
		CompanyID:   f.CompanyID(),
		Name:        f.Name(),
		Description: f.Description(),
		Active:      f.Active(),
		CreatedAt:   f.CreatedAt().UnixMilli(),
		UpdatedAt:   f.UpdatedAt().UnixMilli(),
	}
}

func (m *OnboardingMapperImpl) StepsToModels(flowID uint, steps []*onboarding.Step) []models.OnboardingStepModel {
	stepModels := make([]models.OnboardingStepModel, 0, len(steps))
	for _, s := range steps {
		stepModels = append(stepModels, models.OnboardingStepModel{
			FlowID:      flowID,
			StepType:    string(s.Type()),
			Title:       s.Title(),
			Description: s.Description(),
			StepOrder:   s.Order(),
			Required:    s.Required(),
		})
	}
	return stepModels
}

func (m *OnboardingMapperImpl) FlowToDomain(model *models.OnboardingFlowModel, stepModels []models.OnboardingStepModel) (*onboarding.Flow, error) {
	steps := make([]*onboarding.Step, 0, len(stepModels))
	for i := range stepModels {
		sm := &stepModels[i]
		steps = append(steps, onboarding.ReconstructStep(
			sm.ID,
			sm.FlowID,
			onboarding.StepType(sm.StepType),
			sm.Title,
			sm.Description,
			sm.StepOrder,
			sm.Required,
		))
	}

	f, err := onboarding.ReconstructFlow(
		model.ID,
		model.SID,
		model.CompanyID,
		model.Name,
		model.Description,
		model.Active,
		steps,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct onboarding flow: %w", err)
	}

	return f, nil
}
