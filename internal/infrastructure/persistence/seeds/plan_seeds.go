package seeds

import (
	"gorm.io/gorm"

	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/id"
)

// SeedPlanCatalog seeds the default plan catalog. Existing plans are
// matched by name so reruns are idempotent.
func SeedPlanCatalog(db *gorm.DB) error {
	features := []models.FeatureModel{
		{Name: "time_tracking", Active: true},
		{Name: "screenshots", Active: true},
		{Name: "leave_management", Active: true},
		{Name: "document_storage", Active: true},
		{Name: "priority_support", Active: true},
	}

	featureIDs := make(map[string]uint, len(features))
	for _, feature := range features {
		if err := db.Where(models.FeatureModel{Name: feature.Name}).
			FirstOrCreate(&feature).Error; err != nil {
			return err
		}
		featureIDs[feature.Name] = feature.ID
	}

	limit := func(n int) *int { return &n }

	plans := []struct {
		model    models.PlanModel
		features []models.PlanFeatureModel
	}{
		{
			model: models.PlanModel{
				Name:         "Starter",
				Description:  "Core workforce management for small teams",
				Price:        4.0,
				MinimumUsers: 1,
				Active:       true,
			},
			features: []models.PlanFeatureModel{
				{FeatureID: featureIDs["time_tracking"], HasLimit: false},
				{FeatureID: featureIDs["leave_management"], HasLimit: false},
				{FeatureID: featureIDs["document_storage"], HasLimit: true, MaxLimit: limit(100)},
			},
		},
		{
			model: models.PlanModel{
				Name:         "Growth",
				Description:  "Full tracking and compliance tooling",
				Price:        9.0,
				MinimumUsers: 5,
				Active:       true,
			},
			features: []models.PlanFeatureModel{
				{FeatureID: featureIDs["time_tracking"], HasLimit: false},
				{FeatureID: featureIDs["screenshots"], HasLimit: false},
				{FeatureID: featureIDs["leave_management"], HasLimit: false},
				{FeatureID: featureIDs["document_storage"], HasLimit: true, MaxLimit: limit(1000)},
			},
		},
		{
			model: models.PlanModel{
				Name:         "Enterprise",
				Description:  "Everything, with priority support",
				Price:        15.0,
				MinimumUsers: 20,
				Active:       true,
			},
			features: []models.PlanFeatureModel{
				{FeatureID: featureIDs["time_tracking"], HasLimit: false},
				{FeatureID: featureIDs["screenshots"], HasLimit: false},
				{FeatureID: featureIDs["leave_management"], HasLimit: false},
				{FeatureID: featureIDs["document_storage"], HasLimit: false},
				{FeatureID: featureIDs["priority_support"], HasLimit: false},
			},
		},
	}

	for _, p := range plans {
		var existing models.PlanModel
		err := db.Where("name = ?", p.model.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		p.model.SID = id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength)
		if err := db.Create(&p.model).Error; err != nil {
			return err
		}

		for _, pf := range p.features {
			pf.PlanID = p.model.ID
			if err := db.Create(&pf).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
