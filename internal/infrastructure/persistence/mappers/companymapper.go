package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"crewhub/internal/domain/company"
	"crewhub/internal/infrastructure/persistence/models"
)

// CompanyMapper handles the conversion between Company domain entities and persistence models.
type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	model := &models.CompanyModel{
		ID:          c.ID(),
		SID:         c.SID(),
		Name:        c.Name(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		Address:     c.Address(),
		Website:     c.Website(),
		LogoURL:     c.LogoURL(),
		BannerURL:   c.BannerURL(),
		DateFormat:  c.DateFormat(),
		PlanID:      c.PlanID(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}

	if days := c.WeeklyOff(); len(days) > 0 {
		daysJSON, _ := json.Marshal(days)
		model.WeeklyOff = datatypes.JSON(daysJSON)
	}

	return model
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	var weeklyOff []string
	if len(model.WeeklyOff) > 0 {
		if err := json.Unmarshal(model.WeeklyOff, &weeklyOff); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weekly off days: %w", err)
		}
	}

	c, err := company.ReconstructCompany(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.PhoneNumber,
		model.Address,
		model.Website,
		model.LogoURL,
		model.BannerURL,
		model.DateFormat,
		weeklyOff,
		model.PlanID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct company: %w", err)
	}

	return c, nil
}
