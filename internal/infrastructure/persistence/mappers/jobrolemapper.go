package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/jobrole"
	"crewhub/internal/infrastructure/persistence/models"
)

type JobRoleMapper interface {
	ToModel(r *jobrole.JobRole) *models.JobRoleModel
	ToDomain(model *models.JobRoleModel) (*jobrole.JobRole, error)
}

type JobRoleMapperImpl struct{}

func NewJobRoleMapper() JobRoleMapper {
	return &JobRoleMapperImpl{}
}

func (m *JobRoleMapperImpl) ToModel(r *jobrole.JobRole) *models.JobRoleModel {
	return &models.JobRoleModel{
		ID:        r.ID(),
		SID:       r.SID(),
		CompanyID: r.CompanyID(),
		Name:      r.Name(),
		Color:     r.Color(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *JobRoleMapperImpl) ToDomain(model *models.JobRoleModel) (*jobrole.JobRole, error) {
	r, err := jobrole.ReconstructJobRole(
		model.ID,
		model.SID,
		model.CompanyID,
		model.Name,
		model.Color,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct job role: %w", err)
	}

	return r, nil
}
