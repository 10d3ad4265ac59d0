package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/branch"
	"crewhub/internal/infrastructure/persistence/models"
)

type BranchMapper interface {
	ToModel(b *branch.Branch) *models.BranchModel
	ToDomain(model *models.BranchModel) (*branch.Branch, error)
}

type BranchMapperImpl struct{}

func NewBranchMapper() BranchMapper {
	return &BranchMapperImpl{}
}

func (m *BranchMapperImpl) ToModel(b *branch.Branch) *models.BranchModel {
	return &models.BranchModel{
		ID:          b.ID(),
		SID:         b.SID(),
		CompanyID:   b.CompanyID(),
		Name:        b.Name(),
		Address:     b.Address(),
		CountryCode: b.CountryCode(),
		ManagerID:   b.ManagerID(),
		CreatedAt:   b.CreatedAt().UnixMilli(),
		UpdatedAt:   b.UpdatedAt().UnixMilli(),
	}
}

func (m *BranchMapperImpl) ToDomain(model *models.BranchModel) (*branch.Branch, error) {
	b, err := branch.ReconstructBranch(
		model.ID,
		model.SID,
		model.CompanyID,
		model.Name,
		model.Address,
		model.CountryCode,
		model.ManagerID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct branch: %w", err)
	}

	return b, nil
}
