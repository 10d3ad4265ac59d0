package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/user"
	"crewhub/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		SID:          u.SID(),
		CompanyID:    u.CompanyID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		Active:       u.Active(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}

	if u.LastLoginAt() != nil {
		lastLogin := u.LastLoginAt().UnixMilli()
		model.LastLoginAt = &lastLogin
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var lastLoginAt *time.Time
	if model.LastLoginAt != nil {
		t := time.UnixMilli(*model.LastLoginAt)
		lastLoginAt = &t
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.SID,
		model.CompanyID,
		model.Email,
		model.PasswordHash,
		model.Role,
		model.Active,
		lastLoginAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}

	return u, nil
}
