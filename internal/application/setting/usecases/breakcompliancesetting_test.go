package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/setting"
	"crewhub/internal/shared/errors"
)

func TestUpsertBreakComplianceSettingUseCase_Execute(t *testing.T) {
	t.Run("persists setting with break rules", func(t *testing.T) {
		var saved *setting.BreakComplianceSetting
		repo := &mockSettingRepository{
			UpsertBreakComplianceSettingFunc: func(ctx context.Context, s *setting.BreakComplianceSetting) error {
				saved = s
				return nil
			},
		}

		uc := NewUpsertBreakComplianceSettingUseCase(repo, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpsertBreakComplianceSettingCommand{
			CompanyID: 7,
			Enabled:   true,
			Grouping:  "SHIFT",
			Breaks: []BreakRuleInput{
				{Name: "Lunch", DurationMinutes: 45, Active: true},
				{Name: "Coffee", DurationMinutes: 15, Active: false},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(7), result.CompanyID())
		assert.True(t, result.Enabled())
		assert.Equal(t, setting.BreakGroupingShift, result.Grouping())
		require.Len(t, result.Breaks(), 2)
		assert.Equal(t, "Lunch", result.Breaks()[0].Name())
		assert.Equal(t, 45, result.Breaks()[0].DurationMinutes())
		assert.False(t, result.Breaks()[1].Active())
	})

	t.Run("defaults grouping when empty", func(t *testing.T) {
		uc := NewUpsertBreakComplianceSettingUseCase(&mockSettingRepository{}, &mockLogger{})
		result, err := uc.Execute(context.Background(), UpsertBreakComplianceSettingCommand{
			CompanyID: 7,
			Enabled:   false,
		})

		require.NoError(t, err)
		assert.Equal(t, setting.BreakGroupingAll, result.Grouping())
		assert.Empty(t, result.Breaks())
	})

	t.Run("rejects invalid break rule", func(t *testing.T) {
		repo := &mockSettingRepository{
			UpsertBreakComplianceSettingFunc: func(ctx context.Context, s *setting.BreakComplianceSetting) error {
				t.Fatal("repository should not be called for invalid input")
				return nil
			},
		}

		uc := NewUpsertBreakComplianceSettingUseCase(repo, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpsertBreakComplianceSettingCommand{
			CompanyID: 7,
			Grouping:  "SHIFT",
			Breaks:    []BreakRuleInput{{Name: "", DurationMinutes: 30, Active: true}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects missing company", func(t *testing.T) {
		uc := NewUpsertBreakComplianceSettingUseCase(&mockSettingRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), UpsertBreakComplianceSettingCommand{Grouping: "ALL"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetBreakComplianceSettingUseCase_Execute(t *testing.T) {
	t.Run("returns stored setting", func(t *testing.T) {
		stored, err := setting.NewBreakComplianceSetting(7, true, setting.BreakGroupingCustom, nil)
		require.NoError(t, err)

		repo := &mockSettingRepository{
			GetBreakComplianceSettingFunc: func(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error) {
				assert.Equal(t, uint(7), companyID)
				return stored, nil
			},
		}

		uc := NewGetBreakComplianceSettingUseCase(repo)
		result, err := uc.Execute(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, setting.BreakGroupingCustom, result.Grouping())
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &mockSettingRepository{
			GetBreakComplianceSettingFunc: func(ctx context.Context, companyID uint) (*setting.BreakComplianceSetting, error) {
				return nil, errors.NewNotFoundError("break compliance setting not found")
			},
		}

		uc := NewGetBreakComplianceSettingUseCase(repo)
		_, err := uc.Execute(context.Background(), 99)

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
