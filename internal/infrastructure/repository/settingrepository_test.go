package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewhub/internal/domain/setting"
	"crewhub/internal/infrastructure/persistence/models"
	apperrors "crewhub/internal/shared/errors"
)

func TestSettingRepository_UpsertShiftSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	t.Run("create on first upsert", func(t *testing.T) {
		s, err := setting.NewShiftSetting(1, true, false, true, 24, true, false)
		require.NoError(t, err)

		err = repo.UpsertShiftSetting(ctx, s)
		assert.NoError(t, err)
		assert.NotZero(t, s.ID())

		found, err := repo.GetShiftSetting(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, found.EnableShiftTrading())
		assert.Equal(t, 24, found.MinTradeNoticeHours())
	})

	t.Run("second upsert updates the same row", func(t *testing.T) {
		first, err := repo.GetShiftSetting(ctx, 1)
		require.NoError(t, err)

		s, err := setting.NewShiftSetting(1, false, false, false, 48, false, true)
		require.NoError(t, err)

		err = repo.UpsertShiftSetting(ctx, s)
		assert.NoError(t, err)
		assert.Equal(t, first.ID(), s.ID())

		found, err := repo.GetShiftSetting(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found.EnableShiftTrading())
		assert.Equal(t, 48, found.MinTradeNoticeHours())

		var count int64
		err = database.Model(&models.ShiftSettingModel{}).Where("company_id = ?", 1).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("companies keep independent settings", func(t *testing.T) {
		s, err := setting.NewShiftSetting(2, true, true, true, 12, true, true)
		require.NoError(t, err)
		require.NoError(t, repo.UpsertShiftSetting(ctx, s))

		found, err := repo.GetShiftSetting(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, 12, found.MinTradeNoticeHours())

		other, err := repo.GetShiftSetting(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 48, other.MinTradeNoticeHours())
	})

	t.Run("get returns not found for unknown company", func(t *testing.T) {
		_, err := repo.GetShiftSetting(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSettingRepository_UpsertBreakComplianceSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	newRule := func(name string, minutes int) *setting.BreakRule {
		rule, err := setting.NewBreakRule(name, minutes, true)
		require.NoError(t, err)
		return rule
	}

	t.Run("create with break rules", func(t *testing.T) {
		s, err := setting.NewBreakComplianceSetting(1, true, setting.BreakGroupingShift, []*setting.BreakRule{
			newRule("Lunch", 60),
			newRule("Coffee", 15),
		})
		require.NoError(t, err)

		err = repo.UpsertBreakComplianceSetting(ctx, s)
		assert.NoError(t, err)

		found, err := repo.GetBreakComplianceSetting(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, found.Enabled())
		assert.Equal(t, setting.BreakGroupingShift, found.Grouping())
		require.Len(t, found.Breaks(), 2)
		assert.Equal(t, "Lunch", found.Breaks()[0].Name())
		assert.Equal(t, 60, found.Breaks()[0].DurationMinutes())
	})

	t.Run("upsert replaces children wholesale", func(t *testing.T) {
		s, err := setting.NewBreakComplianceSetting(1, true, setting.BreakGroupingAll, []*setting.BreakRule{
			newRule("Rest", 30),
		})
		require.NoError(t, err)

		err = repo.UpsertBreakComplianceSetting(ctx, s)
		assert.NoError(t, err)

		found, err := repo.GetBreakComplianceSetting(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, found.Breaks(), 1)
		assert.Equal(t, "Rest", found.Breaks()[0].Name())

		var count int64
		err = database.Model(&models.BreakRuleModel{}).Count(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("upsert with empty rules clears children", func(t *testing.T) {
		s, err := setting.NewBreakComplianceSetting(1, false, setting.BreakGroupingAll, nil)
		require.NoError(t, err)

		err = repo.UpsertBreakComplianceSetting(ctx, s)
		assert.NoError(t, err)

		found, err := repo.GetBreakComplianceSetting(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found.Enabled())
		assert.Empty(t, found.Breaks())
	})
}

func TestSettingRepository_UpsertBreakComplianceSettingIsAtomic(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	lunch, err := setting.NewBreakRule("Lunch", 60, true)
	require.NoError(t, err)
	seeded, err := setting.NewBreakComplianceSetting(1, true, setting.BreakGroupingShift, []*setting.BreakRule{lunch})
	require.NoError(t, err)
	require.NoError(t, repo.UpsertBreakComplianceSetting(ctx, seeded))

	// Swap the child table for a read-only view so replacing the rules
	// fails after the parent row has already been updated.
	require.NoError(t, database.Exec("ALTER TABLE break_rules RENAME TO break_rules_data").Error)
	require.NoError(t, database.Exec("CREATE VIEW break_rules AS SELECT * FROM break_rules_data").Error)

	rest, err := setting.NewBreakRule("Rest", 30, true)
	require.NoError(t, err)
	replacement, err := setting.NewBreakComplianceSetting(1, false, setting.BreakGroupingAll, []*setting.BreakRule{rest})
	require.NoError(t, err)

	err = repo.UpsertBreakComplianceSetting(ctx, replacement)
	require.Error(t, err)

	found, err := repo.GetBreakComplianceSetting(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found.Enabled())
	assert.Equal(t, setting.BreakGroupingShift, found.Grouping())
	require.Len(t, found.Breaks(), 1)
	assert.Equal(t, "Lunch", found.Breaks()[0].Name())
}

func TestSettingRepository_UpsertScreenTimeSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	app, err := setting.NewAppClassification("Figma", "Design", "figma.com", setting.AppKindProductive)
	require.NoError(t, err)

	s, err := setting.NewScreenTimeSetting(1, true, true, false, 12.5, "GBP", 8, 40, []*setting.AppClassification{app})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertScreenTimeSetting(ctx, s))

	found, err := repo.GetScreenTimeSetting(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 12.5, found.BaseHourlyRate())
	assert.Equal(t, "GBP", found.Currency())
	require.Len(t, found.Apps(), 1)
	assert.Equal(t, "Figma", found.Apps()[0].Name())

	// Replacing the catalog drops the old rows.
	other, err := setting.NewAppClassification("YouTube", "Media", "youtube.com", setting.AppKindUnproductive)
	require.NoError(t, err)
	s2, err := setting.NewScreenTimeSetting(1, true, true, true, 15.0, "GBP", 8, 40, []*setting.AppClassification{other})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertScreenTimeSetting(ctx, s2))

	found, err = repo.GetScreenTimeSetting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found.Apps(), 1)
	assert.Equal(t, "YouTube", found.Apps()[0].Name())

	var count int64
	require.NoError(t, database.Model(&models.AppClassificationModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSettingRepository_UpsertNotificationSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	s, err := setting.NewNotificationSetting(1, true, true, false, true, false, true, true, false, []uint{3, 5})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertNotificationSetting(ctx, s))

	found, err := repo.GetNotificationSetting(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found.RotaAlerts())
	assert.Equal(t, []uint{3, 5}, found.RecipientJobRoleIDs())

	s2, err := setting.NewNotificationSetting(1, false, true, true, true, true, true, false, true, []uint{7})
	require.NoError(t, err)
	require.NoError(t, repo.UpsertNotificationSetting(ctx, s2))

	found, err = repo.GetNotificationSetting(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found.RotaAlerts())
	assert.Equal(t, []uint{7}, found.RecipientJobRoleIDs())
}

func TestSettingRepository_UpsertActivityTrackingSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	s, err := setting.NewActivityTrackingSetting(1, true, setting.ScreenshotStandard, 10, false, []uint{11, 12, 13})
	require.NoError(t, err)

	require.NoError(t, repo.UpsertActivityTrackingSetting(ctx, s))

	found, err := repo.GetActivityTrackingSetting(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found.MonitoringEnabled())
	assert.Equal(t, setting.ScreenshotStandard, found.ScreenshotFrequency())
	assert.Equal(t, []uint{11, 12, 13}, found.TrackedEmployeeIDs())

	s2, err := setting.NewActivityTrackingSetting(1, false, setting.ScreenshotNone, 0, true, nil)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertActivityTrackingSetting(ctx, s2))

	found, err = repo.GetActivityTrackingSetting(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found.MonitoringEnabled())
	assert.Empty(t, found.TrackedEmployeeIDs())
}

func TestSettingRepository_UpsertRotaRuleSetting(t *testing.T) {
	database := setupTestDB(t)
	repo := NewSettingRepository(database)
	ctx := context.Background()

	s, err := setting.NewRotaRuleSetting(1, true, 4, 12, 11, 6, 48, 16)
	require.NoError(t, err)

	require.NoError(t, repo.UpsertRotaRuleSetting(ctx, s))

	found, err := repo.GetRotaRuleSetting(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, found.MinShiftHours())
	assert.Equal(t, 48, found.MaxWeeklyHours())

	s2, err := setting.NewRotaRuleSetting(1, false, 6, 10, 12, 5, 40, 20)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertRotaRuleSetting(ctx, s2))

	found, err = repo.GetRotaRuleSetting(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, found.MinShiftHours())
	assert.Equal(t, 40, found.MaxWeeklyHours())
	assert.Equal(t, s.ID(), s2.ID())
}
