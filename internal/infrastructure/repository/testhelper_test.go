package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crewhub/internal/infrastructure/persistence/models"
	"crewhub/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.CompanyModel{},
		&models.UserModel{},
		&models.BranchModel{},
		&models.EmployeeBranchModel{},
		&models.JobRoleModel{},
		&models.EmployeeModel{},
		&models.ShiftSettingModel{},
		&models.RotaRuleSettingModel{},
		&models.BreakComplianceSettingModel{},
		&models.BreakRuleModel{},
		&models.ScreenTimeSettingModel{},
		&models.AppClassificationModel{},
		&models.NotificationSettingModel{},
		&models.NotificationRecipientModel{},
		&models.ActivityTrackingSettingModel{},
		&models.TrackedEmployeeModel{},
		&models.LeavePolicyModel{},
		&models.LeavePolicyBranchModel{},
		&models.LeavePolicyJobRoleModel{},
		&models.LeavePolicyMemberModel{},
		&models.PlanModel{},
		&models.FeatureModel{},
		&models.PlanFeatureModel{},
		&models.SubscriptionModel{},
		&models.BillingHistoryModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.TaskModel{},
		&models.DocumentModel{},
		&models.OnboardingFlowModel{},
		&models.OnboardingStepModel{},
	)
	require.NoError(t, err)

	return database
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
