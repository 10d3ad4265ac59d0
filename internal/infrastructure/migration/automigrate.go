package migration

import (
	"crewhub/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
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
		&models.TaskAssignmentModel{},
		&models.DocumentModel{},
		&models.OnboardingFlowModel{},
		&models.OnboardingStepModel{},
	}
}
