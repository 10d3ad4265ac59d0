package http

import (
	"crewhub/internal/domain/branch"
	"crewhub/internal/domain/company"
	"crewhub/internal/domain/document"
	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/jobrole"
	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/domain/onboarding"
	"crewhub/internal/domain/plan"
	"crewhub/internal/domain/setting"
	"crewhub/internal/domain/task"
	"crewhub/internal/domain/ticket"
	"crewhub/internal/domain/user"
	"crewhub/internal/infrastructure/repository"
)

// repositories groups every persistence port behind its domain interface
// so use cases never see gorm.
type repositories struct {
	user         user.Repository
	company      company.Repository
	branch       branch.Repository
	jobRole      jobrole.Repository
	employee     employee.Repository
	leavePolicy  leavepolicy.Repository
	setting      setting.Repository
	plan         plan.Repository
	subscription plan.SubscriptionRepository
	billing      plan.BillingHistoryRepository
	ticket       ticket.Repository
	onboarding   onboarding.Repository
	task         task.Repository
	document     document.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		user:         repository.NewUserRepository(c.db),
		company:      repository.NewCompanyRepository(c.db),
		branch:       repository.NewBranchRepository(c.db),
		jobRole:      repository.NewJobRoleRepository(c.db),
		employee:     repository.NewEmployeeRepository(c.db),
		leavePolicy:  repository.NewLeavePolicyRepository(c.db),
		setting:      repository.NewSettingRepository(c.db),
		plan:         repository.NewPlanRepository(c.db),
		subscription: repository.NewSubscriptionRepository(c.db),
		billing:      repository.NewBillingHistoryRepository(c.db),
		ticket:       repository.NewTicketRepository(c.db),
		onboarding:   repository.NewOnboardingRepository(c.db),
		task:         repository.NewTaskRepository(c.db),
		document:     repository.NewDocumentRepository(c.db),
	}
}
