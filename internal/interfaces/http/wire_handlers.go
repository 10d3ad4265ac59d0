package http

import (
	"crewhub/internal/interfaces/http/handlers"
)

type allHandlers struct {
	auth        *handlers.AuthHandler
	company     *handlers.CompanyHandler
	setting     *handlers.SettingHandler
	branch      *handlers.BranchHandler
	jobRole     *handlers.JobRoleHandler
	onboarding  *handlers.OnboardingHandler
	employee    *handlers.EmployeeHandler
	leavePolicy *handlers.LeavePolicyHandler
	plan        *handlers.PlanHandler
	ticket      *handlers.TicketHandler
	task        *handlers.TaskHandler
	document    *handlers.DocumentHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		auth: handlers.NewAuthHandler(u.register, u.login, u.refreshToken, c.log),
		company: handlers.NewCompanyHandler(
			u.getCompany, u.updateCompany, u.updateBranding, c.log),
		setting: handlers.NewSettingHandler(
			u.upsertActivity, u.getActivity,
			u.upsertBreak, u.getBreak,
			u.upsertNotif, u.getNotif,
			u.upsertRota, u.getRota,
			u.upsertScreen, u.getScreen,
			u.upsertShift, u.getShift,
			c.log),
		branch: handlers.NewBranchHandler(
			u.createBranch, u.updateBranch, u.getBranch, u.listBranches,
			u.deleteBranch, u.assignEmployees, u.unassignEmployees, c.log),
		jobRole: handlers.NewJobRoleHandler(
			u.createJobRole, u.updateJobRole, u.listJobRoles,
			u.deleteJobRole, u.assignJobRole, c.log),
		onboarding: handlers.NewOnboardingHandler(
			u.createOnboardingFlow, u.updateOnboardingFlow, u.listOnboardingFlows,
			u.getOnboardingFlow, u.deleteOnboardingFlow, c.log),
		employee: handlers.NewEmployeeHandler(
			u.createEmployee, u.updateEmployee, u.getEmployee, u.listEmployees,
			u.deleteEmployee, u.inviteEmployee, u.acceptInvite, u.updatePayRates, c.log),
		leavePolicy: handlers.NewLeavePolicyHandler(
			u.createLeavePolicy, u.updateLeavePolicy, u.getLeavePolicy,
			u.listLeavePolicies, u.deleteLeavePolicy, c.log),
		plan: handlers.NewPlanHandler(
			u.createPlan, u.updatePlan, u.getPlan, u.listPlans,
			u.createFeature, u.listFeatures, u.getSubscription, u.listBilling, c.log),
		ticket: handlers.NewTicketHandler(
			u.createTicket, u.getTicket, u.listTickets, u.deleteTicket,
			u.assignTicket, u.changeTicketStatus, u.sendTicketMessage, c.log),
		task: handlers.NewTaskHandler(
			u.createTask, u.updateTask, u.getTask, u.listTasks, u.deleteTask, c.log),
		document: handlers.NewDocumentHandler(
			u.createDocument, u.updateDocument, u.getDocument,
			u.listDocuments, u.deleteDocument, c.log),
	}
}
