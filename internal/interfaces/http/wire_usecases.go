package http

import (
	authUC "crewhub/internal/application/auth/usecases"
	branchUC "crewhub/internal/application/branch/usecases"
	companyUC "crewhub/internal/application/company/usecases"
	documentUC "crewhub/internal/application/document/usecases"
	employeeUC "crewhub/internal/application/employee/usecases"
	jobroleUC "crewhub/internal/application/jobrole/usecases"
	leavepolicyUC "crewhub/internal/application/leavepolicy/usecases"
	onboardingUC "crewhub/internal/application/onboarding/usecases"
	planUC "crewhub/internal/application/plan/usecases"
	settingUC "crewhub/internal/application/setting/usecases"
	taskUC "crewhub/internal/application/task/usecases"
	ticketUC "crewhub/internal/application/ticket/usecases"
)

type allUseCases struct {
	// Auth
	register     *authUC.RegisterUseCase
	login        *authUC.LoginUseCase
	refreshToken *authUC.RefreshTokenUseCase

	// Company
	getCompany     *companyUC.GetCompanyUseCase
	updateCompany  *companyUC.UpdateCompanyUseCase
	updateBranding *companyUC.UpdateBrandingUseCase

	// Branches
	createBranch      *branchUC.CreateBranchUseCase
	updateBranch      *branchUC.UpdateBranchUseCase
	getBranch         *branchUC.GetBranchUseCase
	listBranches      *branchUC.ListBranchesUseCase
	deleteBranch      *branchUC.DeleteBranchUseCase
	assignEmployees   *branchUC.AssignEmployeesUseCase
	unassignEmployees *branchUC.UnassignEmployeesUseCase

	// Job roles
	createJobRole *jobroleUC.CreateJobRoleUseCase
	updateJobRole *jobroleUC.UpdateJobRoleUseCase
	listJobRoles  *jobroleUC.ListJobRolesUseCase
	deleteJobRole *jobroleUC.DeleteJobRoleUseCase
	assignJobRole *jobroleUC.AssignJobRoleUseCase

	// Onboarding flows
	createOnboardingFlow *onboardingUC.CreateFlowUseCase
	updateOnboardingFlow *onboardingUC.UpdateFlowUseCase
	listOnboardingFlows  *onboardingUC.ListFlowsUseCase
	getOnboardingFlow    *onboardingUC.GetFlowUseCase
	deleteOnboardingFlow *onboardingUC.DeleteFlowUseCase

	// Employees
	createEmployee *employeeUC.CreateEmployeeUseCase
	updateEmployee *employeeUC.UpdateEmployeeUseCase
	getEmployee    *employeeUC.GetEmployeeUseCase
	listEmployees  *employeeUC.ListEmployeesUseCase
	deleteEmployee *employeeUC.DeleteEmployeeUseCase
	inviteEmployee *employeeUC.InviteEmployeeUseCase
	acceptInvite   *employeeUC.AcceptInviteUseCase
	updatePayRates *employeeUC.UpdatePayRatesUseCase

	// Leave policies
	createLeavePolicy *leavepolicyUC.CreateLeavePolicyUseCase
	updateLeavePolicy *leavepolicyUC.UpdateLeavePolicyUseCase
	getLeavePolicy    *leavepolicyUC.GetLeavePolicyUseCase
	listLeavePolicies *leavepolicyUC.ListLeavePoliciesUseCase
	deleteLeavePolicy *leavepolicyUC.DeleteLeavePolicyUseCase

	// Settings
	upsertActivity *settingUC.UpsertActivityTrackingSettingUseCase
	getActivity    *settingUC.GetActivityTrackingSettingUseCase
	upsertBreak    *settingUC.UpsertBreakComplianceSettingUseCase
	getBreak       *settingUC.GetBreakComplianceSettingUseCase
	upsertNotif    *settingUC.UpsertNotificationSettingUseCase
	getNotif       *settingUC.GetNotificationSettingUseCase
	upsertRota     *settingUC.UpsertRotaRuleSettingUseCase
	getRota        *settingUC.GetRotaRuleSettingUseCase
	upsertScreen   *settingUC.UpsertScreenTimeSettingUseCase
	getScreen      *settingUC.GetScreenTimeSettingUseCase
	upsertShift    *settingUC.UpsertShiftSettingUseCase
	getShift       *settingUC.GetShiftSettingUseCase

	// Plans and billing
	createPlan       *planUC.CreatePlanUseCase
	updatePlan       *planUC.UpdatePlanUseCase
	getPlan          *planUC.GetPlanUseCase
	listPlans        *planUC.ListPlansUseCase
	createFeature    *planUC.CreateFeatureUseCase
	listFeatures     *planUC.ListFeaturesUseCase
	getSubscription  *planUC.GetSubscriptionUseCase
	listBilling      *planUC.ListBillingHistoryUseCase
	generateInvoices *planUC.GenerateInvoicesUseCase

	// Tickets
	createTicket       *ticketUC.CreateTicketUseCase
	getTicket          *ticketUC.GetTicketUseCase
	listTickets        *ticketUC.ListTicketsUseCase
	deleteTicket       *ticketUC.DeleteTicketUseCase
	assignTicket       *ticketUC.AssignTicketUseCase
	changeTicketStatus *ticketUC.ChangeStatusUseCase
	sendTicketMessage  *ticketUC.SendMessageUseCase

	// Tasks
	createTask *taskUC.CreateTaskUseCase
	updateTask *taskUC.UpdateTaskUseCase
	getTask    *taskUC.GetTaskUseCase
	listTasks  *taskUC.ListTasksUseCase
	deleteTask *taskUC.DeleteTaskUseCase

	// Documents
	createDocument *documentUC.CreateDocumentUseCase
	updateDocument *documentUC.UpdateDocumentUseCase
	getDocument    *documentUC.GetDocumentUseCase
	listDocuments  *documentUC.ListDocumentsUseCase
	deleteDocument *documentUC.DeleteDocumentUseCase
}

func (c *Container) initUseCases() {
	r := c.repos

	c.ucs = &allUseCases{
		register:     authUC.NewRegisterUseCase(r.company, r.user, r.employee, c.passwordHasher, c.tokenService, c.txManager, c.log),
		login:        authUC.NewLoginUseCase(r.user, r.company, c.passwordHasher, c.tokenService, c.log),
		refreshToken: authUC.NewRefreshTokenUseCase(r.user, r.company, c.tokenService, c.log),

		getCompany:     companyUC.NewGetCompanyUseCase(r.company, r.plan, c.log),
		updateCompany:  companyUC.NewUpdateCompanyUseCase(r.company, r.plan, r.subscription, r.billing, c.txManager, c.log),
		updateBranding: companyUC.NewUpdateBrandingUseCase(r.company, c.fileStorage, c.log),

		createBranch:      branchUC.NewCreateBranchUseCase(r.branch, c.log),
		updateBranch:      branchUC.NewUpdateBranchUseCase(r.branch, c.log),
		getBranch:         branchUC.NewGetBranchUseCase(r.branch),
		listBranches:      branchUC.NewListBranchesUseCase(r.branch, c.log),
		deleteBranch:      branchUC.NewDeleteBranchUseCase(r.branch, c.log),
		assignEmployees:   branchUC.NewAssignEmployeesUseCase(r.branch, r.employee, c.log),
		unassignEmployees: branchUC.NewUnassignEmployeesUseCase(r.branch, c.log),

		createJobRole: jobroleUC.NewCreateJobRoleUseCase(r.jobRole, c.log),
		updateJobRole: jobroleUC.NewUpdateJobRoleUseCase(r.jobRole, c.log),
		listJobRoles:  jobroleUC.NewListJobRolesUseCase(r.jobRole, c.log),
		deleteJobRole: jobroleUC.NewDeleteJobRoleUseCase(r.jobRole, c.log),
		assignJobRole: jobroleUC.NewAssignJobRoleUseCase(r.jobRole, r.employee, c.log),

		createOnboardingFlow: onboardingUC.NewCreateFlowUseCase(r.onboarding, c.log),
		updateOnboardingFlow: onboardingUC.NewUpdateFlowUseCase(r.onboarding, c.log),
		listOnboardingFlows:  onboardingUC.NewListFlowsUseCase(r.onboarding, c.log),
		getOnboardingFlow:    onboardingUC.NewGetFlowUseCase(r.onboarding, c.log),
		deleteOnboardingFlow: onboardingUC.NewDeleteFlowUseCase(r.onboarding, c.log),

		createEmployee: employeeUC.NewCreateEmployeeUseCase(r.employee, c.log),
		updateEmployee: employeeUC.NewUpdateEmployeeUseCase(r.employee, r.jobRole, c.log),
		getEmployee:    employeeUC.NewGetEmployeeUseCase(r.employee),
		listEmployees:  employeeUC.NewListEmployeesUseCase(r.employee, c.log),
		deleteEmployee: employeeUC.NewDeleteEmployeeUseCase(r.employee, c.log),
		inviteEmployee: employeeUC.NewInviteEmployeeUseCase(r.employee, c.emailService, c.log),
		acceptInvite:   employeeUC.NewAcceptInviteUseCase(r.employee, r.user, c.passwordHasher, c.txManager, c.log),
		updatePayRates: employeeUC.NewUpdatePayRatesUseCase(r.employee, c.txManager, c.log),

		createLeavePolicy: leavepolicyUC.NewCreateLeavePolicyUseCase(r.leavePolicy, c.log),
		updateLeavePolicy: leavepolicyUC.NewUpdateLeavePolicyUseCase(r.leavePolicy, c.log),
		getLeavePolicy:    leavepolicyUC.NewGetLeavePolicyUseCase(r.leavePolicy),
		listLeavePolicies: leavepolicyUC.NewListLeavePoliciesUseCase(r.leavePolicy, c.log),
		deleteLeavePolicy: leavepolicyUC.NewDeleteLeavePolicyUseCase(r.leavePolicy, c.log),

		upsertActivity: settingUC.NewUpsertActivityTrackingSettingUseCase(r.setting, c.log),
		getActivity:    settingUC.NewGetActivityTrackingSettingUseCase(r.setting),
		upsertBreak:    settingUC.NewUpsertBreakComplianceSettingUseCase(r.setting, c.log),
		getBreak:       settingUC.NewGetBreakComplianceSettingUseCase(r.setting),
		upsertNotif:    settingUC.NewUpsertNotificationSettingUseCase(r.setting, c.log),
		getNotif:       settingUC.NewGetNotificationSettingUseCase(r.setting),
		upsertRota:     settingUC.NewUpsertRotaRuleSettingUseCase(r.setting, c.log),
		getRota:        settingUC.NewGetRotaRuleSettingUseCase(r.setting),
		upsertScreen:   settingUC.NewUpsertScreenTimeSettingUseCase(r.setting, c.log),
		getScreen:      settingUC.NewGetScreenTimeSettingUseCase(r.setting),
		upsertShift:    settingUC.NewUpsertShiftSettingUseCase(r.setting, c.log),
		getShift:       settingUC.NewGetShiftSettingUseCase(r.setting),

		createPlan:       planUC.NewCreatePlanUseCase(r.plan, c.catalogCache, c.log),
		updatePlan:       planUC.NewUpdatePlanUseCase(r.plan, c.catalogCache, c.log),
		getPlan:          planUC.NewGetPlanUseCase(r.plan),
		listPlans:        planUC.NewListPlansUseCase(r.plan, c.catalogCache, c.log),
		createFeature:    planUC.NewCreateFeatureUseCase(r.plan, c.log),
		listFeatures:     planUC.NewListFeaturesUseCase(r.plan),
		getSubscription:  planUC.NewGetSubscriptionUseCase(r.subscription, r.plan),
		listBilling:      planUC.NewListBillingHistoryUseCase(r.billing, c.log),
		generateInvoices: planUC.NewGenerateInvoicesUseCase(r.subscription, r.billing, c.txManager, c.log),

		createTicket:       ticketUC.NewCreateTicketUseCase(r.ticket, c.txManager, c.log),
		getTicket:          ticketUC.NewGetTicketUseCase(r.ticket, c.log),
		listTickets:        ticketUC.NewListTicketsUseCase(r.ticket, c.log),
		deleteTicket:       ticketUC.NewDeleteTicketUseCase(r.ticket, c.log),
		assignTicket:       ticketUC.NewAssignTicketUseCase(r.ticket, c.log),
		changeTicketStatus: ticketUC.NewChangeStatusUseCase(r.ticket, c.log),
		sendTicketMessage:  ticketUC.NewSendMessageUseCase(r.ticket, c.txManager, c.log),

		createTask: taskUC.NewCreateTaskUseCase(r.task, c.log),
		updateTask: taskUC.NewUpdateTaskUseCase(r.task, c.log),
		getTask:    taskUC.NewGetTaskUseCase(r.task),
		listTasks:  taskUC.NewListTasksUseCase(r.task, c.log),
		deleteTask: taskUC.NewDeleteTaskUseCase(r.task, c.log),

		createDocument: documentUC.NewCreateDocumentUseCase(r.document, c.fileStorage, c.log),
		updateDocument: documentUC.NewUpdateDocumentUseCase(r.document, c.fileStorage, c.log),
		getDocument:    documentUC.NewGetDocumentUseCase(r.document),
		listDocuments:  documentUC.NewListDocumentsUseCase(r.document, c.log),
		deleteDocument: documentUC.NewDeleteDocumentUseCase(r.document, c.fileStorage, c.log),
	}
}
