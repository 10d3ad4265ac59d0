package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/logger"
)

// Resources checked by the permission middleware.
const (
	ResourceCompany     = "company"
	ResourceSetting     = "setting"
	ResourceBranch      = "branch"
	ResourceJobRole     = "job_role"
	ResourceEmployee    = "employee"
	ResourceLeavePolicy = "leave_policy"
	ResourcePlan        = "plan"
	ResourceBilling     = "billing"
	ResourceTicket      = "ticket"
	ResourceTask        = "task"
	ResourceDocument    = "document"
	ResourceOnboarding  = "onboarding"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionManage = "manage" // workflow transitions, assignments
)

// InitPolicies seeds the role policy table. AddPolicy is a no-op for
// policies that already exist, so this is safe to run on every boot.
func InitPolicies(enforcer *casbin.Enforcer, log logger.Interface) error {
	writeActions := []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionManage}
	workspaceResources := []string{
		ResourceSetting, ResourceBranch, ResourceJobRole, ResourceEmployee,
		ResourceLeavePolicy, ResourceTask, ResourceDocument, ResourceTicket,
		ResourceOnboarding,
	}

	var policies [][]string

	// Owners hold every permission in their workspace, including company
	// profile and subscription management.
	for _, res := range workspaceResources {
		for _, act := range writeActions {
			policies = append(policies, []string{constants.RoleOwner, res, act})
		}
	}
	policies = append(policies,
		[]string{constants.RoleOwner, ResourceCompany, ActionRead},
		[]string{constants.RoleOwner, ResourceCompany, ActionUpdate},
		[]string{constants.RoleOwner, ResourcePlan, ActionRead},
		[]string{constants.RoleOwner, ResourcePlan, ActionManage},
		[]string{constants.RoleOwner, ResourceBilling, ActionRead},
	)

	// Admins run day-to-day workforce operations but cannot touch the
	// company profile or the subscription.
	for _, res := range workspaceResources {
		for _, act := range writeActions {
			policies = append(policies, []string{constants.RoleAdmin, res, act})
		}
	}
	policies = append(policies,
		[]string{constants.RoleAdmin, ResourceCompany, ActionRead},
		[]string{constants.RoleAdmin, ResourcePlan, ActionRead},
	)

	// Members see their workspace and raise tickets.
	policies = append(policies,
		[]string{constants.RoleMember, ResourceCompany, ActionRead},
		[]string{constants.RoleMember, ResourceBranch, ActionRead},
		[]string{constants.RoleMember, ResourceJobRole, ActionRead},
		[]string{constants.RoleMember, ResourceEmployee, ActionRead},
		[]string{constants.RoleMember, ResourceLeavePolicy, ActionRead},
		[]string{constants.RoleMember, ResourceTask, ActionRead},
		[]string{constants.RoleMember, ResourceTask, ActionUpdate},
		[]string{constants.RoleMember, ResourceDocument, ActionRead},
		[]string{constants.RoleMember, ResourceOnboarding, ActionRead},
		[]string{constants.RoleMember, ResourceTicket, ActionCreate},
		[]string{constants.RoleMember, ResourceTicket, ActionRead},
	)

	// Support agents work the ticket queue and maintain the plan catalog.
	policies = append(policies,
		[]string{constants.RoleSupportAgent, ResourceTicket, ActionRead},
		[]string{constants.RoleSupportAgent, ResourceTicket, ActionUpdate},
		[]string{constants.RoleSupportAgent, ResourceTicket, ActionManage},
		[]string{constants.RoleSupportAgent, ResourcePlan, ActionCreate},
		[]string{constants.RoleSupportAgent, ResourcePlan, ActionRead},
		[]string{constants.RoleSupportAgent, ResourcePlan, ActionUpdate},
		[]string{constants.RoleSupportAgent, ResourcePlan, ActionManage},
	)

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Error("failed to save permission policies", "error", err)
		return fmt.Errorf("failed to save permission policies: %w", err)
	}

	log.Info("permission policies initialized successfully")
	return nil
}
