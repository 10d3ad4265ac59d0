package mappers

import (
	"fmt"
	"time"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/infrastructure/persistence/models"
)

// LeavePolicyMapper converts leave policies and their attachment rows.
// Attachments travel separately so the repository can replace them
// wholesale on update.
type LeavePolicyMapper interface {
	ToModel(p *leavepolicy.LeavePolicy) *models.LeavePolicyModel
	ToDomain(
		model *models.LeavePolicyModel,
		branchModels []models.LeavePolicyBranchModel,
		jobRoleModels []models.LeavePolicyJobRoleModel,
		memberModels []models.LeavePolicyMemberModel,
	) (*leavepolicy.LeavePolicy, error)
	BranchToModels(policyID uint, branchIDs []uint) []models.LeavePolicyBranchModel
	JobRoleToModels(policyID uint, jobRoleIDs []uint) []models.LeavePolicyJobRoleModel
	MemberToModels(policyID uint, memberIDs []uint) []models.LeavePolicyMemberModel
}

type LeavePolicyMapperImpl struct{}

func NewLeavePolicyMapper() LeavePolicyMapper {
	return &LeavePolicyMapperImpl{}
}

func (m *LeavePolicyMapperImpl) ToModel(p *leavepolicy.LeavePolicy) *models.LeavePolicyModel {
	return &models.LeavePolicyModel{
		ID:               p.ID(),
		SID:              p.SID(),
		CompanyID:        p.CompanyID(),
		Name:             p.Name(),
		Description:      p.Description(),
		AccrualSchedule:  p.AccrualSchedule(),
		Paid:             p.Paid(),
		RequiresApproval: p.RequiresApproval(),
		AllowNegative:    p.AllowNegative(),
		BalanceRollover:  p.BalanceRollover(),
		AutoAddNewHires:  p.AutoAddNewHires(),
		MaxAccrualHours:  p.MaxAccrualHours(),
		CreatedAt:        p.CreatedAt().UnixMilli(),
		UpdatedAt:        p.UpdatedAt().UnixMilli(),
	}
}

func (m *LeavePolicyMapperImpl) ToDomain(
	model *models.LeavePolicyModel,
	branchModels []models.LeavePolicyBranchModel,
	jobRoleModels []models.LeavePolicyJobRoleModel,
	memberModels []models.LeavePolicyMemberModel,
) (*leavepolicy.LeavePolicy, error) {
	branchIDs := make([]uint, 0, len(branchModels))
	for _, bm := range branchModels {
		branchIDs = append(branchIDs, bm.BranchID)
	}

	jobRoleIDs := make([]uint, 0, len(jobRoleModels))
	for _, jm := range jobRoleModels {
		jobRoleIDs = append(jobRoleIDs, jm.JobRoleID)
	}

	memberIDs := make([]uint, 0, len(memberModels))
	for _, mm := range memberModels {
		memberIDs = append(memberIDs, mm.EmployeeID)
	}

	p, err := leavepolicy.ReconstructLeavePolicy(
		model.ID,
		model.SID,
		model.CompanyID,
		model.Name,
		model.Description,
		model.AccrualSchedule,
		model.Paid,
		model.RequiresApproval,
		model.AllowNegative,
		model.BalanceRollover,
		model.AutoAddNewHires,
		model.MaxAccrualHours,
		branchIDs,
		jobRoleIDs,
		memberIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct leave policy: %w", err)
	}

	return p, nil
}

func (m *LeavePolicyMapperImpl) BranchToModels(policyID uint, branchIDs []uint) []models.LeavePolicyBranchModel {
	branchModels := make([]models.LeavePolicyBranchModel, 0, len(branchIDs))
	for _, branchID := range branchIDs {
		branchModels = append(branchModels, models.LeavePolicyBranchModel{
			PolicyID: policyID,
			BranchID: branchID,
		})
	}
	return branchModels
}

func (m *LeavePolicyMapperImpl) JobRoleToModels(policyID uint, jobRoleIDs []uint) []models.LeavePolicyJobRoleModel {
	jobRoleModels := make([]models.LeavePolicyJobRoleModel, 0, len(jobRoleIDs))
	for _, roleID := range jobRoleIDs {
		jobRoleModels = append(jobRoleModels, models.LeavePolicyJobRoleModel{
			PolicyID:  policyID,
			JobRoleID: roleID,
		})
	}
	return jobRoleModels
}

func (m *LeavePolicyMapperImpl) MemberToModels(policyID uint, memberIDs []uint) []models.LeavePolicyMemberModel {
	memberModels := make([]models.LeavePolicyMemberModel, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		memberModels = append(memberModels, models.LeavePolicyMemberModel{
			PolicyID:   policyID,
			EmployeeID: memberID,
		})
	}
	return memberModels
}
