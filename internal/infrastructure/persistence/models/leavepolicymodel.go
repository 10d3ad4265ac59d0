package models

type LeavePolicyModel struct {
	ID               uint   `gorm:"primaryKey"`
	SID              string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID        uint   `gorm:"not null;index"`
	Name             string `gorm:"size:100;not null"`
	Description      string `gorm:"size:500"`
	AccrualSchedule  string `gorm:"size:50;not null"`
	Paid             bool   `gorm:"not null;default:true"`
	RequiresApproval bool   `gorm:"not null;default:true"`
	AllowNegative    bool   `gorm:"not null;default:false"`
	BalanceRollover  bool   `gorm:"not null;default:false"`
	AutoAddNewHires  bool   `gorm:"not null;default:false"`
	MaxAccrualHours  int    `gorm:"not null;default:0"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (LeavePolicyModel) TableName() string {
	return "leave_policies"
}

// Attachment rows are replaced wholesale when a policy is updated.

type LeavePolicyBranchModel struct {
	ID       uint `gorm:"primaryKey"`
	PolicyID uint `gorm:"not null;index"`
	BranchID uint `gorm:"not null;index"`
}

func (LeavePolicyBranchModel) TableName() string {
	return "leave_policy_branches"
}

type LeavePolicyJobRoleModel struct {
	ID        uint `gorm:"primaryKey"`
	PolicyID  uint `gorm:"not null;index"`
	JobRoleID uint `gorm:"not null;index"`
}

func (LeavePolicyJobRoleModel) TableName() string {
	return "leave_policy_job_roles"
}

type LeavePolicyMemberModel struct {
	ID         uint `gorm:"primaryKey"`
	PolicyID   uint `gorm:"not null;index"`
	EmployeeID uint `gorm:"not null;index"`
}

func (LeavePolicyMemberModel) TableName() string {
	return "leave_policy_members"
}
