package models

type BranchModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Address     string `gorm:"size:500"`
	CountryCode string `gorm:"size:2"`
	ManagerID   *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BranchModel) TableName() string {
	return "branches"
}

// EmployeeBranchModel is the membership row linking an employee to a
// branch. Deleting a branch removes its rows.
type EmployeeBranchModel struct {
	ID         uint `gorm:"primaryKey"`
	BranchID   uint `gorm:"not null;index:idx_branch_employee,unique"`
	EmployeeID uint `gorm:"not null;index:idx_branch_employee,unique"`
}

func (EmployeeBranchModel) TableName() string {
	return "employee_branches"
}

type JobRoleModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	Color     string `gorm:"size:20"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (JobRoleModel) TableName() string {
	return "job_roles"
}

type EmployeeModel struct {
	ID              uint    `gorm:"primaryKey"`
	SID             string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID       uint    `gorm:"not null;index:idx_company_email,unique"`
	UserID          *uint   `gorm:"index"`
	FirstName       string  `gorm:"size:100;not null"`
	LastName        string  `gorm:"size:100"`
	Email           string  `gorm:"size:255;not null;index:idx_company_email,unique"`
	PhoneNumber     string  `gorm:"size:50"`
	Timezone        string  `gorm:"size:50"`
	CountryCode     string  `gorm:"size:2"`
	CurrencyCode    string  `gorm:"size:3"`
	PayRate         float64 `gorm:"not null;default:0"`
	WeeklyHours     int     `gorm:"not null;default:0"`
	AnnualLeaveDays int     `gorm:"not null;default:0"`
	JobRoleID       *uint   `gorm:"index"`
	InviteToken     string  `gorm:"size:64;index"`
	InviteAccepted  bool    `gorm:"not null;default:false"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID    uint   `gorm:"not null;index"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null"`
	Active       bool   `gorm:"not null;default:true"`
	LastLoginAt  *int64
	CreatedAt    int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
