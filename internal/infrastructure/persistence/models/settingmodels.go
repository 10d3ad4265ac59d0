package models

// Settings are per-company singletons. The unique index on CompanyID
// is what makes the upsert-by-tenant-key pattern safe: a second create
// for the same company fails instead of inserting a duplicate row.

type ShiftSettingModel struct {
	ID                   uint  `gorm:"primaryKey"`
	CompanyID            uint  `gorm:"uniqueIndex;not null"`
	EnableShiftTrading   bool  `gorm:"not null;default:false"`
	TradesAcrossBranches bool  `gorm:"not null;default:false"`
	TradesAcrossRoles    bool  `gorm:"not null;default:false"`
	MinTradeNoticeHours  int   `gorm:"not null;default:0"`
	EnableOpenShifts     bool  `gorm:"not null;default:false"`
	AllowAdminOverride   bool  `gorm:"not null;default:false"`
	CreatedAt            int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ShiftSettingModel) TableName() string {
	return "shift_settings"
}

type RotaRuleSettingModel struct {
	ID                     uint  `gorm:"primaryKey"`
	CompanyID              uint  `gorm:"uniqueIndex;not null"`
	AllowMemberSwaps       bool  `gorm:"not null;default:false"`
	MinShiftHours          int   `gorm:"not null;default:1"`
	MaxShiftHours          int   `gorm:"not null;default:12"`
	MinRestHoursBetween    int   `gorm:"not null;default:0"`
	MaxConsecutiveWorkdays int   `gorm:"not null;default:6"`
	MaxWeeklyHours         int   `gorm:"not null;default:48"`
	MinWeeklyHours         int   `gorm:"not null;default:0"`
	CreatedAt              int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt              int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (RotaRuleSettingModel) TableName() string {
	return "rota_rule_settings"
}

type BreakComplianceSettingModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"uniqueIndex;not null"`
	Enabled   bool   `gorm:"not null;default:false"`
	Grouping  string `gorm:"size:20;not null;default:'ALL'"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BreakComplianceSettingModel) TableName() string {
	return "break_compliance_settings"
}

type BreakRuleModel struct {
	ID              uint   `gorm:"primaryKey"`
	SettingID       uint   `gorm:"not null;index"`
	Name            string `gorm:"size:100;not null"`
	DurationMinutes int    `gorm:"not null"`
	Active          bool   `gorm:"not null;default:true"`
}

func (BreakRuleModel) TableName() string {
	return "break_rules"
}

type ScreenTimeSettingModel struct {
	ID                  uint    `gorm:"primaryKey"`
	CompanyID           uint    `gorm:"uniqueIndex;not null"`
	EnableTimeTracking  bool    `gorm:"not null;default:false"`
	ProductivityEnabled bool    `gorm:"not null;default:false"`
	EnableOvertime      bool    `gorm:"not null;default:false"`
	BaseHourlyRate      float64 `gorm:"not null;default:0"`
	Currency            string  `gorm:"size:3;not null;default:'GBP'"`
	StandardDailyHours  int     `gorm:"not null;default:8"`
	StandardWeeklyHours int     `gorm:"not null;default:40"`
	CreatedAt           int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ScreenTimeSettingModel) TableName() string {
	return "screen_time_settings"
}

type AppClassificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	SettingID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	Category  string `gorm:"size:100"`
	URL       string `gorm:"size:500"`
	Kind      string `gorm:"size:20;not null;default:'PRODUCTIVE'"`
}

func (AppClassificationModel) TableName() string {
	return "app_classifications"
}

type NotificationSettingModel struct {
	ID              uint  `gorm:"primaryKey"`
	CompanyID       uint  `gorm:"uniqueIndex;not null"`
	RotaAlerts      bool  `gorm:"not null;default:false"`
	TimesheetAlerts bool  `gorm:"not null;default:false"`
	LeaveAlerts     bool  `gorm:"not null;default:false"`
	Celebrations    bool  `gorm:"not null;default:false"`
	NewsUpdates     bool  `gorm:"not null;default:false"`
	EmailEnabled    bool  `gorm:"not null;default:false"`
	PushEnabled     bool  `gorm:"not null;default:false"`
	InAppEnabled    bool  `gorm:"not null;default:false"`
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (NotificationSettingModel) TableName() string {
	return "notification_settings"
}

type NotificationRecipientModel struct {
	ID        uint `gorm:"primaryKey"`
	SettingID uint `gorm:"not null;index"`
	JobRoleID uint `gorm:"not null;index"`
}

func (NotificationRecipientModel) TableName() string {
	return "notification_recipients"
}

type ActivityTrackingSettingModel struct {
	ID                        uint   `gorm:"primaryKey"`
	CompanyID                 uint   `gorm:"uniqueIndex;not null"`
	MonitoringEnabled         bool   `gorm:"not null;default:false"`
	ScreenshotFrequency       string `gorm:"size:20;not null;default:'NONE'"`
	ScreenshotIntervalMinutes int    `gorm:"not null;default:30"`
	ManagerDeleteScreenshots  bool   `gorm:"not null;default:false"`
	CreatedAt                 int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt                 int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ActivityTrackingSettingModel) TableName() string {
	return "activity_tracking_settings"
}

type TrackedEmployeeModel struct {
	ID         uint `gorm:"primaryKey"`
	SettingID  uint `gorm:"not null;index"`
	EmployeeID uint `gorm:"not null;index"`
}

func (TrackedEmployeeModel) TableName() string {
	return "activity_tracking_employees"
}
