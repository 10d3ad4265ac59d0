package models

type OnboardingFlowModel struct {
	ID          uint   `gorm:"primaryKey"`
	SID         string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (OnboardingFlowModel) TableName() string {
	return "onboarding_flows"
}

type OnboardingStepModel struct {
	ID          uint   `gorm:"primaryKey"`
	FlowID      uint   `gorm:"not null;index"`
	StepType    string `gorm:"size:20;not null"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	StepOrder   int    `gorm:"column:step_order;not null"`
	Required    bool   `gorm:"not null;default:true"`
}

func (OnboardingStepModel) TableName() string {
	return "onboarding_steps"
}
