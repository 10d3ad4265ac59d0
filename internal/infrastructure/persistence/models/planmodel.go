package models

type PlanModel struct {
	ID           uint    `gorm:"primaryKey"`
	SID          string  `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name         string  `gorm:"size:100;not null"`
	Description  string  `gorm:"size:500"`
	Price        float64 `gorm:"not null;default:0"`
	MinimumUsers int     `gorm:"not null;default:1"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (PlanModel) TableName() string {
	return "plans"
}

type FeatureModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	Active    bool   `gorm:"not null;default:true"`
	Archived  bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (FeatureModel) TableName() string {
	return "features"
}

// PlanFeatureModel links a plan to a feature. Links are replaced
// wholesale when a plan is updated.
type PlanFeatureModel struct {
	ID        uint `gorm:"primaryKey"`
	PlanID    uint `gorm:"not null;index:idx_plan_feature,unique"`
	FeatureID uint `gorm:"not null;index:idx_plan_feature,unique"`
	HasLimit  bool `gorm:"not null;default:false"`
	MaxLimit  *int
}

func (PlanFeatureModel) TableName() string {
	return "plan_features"
}

type SubscriptionModel struct {
	ID          uint    `gorm:"primaryKey"`
	CompanyID   uint    `gorm:"uniqueIndex;not null"`
	PlanID      uint    `gorm:"not null;index"`
	Status      string  `gorm:"size:20;not null;index"`
	Users       int     `gorm:"not null;default:1"`
	TotalAmount float64 `gorm:"not null;default:0"`
	NextBilling int64   `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

type BillingHistoryModel struct {
	ID        uint    `gorm:"primaryKey"`
	CompanyID uint    `gorm:"not null;index"`
	PlanID    uint    `gorm:"not null;index"`
	InvoiceNo string  `gorm:"uniqueIndex;size:50;not null"`
	Amount    float64 `gorm:"not null;default:0"`
	Status    string  `gorm:"size:20;not null"`
	Date      int64   `gorm:"not null"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (BillingHistoryModel) TableName() string {
	return "billing_histories"
}
