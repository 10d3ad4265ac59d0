package models

import "gorm.io/datatypes"

type CompanyModel struct {
	ID          uint           `gorm:"primaryKey"`
	SID         string         `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Name        string         `gorm:"size:150;not null"`
	Email       string         `gorm:"size:255;not null"`
	PhoneNumber string         `gorm:"size:50"`
	Address     string         `gorm:"size:500"`
	Website     string         `gorm:"size:255"`
	LogoURL     string         `gorm:"size:500"`
	BannerURL   string         `gorm:"size:500"`
	DateFormat  string         `gorm:"size:20"`
	WeeklyOff   datatypes.JSON `gorm:"type:json"`
	PlanID      *uint          `gorm:"index"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CompanyModel) TableName() string {
	return "companies"
}
