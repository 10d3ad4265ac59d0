package models

type DocumentModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	CompanyID  uint   `gorm:"not null;index"`
	EmployeeID *uint  `gorm:"index"`
	Title      string `gorm:"size:200;not null"`
	Type       string `gorm:"size:20;not null"`
	Content    string `gorm:"type:text"`
	FileURL    string `gorm:"size:500"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
