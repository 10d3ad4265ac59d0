package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	Reference  string `gorm:"uniqueIndex;size:50;not null"`
	Subject    string `gorm:"size:200;not null"`
	Priority   string `gorm:"size:20;not null;index"`
	Status     string `gorm:"size:20;not null;index"`
	CompanyID  uint   `gorm:"not null;index"`
	CreatorID  uint   `gorm:"not null;index"`
	AssigneeID *uint  `gorm:"index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID          uint           `gorm:"primaryKey"`
	TicketID    uint           `gorm:"not null;index"`
	SenderID    uint           `gorm:"not null;index"`
	SenderType  string         `gorm:"size:20;not null"`
	Body        string         `gorm:"type:text;not null"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
