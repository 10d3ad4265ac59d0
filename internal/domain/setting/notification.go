package setting

import (
	"fmt"
	"time"
)

// NotificationSetting is the per-company notification configuration.
// Recipient job roles are child rows replaced wholesale on every
// upsert. Singleton per company.
type NotificationSetting struct {
	id                  uint
	companyID           uint
	rotaAlerts          bool
	timesheetAlerts     bool
	leaveAlerts         bool
	celebrations        bool
	newsUpdates         bool
	emailEnabled        bool
	pushEnabled         bool
	inAppEnabled        bool
	recipientJobRoleIDs []uint
	createdAt           time.Time
	updatedAt           time.Time
}

func NewNotificationSetting(
	companyID uint,
	rotaAlerts bool,
	timesheetAlerts bool,
	leaveAlerts bool,
	celebrations bool,
	newsUpdates bool,
	emailEnabled bool,
	pushEnabled bool,
	inAppEnabled bool,
	recipientJobRoleIDs []uint,
) (*NotificationSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	for _, roleID := range recipientJobRoleIDs {
		if roleID == 0 {
			return nil, fmt.Errorf("recipient job role ID cannot be zero")
		}
	}
	if recipientJobRoleIDs == nil {
		recipientJobRoleIDs = []uint{}
	}

	now := time.Now()

	return &NotificationSetting{
		companyID:           companyID,
		rotaAlerts:          rotaAlerts,
		timesheetAlerts:     timesheetAlerts,
		leaveAlerts:         leaveAlerts,
		celebrations:        celebrations,
		newsUpdates:         newsUpdates,
		emailEnabled:        emailEnabled,
		pushEnabled:         pushEnabled,
		inAppEnabled:        inAppEnabled,
		recipientJobRoleIDs: recipientJobRoleIDs,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructNotificationSetting(
	settingID uint,
	companyID uint,
	rotaAlerts bool,
	timesheetAlerts bool,
	leaveAlerts bool,
	celebrations bool,
	newsUpdates bool,
	emailEnabled bool,
	pushEnabled bool,
	inAppEnabled bool,
	recipientJobRoleIDs []uint,
	createdAt, updatedAt time.Time,
) *NotificationSetting {
	if recipientJobRoleIDs == nil {
		recipientJobRoleIDs = []uint{}
	}

	return &NotificationSetting{
		id:                  settingID,
		companyID:           companyID,
		rotaAlerts:          rotaAlerts,
		timesheetAlerts:     timesheetAlerts,
		leaveAlerts:         leaveAlerts,
		celebrations:        celebrations,
		newsUpdates:         newsUpdates,
		emailEnabled:        emailEnabled,
		pushEnabled:         pushEnabled,
		inAppEnabled:        inAppEnabled,
		recipientJobRoleIDs: recipientJobRoleIDs,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (s *NotificationSetting) ID() uint              { return s.id }
func (s *NotificationSetting) CompanyID() uint       { return s.companyID }
func (s *NotificationSetting) RotaAlerts() bool      { return s.rotaAlerts }
func (s *NotificationSetting) TimesheetAlerts() bool { return s.timesheetAlerts }
func (s *NotificationSetting) LeaveAlerts() bool     { return s.leaveAlerts }
func (s *NotificationSetting) Celebrations() bool    { return s.celebrations }
func (s *NotificationSetting) NewsUpdates() bool     { return s.newsUpdates }
func (s *NotificationSetting) EmailEnabled() bool    { return s.emailEnabled }
func (s *NotificationSetting) PushEnabled() bool     { return s.pushEnabled }
func (s *NotificationSetting) InAppEnabled() bool    { return s.inAppEnabled }
func (s *NotificationSetting) CreatedAt() time.Time  { return s.createdAt }
func (s *NotificationSetting) UpdatedAt() time.Time  { return s.updatedAt }

func (s *NotificationSetting) RecipientJobRoleIDs() []uint {
	idsCopy := make([]uint, len(s.recipientJobRoleIDs))
	copy(idsCopy, s.recipientJobRoleIDs)
	return idsCopy
}

func (s *NotificationSetting) SetID(settingID uint) { s.id = settingID }

// ReplaceRecipients swaps the full set of recipient job roles.
func (s *NotificationSetting) ReplaceRecipients(jobRoleIDs []uint) error {
	for _, roleID := range jobRoleIDs {
		if roleID == 0 {
			return fmt.Errorf("recipient job role ID cannot be zero")
		}
	}
	if jobRoleIDs == nil {
		jobRoleIDs = []uint{}
	}

	s.recipientJobRoleIDs = jobRoleIDs
	s.updatedAt = time.Now()
	return nil
}
