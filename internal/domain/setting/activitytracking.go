package setting

import (
	"fmt"
	"time"
)

type ScreenshotFrequency string

const (
	ScreenshotNone     ScreenshotFrequency = "NONE"
	ScreenshotLow      ScreenshotFrequency = "LOW"
	ScreenshotStandard ScreenshotFrequency = "STANDARD"
	ScreenshotHigh     ScreenshotFrequency = "HIGH"
)

func (f ScreenshotFrequency) IsValid() bool {
	switch f {
	case ScreenshotNone, ScreenshotLow, ScreenshotStandard, ScreenshotHigh:
		return true
	}
	return false
}

// ActivityTrackingSetting is the per-company monitoring configuration.
// Tracked employees are child rows replaced wholesale on every upsert.
// Singleton per company.
type ActivityTrackingSetting struct {
	id                        uint
	companyID                 uint
	monitoringEnabled         bool
	screenshotFrequency       ScreenshotFrequency
	screenshotIntervalMinutes int
	managerDeleteScreenshots  bool
	trackedEmployeeIDs        []uint
	createdAt                 time.Time
	updatedAt                 time.Time
}

func NewActivityTrackingSetting(
	companyID uint,
	monitoringEnabled bool,
	screenshotFrequency ScreenshotFrequency,
	screenshotIntervalMinutes int,
	managerDeleteScreenshots bool,
	trackedEmployeeIDs []uint,
) (*ActivityTrackingSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if screenshotFrequency == "" {
		screenshotFrequency = ScreenshotNone
	}
	if !screenshotFrequency.IsValid() {
		return nil, fmt.Errorf("invalid screenshot frequency: %s", screenshotFrequency)
	}
	if screenshotIntervalMinutes < 0 {
		return nil, fmt.Errorf("screenshot interval cannot be negative")
	}

	for _, employeeID := range trackedEmployeeIDs {
		if employeeID == 0 {
			return nil, fmt.Errorf("tracked employee ID cannot be zero")
		}
	}
	if trackedEmployeeIDs == nil {
		trackedEmployeeIDs = []uint{}
	}

	now := time.Now()

	return &ActivityTrackingSetting{
		companyID:                 companyID,
		monitoringEnabled:         monitoringEnabled,
		screenshotFrequency:       screenshotFrequency,
		screenshotIntervalMinutes: screenshotIntervalMinutes,
		managerDeleteScreenshots:  managerDeleteScreenshots,
		trackedEmployeeIDs:        trackedEmployeeIDs,
		createdAt:                 now,
		updatedAt:                 now,
	}, nil
}

func ReconstructActivityTrackingSetting(
	settingID uint,
	companyID uint,
	monitoringEnabled bool,
	screenshotFrequency ScreenshotFrequency,
	screenshotIntervalMinutes int,
	managerDeleteScreenshots bool,
	trackedEmployeeIDs []uint,
	createdAt, updatedAt time.Time,
) *ActivityTrackingSetting {
	if trackedEmployeeIDs == nil {
		trackedEmployeeIDs = []uint{}
	}

	return &ActivityTrackingSetting{
		id:                        settingID,
		companyID:                 companyID,
		monitoringEnabled:         monitoringEnabled,
		screenshotFrequency:       screenshotFrequency,
		screenshotIntervalMinutes: screenshotIntervalMinutes,
		managerDeleteScreenshots:  managerDeleteScreenshots,
		trackedEmployeeIDs:        trackedEmployeeIDs,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}

func (s *ActivityTrackingSetting) ID() uint                { return s.id }
func (s *ActivityTrackingSetting) CompanyID() uint         { return s.companyID }
func (s *ActivityTrackingSetting) MonitoringEnabled() bool { return s.monitoringEnabled }
func (s *ActivityTrackingSetting) ScreenshotFrequency() ScreenshotFrequency {
	return s.screenshotFrequency
}
func (s *ActivityTrackingSetting) ScreenshotIntervalMinutes() int { return s.screenshotIntervalMinutes }
func (s *ActivityTrackingSetting) ManagerDeleteScreenshots() bool { return s.managerDeleteScreenshots }
func (s *ActivityTrackingSetting) CreatedAt() time.Time           { return s.createdAt }
func (s *ActivityTrackingSetting) UpdatedAt() time.Time           { return s.updatedAt }

func (s *ActivityTrackingSetting) TrackedEmployeeIDs() []uint {
	idsCopy := make([]uint, len(s.trackedEmployeeIDs))
	copy(idsCopy, s.trackedEmployeeIDs)
	return idsCopy
}

func (s *ActivityTrackingSetting) SetID(settingID uint) { s.id = settingID }

// ReplaceTrackedEmployees swaps the full set of monitored employees.
func (s *ActivityTrackingSetting) ReplaceTrackedEmployees(employeeIDs []uint) error {
	for _, employeeID := range employeeIDs {
		if employeeID == 0 {
			return fmt.Errorf("tracked employee ID cannot be zero")
		}
	}
	if employeeIDs == nil {
		employeeIDs = []uint{}
	}

	s.trackedEmployeeIDs = employeeIDs
	s.updatedAt = time.Now()
	return nil
}
