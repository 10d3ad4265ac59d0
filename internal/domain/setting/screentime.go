package setting

import (
	"fmt"
	"time"
)

type AppKind string

const (
	AppKindProductive   AppKind = "PRODUCTIVE"
	AppKindUnproductive AppKind = "UNPRODUCTIVE"
	AppKindNeutral      AppKind = "NEUTRAL"
)

func (k AppKind) IsValid() bool {
	switch k {
	case AppKindProductive, AppKindUnproductive, AppKindNeutral:
		return true
	}
	return false
}

// AppClassification is a child row of ScreenTimeSetting, classifying a
// single application or URL for productivity scoring. Replaced
// wholesale on every upsert.
type AppClassification struct {
	id        uint
	settingID uint
	name      string
	category  string
	url       string
	kind      AppKind
}

func NewAppClassification(name, category, url string, kind AppKind) (*AppClassification, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("app name is required")
	}
	if kind == "" {
		kind = AppKindProductive
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid app kind: %s", kind)
	}

	return &AppClassification{
		name:     name,
		category: category,
		url:      url,
		kind:     kind,
	}, nil
}

func ReconstructAppClassification(appID, settingID uint, name, category, url string, kind AppKind) *AppClassification {
	return &AppClassification{
		id:        appID,
		settingID: settingID,
		name:      name,
		category:  category,
		url:       url,
		kind:      kind,
	}
}

func (a *AppClassification) ID() uint         { return a.id }
func (a *AppClassification) SettingID() uint  { return a.settingID }
func (a *AppClassification) Name() string     { return a.name }
func (a *AppClassification) Category() string { return a.category }
func (a *AppClassification) URL() string      { return a.url }
func (a *AppClassification) Kind() AppKind    { return a.kind }

// ScreenTimeSetting is the per-company time tracking configuration
// together with its app classification children. Singleton per
// company.
type ScreenTimeSetting struct {
	id                  uint
	companyID           uint
	enableTimeTracking  bool
	productivityEnabled bool
	enableOvertime      bool
	baseHourlyRate      float64
	currency            string
	standardDailyHours  int
	standardWeeklyHours int
	apps                []*AppClassification
	createdAt           time.Time
	updatedAt           time.Time
}

func NewScreenTimeSetting(
	companyID uint,
	enableTimeTracking bool,
	productivityEnabled bool,
	enableOvertime bool,
	baseHourlyRate float64,
	currency string,
	standardDailyHours int,
	standardWeeklyHours int,
	apps []*AppClassification,
) (*ScreenTimeSetting, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if baseHourlyRate < 0 {
		return nil, fmt.Errorf("base hourly rate cannot be negative")
	}
	if standardDailyHours < 0 || standardDailyHours > 24 {
		return nil, fmt.Errorf("standard daily hours must be between 0 and 24")
	}
	if standardWeeklyHours < 0 || standardWeeklyHours > 168 {
		return nil, fmt.Errorf("standard weekly hours must be between 0 and 168")
	}

	if currency == "" {
		currency = "GBP"
	}
	if apps == nil {
		apps = []*AppClassification{}
	}

	now := time.Now()

	return &ScreenTimeSetting{
		companyID:           companyID,
		enableTimeTracking:  enableTimeTracking,
		productivityEnabled: productivityEnabled,
		enableOvertime:      enableOvertime,
		baseHourlyRate:      baseHourlyRate,
		currency:            currency,
		standardDailyHours:  standardDailyHours,
		standardWeeklyHours: standardWeeklyHours,
		apps:                apps,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructScreenTimeSetting(
	settingID uint,
	companyID uint,
	enableTimeTracking bool,
	productivityEnabled bool,
	enableOvertime bool,
	baseHourlyRate float64,
	currency string,
	standardDailyHours int,
	standardWeeklyHours int,
	apps []*AppClassification,
	createdAt, updatedAt time.Time,
) *ScreenTimeSetting {
	if apps == nil {
		apps = []*AppClassification{}
	}

	return &ScreenTimeSetting{
		id:                  settingID,
		companyID:           companyID,
		enableTimeTracking:  enableTimeTracking,
		productivityEnabled: productivityEnabled,
		enableOvertime:      enableOvertime,
		baseHourlyRate:      baseHourlyRate,
		currency:            currency,
		standardDailyHours:  standardDailyHours,
		standardWeeklyHours: standardWeeklyHours,
		apps:                apps,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (s *ScreenTimeSetting) ID() uint                  { return s.id }
func (s *ScreenTimeSetting) CompanyID() uint           { return s.companyID }
func (s *ScreenTimeSetting) EnableTimeTracking() bool  { return s.enableTimeTracking }
func (s *ScreenTimeSetting) ProductivityEnabled() bool { return s.productivityEnabled }
func (s *ScreenTimeSetting) EnableOvertime() bool      { return s.enableOvertime }
func (s *ScreenTimeSetting) BaseHourlyRate() float64   { return s.baseHourlyRate }
func (s *ScreenTimeSetting) Currency() string          { return s.currency }
func (s *ScreenTimeSetting) StandardDailyHours() int   { return s.standardDailyHours }
func (s *ScreenTimeSetting) StandardWeeklyHours() int  { return s.standardWeeklyHours }
func (s *ScreenTimeSetting) CreatedAt() time.Time      { return s.createdAt }
func (s *ScreenTimeSetting) UpdatedAt() time.Time      { return s.updatedAt }

func (s *ScreenTimeSetting) Apps() []*AppClassification {
	appsCopy := make([]*AppClassification, len(s.apps))
	copy(appsCopy, s.apps)
	return appsCopy
}

func (s *ScreenTimeSetting) SetID(settingID uint) { s.id = settingID }

// ReplaceApps swaps the full set of app classifications.
func (s *ScreenTimeSetting) ReplaceApps(apps []*AppClassification) {
	if apps == nil {
		apps = []*AppClassification{}
	}
	s.apps = apps
	s.updatedAt = time.Now()
}
