package company

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// Company is the tenant root. Every other aggregate in the system is
// scoped to exactly one company.
type Company struct {
	id          uint
	sid         string
	name        string
	email       string
	phoneNumber string
	address     string
	website     string
	logoURL     string
	bannerURL   string
	dateFormat  string
	weeklyOff   []string
	planID      *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCompany(name, email string) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("company name exceeds maximum length of 150 characters")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("company email is required")
	}

	now := time.Now()

	return &Company{
		sid:        id.MustGenerateWithPrefix(id.PrefixCompany, id.DefaultLength),
		name:       name,
		email:      email,
		dateFormat: "DD/MM/YYYY",
		weeklyOff:  []string{},
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructCompany(
	companyID uint,
	sid string,
	name string,
	email string,
	phoneNumber string,
	address string,
	website string,
	logoURL string,
	bannerURL string,
	dateFormat string,
	weeklyOff []string,
	planID *uint,
	createdAt, updatedAt time.Time,
) (*Company, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("company SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("company name is required")
	}

	if weeklyOff == nil {
		weeklyOff = []string{}
	}

	return &Company{
		id:          companyID,
		sid:         sid,
		name:        name,
		email:       email,
		phoneNumber: phoneNumber,
		address:     address,
		website:     website,
		logoURL:     logoURL,
		bannerURL:   bannerURL,
		dateFormat:  dateFormat,
		weeklyOff:   weeklyOff,
		planID:      planID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Company) ID() uint             { return c.id }
func (c *Company) SID() string          { return c.sid }
func (c *Company) Name() string         { return c.name }
func (c *Company) Email() string        { return c.email }
func (c *Company) PhoneNumber() string  { return c.phoneNumber }
func (c *Company) Address() string      { return c.address }
func (c *Company) Website() string      { return c.website }
func (c *Company) LogoURL() string      { return c.logoURL }
func (c *Company) BannerURL() string    { return c.bannerURL }
func (c *Company) DateFormat() string   { return c.dateFormat }
func (c *Company) PlanID() *uint        { return c.planID }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }

func (c *Company) WeeklyOff() []string {
	daysCopy := make([]string, len(c.weeklyOff))
	copy(daysCopy, c.weeklyOff)
	return daysCopy
}

func (c *Company) SetID(companyID uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if companyID == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = companyID
	return nil
}

// UpdateProfile applies the scalar profile fields. Empty strings leave
// the current value untouched, matching partial-update semantics.
func (c *Company) UpdateProfile(name, email, phoneNumber, address, website, dateFormat string, weeklyOff []string) error {
	if name != "" {
		if len(name) > 150 {
			return fmt.Errorf("company name exceeds maximum length of 150 characters")
		}
		c.name = name
	}
	if email != "" {
		c.email = email
	}
	if phoneNumber != "" {
		c.phoneNumber = phoneNumber
	}
	if address != "" {
		c.address = address
	}
	if website != "" {
		c.website = website
	}
	if dateFormat != "" {
		c.dateFormat = dateFormat
	}
	if weeklyOff != nil {
		c.weeklyOff = weeklyOff
	}

	c.updatedAt = time.Now()
	return nil
}

// ChangePlan switches the company to a new plan and reports whether
// the plan actually changed. Callers use the result to decide whether
// subscription and billing side effects apply.
func (c *Company) ChangePlan(planID uint) (changed bool, err error) {
	if planID == 0 {
		return false, fmt.Errorf("plan ID cannot be zero")
	}

	if c.planID != nil && *c.planID == planID {
		return false, nil
	}

	c.planID = &planID
	c.updatedAt = time.Now()
	return true, nil
}

func (c *Company) UpdateLogoURL(url string) {
	c.logoURL = url
	c.updatedAt = time.Now()
}

func (c *Company) UpdateBannerURL(url string) {
	c.bannerURL = url
	c.updatedAt = time.Now()
}
