package employee

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// Employee is a member of a company's workforce. Identity fields
// (name, email) live on the employee directly; job role, branch
// memberships, and pay details hang off it.
type Employee struct {
	id              uint
	sid             string
	companyID       uint
	userID          *uint
	firstName       string
	lastName        string
	email           string
	phoneNumber     string
	timezone        string
	countryCode     string
	currencyCode    string
	payRate         float64
	weeklyHours     int
	annualLeaveDays int
	jobRoleID       *uint
	inviteToken     string
	inviteAccepted  bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEmployee(companyID uint, firstName, lastName, email string) (*Employee, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := time.Now()

	return &Employee{
		sid:       id.MustGenerateWithPrefix(id.PrefixEmployee, id.DefaultLength),
		companyID: companyID,
		firstName: firstName,
		lastName:  lastName,
		email:     strings.ToLower(email),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEmployee(
	employeeID uint,
	sid string,
	companyID uint,
	userID *uint,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	timezone string,
	countryCode string,
	currencyCode string,
	payRate float64,
	weeklyHours int,
	annualLeaveDays int,
	jobRoleID *uint,
	inviteToken string,
	inviteAccepted bool,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("employee SID is required")
	}

	return &Employee{
		id:              employeeID,
		sid:             sid,
		companyID:       companyID,
		userID:          userID,
		firstName:       firstName,
		lastName:        lastName,
		email:           email,
		phoneNumber:     phoneNumber,
		timezone:        timezone,
		countryCode:     countryCode,
		currencyCode:    currencyCode,
		payRate:         payRate,
		weeklyHours:     weeklyHours,
		annualLeaveDays: annualLeaveDays,
		jobRoleID:       jobRoleID,
		inviteToken:     inviteToken,
		inviteAccepted:  inviteAccepted,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (e *Employee) ID() uint             { return e.id }
func (e *Employee) SID() string          { return e.sid }
func (e *Employee) CompanyID() uint      { return e.companyID }
func (e *Employee) UserID() *uint        { return e.userID }
func (e *Employee) FirstName() string    { return e.firstName }
func (e *Employee) LastName() string     { return e.lastName }
func (e *Employee) Email() string        { return e.email }
func (e *Employee) PhoneNumber() string  { return e.phoneNumber }
func (e *Employee) Timezone() string     { return e.timezone }
func (e *Employee) CountryCode() string  { return e.countryCode }
func (e *Employee) CurrencyCode() string { return e.currencyCode }
func (e *Employee) PayRate() float64     { return e.payRate }
func (e *Employee) WeeklyHours() int     { return e.weeklyHours }
func (e *Employee) AnnualLeaveDays() int { return e.annualLeaveDays }
func (e *Employee) JobRoleID() *uint     { return e.jobRoleID }
func (e *Employee) InviteToken() string  { return e.inviteToken }
func (e *Employee) InviteAccepted() bool { return e.inviteAccepted }
func (e *Employee) CreatedAt() time.Time { return e.createdAt }
func (e *Employee) UpdatedAt() time.Time { return e.updatedAt }

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.firstName + " " + e.lastName)
}

func (e *Employee) SetID(employeeID uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if employeeID == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = employeeID
	return nil
}

// UpdateProfile applies identity fields, keeping any left blank.
func (e *Employee) UpdateProfile(firstName, lastName, phoneNumber string, annualLeaveDays int) error {
	if annualLeaveDays < 0 {
		return fmt.Errorf("annual leave days cannot be negative")
	}

	if firstName != "" {
		e.firstName = firstName
	}
	if lastName != "" {
		e.lastName = lastName
	}
	if phoneNumber != "" {
		e.phoneNumber = phoneNumber
	}
	e.annualLeaveDays = annualLeaveDays

	e.updatedAt = time.Now()
	return nil
}

// UpdatePaySettings applies the batch-updatable pay and locale fields.
func (e *Employee) UpdatePaySettings(payRate float64, weeklyHours int, currencyCode, countryCode, timezone string) error {
	if payRate < 0 {
		return fmt.Errorf("pay rate cannot be negative")
	}
	if weeklyHours < 0 || weeklyHours > 168 {
		return fmt.Errorf("weekly hours must be between 0 and 168")
	}

	e.payRate = payRate
	e.weeklyHours = weeklyHours
	if currencyCode != "" {
		e.currencyCode = currencyCode
	}
	if countryCode != "" {
		e.countryCode = countryCode
	}
	if timezone != "" {
		e.timezone = timezone
	}

	e.updatedAt = time.Now()
	return nil
}

func (e *Employee) AssignJobRole(roleID uint) error {
	if roleID == 0 {
		return fmt.Errorf("job role ID cannot be zero")
	}
	e.jobRoleID = &roleID
	e.updatedAt = time.Now()
	return nil
}

func (e *Employee) DetachJobRole() {
	e.jobRoleID = nil
	e.updatedAt = time.Now()
}

// IssueInvite stamps a fresh invite token. Any previously issued link
// stops working.
func (e *Employee) IssueInvite(token string) error {
	if token == "" {
		return fmt.Errorf("invite token is required")
	}

	e.inviteToken = token
	e.inviteAccepted = false
	e.updatedAt = time.Now()
	return nil
}

func (e *Employee) AcceptInvite(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if e.inviteAccepted {
		return fmt.Errorf("invite has already been accepted")
	}

	e.userID = &userID
	e.inviteAccepted = true
	e.inviteToken = ""
	e.updatedAt = time.Now()
	return nil
}
