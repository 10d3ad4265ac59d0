package branch

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/id"
)

// Branch is a physical location of a company. Employees are attached
// through membership rows managed by the repository.
type Branch struct {
	id          uint
	sid         string
	companyID   uint
	name        string
	address     string
	countryCode string
	managerID   *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBranch(companyID uint, name, address, countryCode string, managerID *uint) (*Branch, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("branch name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("branch name exceeds maximum length of 100 characters")
	}
	if managerID != nil && *managerID == 0 {
		return nil, fmt.Errorf("manager ID cannot be zero")
	}

	now := time.Now()

	return &Branch{
		sid:         id.MustGenerateWithPrefix(id.PrefixBranch, id.DefaultLength),
		companyID:   companyID,
		name:        name,
		address:     address,
		countryCode: countryCode,
		managerID:   managerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBranch(
	branchID uint,
	sid string,
	companyID uint,
	name string,
	address string,
	countryCode string,
	managerID *uint,
	createdAt, updatedAt time.Time,
) (*Branch, error) {
	if branchID == 0 {
		return nil, fmt.Errorf("branch ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("branch SID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("branch name is required")
	}

	return &Branch{
		id:          branchID,
		sid:         sid,
		companyID:   companyID,
		name:        name,
		address:     address,
		countryCode: countryCode,
		managerID:   managerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (b *Branch) ID() uint             { return b.id }
func (b *Branch) SID() string          { return b.sid }
func (b *Branch) CompanyID() uint      { return b.companyID }
func (b *Branch) Name() string         { return b.name }
func (b *Branch) Address() string      { return b.address }
func (b *Branch) CountryCode() string  { return b.countryCode }
func (b *Branch) ManagerID() *uint     { return b.managerID }
func (b *Branch) CreatedAt() time.Time { return b.createdAt }
func (b *Branch) UpdatedAt() time.Time { return b.updatedAt }

func (b *Branch) SetID(branchID uint) error {
	if b.id != 0 {
		return fmt.Errorf("branch ID is already set")
	}
	if branchID == 0 {
		return fmt.Errorf("branch ID cannot be zero")
	}
	b.id = branchID
	return nil
}

func (b *Branch) Update(name, address, countryCode string, managerID *uint) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("branch name exceeds maximum length of 100 characters")
		}
		b.name = name
	}
	if address != "" {
		b.address = address
	}
	if countryCode != "" {
		b.countryCode = countryCode
	}
	if managerID != nil {
		if *managerID == 0 {
			return fmt.Errorf("manager ID cannot be zero")
		}
		b.managerID = managerID
	}

	b.updatedAt = time.Now()
	return nil
}
