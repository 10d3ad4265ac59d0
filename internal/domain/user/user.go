package user

import (
	"fmt"
	"strings"
	"time"

	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/id"
)

// User is an authenticated account. A user belongs to one company and
// carries the role used by the permission layer.
type User struct {
	id           uint
	sid          string
	companyID    uint
	email        string
	passwordHash string
	role         string
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func validRole(role string) bool {
	switch role {
	case constants.RoleOwner, constants.RoleAdmin, constants.RoleMember, constants.RoleSupportAgent:
		return true
	}
	return false
}

func NewUser(companyID uint, email, passwordHash, role string) (*User, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !validRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()

	return &User{
		sid:          id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength),
		companyID:    companyID,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	userID uint,
	sid string,
	companyID uint,
	email string,
	passwordHash string,
	role string,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("user SID is required")
	}
	if !validRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           userID,
		sid:          sid,
		companyID:    companyID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                { return u.id }
func (u *User) SID() string             { return u.sid }
func (u *User) CompanyID() uint         { return u.companyID }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() string            { return u.role }
func (u *User) Active() bool            { return u.active }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}
