package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Employee role labels. Role is the position assigned by the agency;
// superusers always get RoleAdmin.
const (
	RoleManager    = "manager"
	RoleAccountant = "accountant"
	RoleAdmin      = "admin"
)

// Principal is the capability consumed by the authentication layer.
// The entity named by auth.usermodel in the configuration must
// implement it.
type Principal interface {
	VerifyCredential(password string) bool
	HasPermission(permission string) bool
}

// Employee model represents a staff member and doubles as the
// authentication principal. The password is stored only as a bcrypt hash.
type Employee struct {
	Model
	Username       string        `json:"username" gorm:"Column:username;uniqueIndex"`
	FirstName      string        `json:"first_name" gorm:"Column:first_name"`
	LastName       string        `json:"last_name" gorm:"Column:last_name"`
	MiddleName     string        `json:"middle_name" gorm:"Column:middle_name"`
	DateOfBirth    *time.Time    `json:"date_of_birth" gorm:"Column:date_of_birth"`
	Role           string        `json:"role" gorm:"Column:role"`
	Organization   *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
	OrganizationID *uint         `json:"organization_id" gorm:"Column:organization_id"`
	Photo          string        `json:"photo" gorm:"Column:photo"`
	PasswordHash   string        `json:"-" gorm:"Column:password_hash"`
	IsActive       bool          `json:"is_active" gorm:"Column:is_active;default:true"`
	IsStaff        bool          `json:"is_staff" gorm:"Column:is_staff"`
	IsAdmin        bool          `json:"is_admin" gorm:"Column:is_admin"`
	IsSuperuser    bool          `json:"is_superuser" gorm:"Column:is_superuser"`
}

// NewEmployee constructs an employee, enforcing that the identity fields
// are non-empty before the password is hashed. The returned error names
// the missing field.
func NewEmployee(username, firstName, lastName, middleName, password string) (*Employee, error) {
	if username == "" {
		return nil, NewValidationError("username", "must not be empty")
	}
	if firstName == "" {
		return nil, NewValidationError("firstname", "must not be empty")
	}
	if lastName == "" {
		return nil, NewValidationError("lastname", "must not be empty")
	}
	if middleName == "" {
		return nil, NewValidationError("middlename", "must not be empty")
	}

	e := &Employee{
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		MiddleName: middleName,
		IsActive:   true,
	}
	if err := e.SetPassword(password); err != nil {
		return nil, err
	}
	return e, nil
}

// NewSuperuser constructs an employee with administrative privileges.
// Validation is identical to NewEmployee.
func NewSuperuser(username, firstName, lastName, middleName, password string) (*Employee, error) {
	e, err := NewEmployee(username, firstName, lastName, middleName, password)
	if err != nil {
		return nil, err
	}
	e.IsAdmin = true
	e.IsStaff = true
	e.IsSuperuser = true
	e.Role = RoleAdmin
	return e, nil
}

// SetPassword replaces the stored credential with a bcrypt hash of the
// given password
func (e *Employee) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = string(hash)
	return nil
}

// VerifyCredential reports whether the password matches the stored hash
func (e *Employee) VerifyCredential(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) == nil
}

// HasPermission reports whether the employee may perform the named
// operation. Superusers may do anything; staff get the administrative
// surface; everything else requires the admin flag.
func (e *Employee) HasPermission(permission string) bool {
	if !e.IsActive {
		return false
	}
	if e.IsSuperuser {
		return true
	}
	switch permission {
	case "admin.access":
		return e.IsStaff
	default:
		return e.IsAdmin
	}
}
