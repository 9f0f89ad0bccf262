package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployeeValidation(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		firstName  string
		lastName   string
		middleName string
		wantField  string
	}{
		{"missing username", "", "Ivan", "Ivanov", "Ivanovich", "username"},
		{"missing first name", "ivan", "", "Ivanov", "Ivanovich", "firstname"},
		{"missing last name", "ivan", "Ivan", "", "Ivanovich", "lastname"},
		{"missing middle name", "ivan", "Ivan", "Ivanov", "", "middlename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmployee(tt.username, tt.firstName, tt.lastName, tt.middleName, "secret")
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, "must not be empty", vErr.Message)
		})
	}
}

func TestNewEmployeeHashesPassword(t *testing.T) {
	e, err := NewEmployee("ivan", "Ivan", "Ivanov", "Ivanovich", "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, e.PasswordHash)
	assert.NotEqual(t, "secret", e.PasswordHash)
	assert.True(t, e.IsActive)
	assert.False(t, e.IsSuperuser)
}

func TestNewSuperuser(t *testing.T) {
	e, err := NewSuperuser("boss", "Anna", "Petrova", "Sergeevna", "topsecret")
	require.NoError(t, err)

	assert.True(t, e.IsAdmin)
	assert.True(t, e.IsStaff)
	assert.True(t, e.IsSuperuser)
	assert.Equal(t, RoleAdmin, e.Role)
}

func TestNewSuperuserValidation(t *testing.T) {
	_, err := NewSuperuser("boss", "Anna", "Petrova", "", "topsecret")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "middlename", vErr.Field)
}

func TestVerifyCredential(t *testing.T) {
	e, err := NewEmployee("ivan", "Ivan", "Ivanov", "Ivanovich", "secret")
	require.NoError(t, err)

	assert.True(t, e.VerifyCredential("secret"))
	assert.False(t, e.VerifyCredential("wrong"))
	assert.False(t, e.VerifyCredential(""))
}

func TestHasPermission(t *testing.T) {
	e, err := NewEmployee("ivan", "Ivan", "Ivanov", "Ivanovich", "secret")
	require.NoError(t, err)

	// Plain employee has no back-office access
	assert.False(t, e.HasPermission("admin.access"))

	e.IsStaff = true
	assert.True(t, e.HasPermission("admin.access"))
	assert.False(t, e.HasPermission("something.else"))

	// Inactive accounts lose everything
	e.IsSuperuser = true
	e.IsActive = false
	assert.False(t, e.HasPermission("admin.access"))

	e.IsActive = true
	assert.True(t, e.HasPermission("something.else"))
}
