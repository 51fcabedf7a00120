package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaims_HasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		granted  []RoleDescriptor
		required []RoleDescriptor
		expected bool
	}{
		{"admin has admin", []RoleDescriptor{RoleAdmin}, []RoleDescriptor{RoleAdmin}, true},
		{"basic lacks admin", []RoleDescriptor{RoleBasicUser}, []RoleDescriptor{RoleAdmin}, false},
		{"any-of matches one", []RoleDescriptor{RoleBasicUser}, []RoleDescriptor{RoleAdmin, RoleBasicUser}, true},
		{"empty required never matches", []RoleDescriptor{RoleAdmin}, nil, false},
		{"empty granted never matches", nil, []RoleDescriptor{RoleAdmin}, false},
		{
			// The backend may rename roles; only the numeric id decides access.
			"comparison is by id, not name",
			[]RoleDescriptor{{ID: 1, Name: "PERFIL_ADMIN"}},
			[]RoleDescriptor{RoleAdmin},
			true,
		},
		{
			"same name different id does not match",
			[]RoleDescriptor{{ID: 9, Name: "ADMIN"}},
			[]RoleDescriptor{RoleAdmin},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Claims{UserID: "u1", Roles: tt.granted}
			assert.Equal(t, tt.expected, c.HasAnyRole(tt.required...))
		})
	}
}

func TestClaims_IsBasicOnly(t *testing.T) {
	tests := []struct {
		name     string
		roles    []RoleDescriptor
		expected bool
	}{
		{"basic only", []RoleDescriptor{RoleBasicUser}, true},
		{"basic plus admin", []RoleDescriptor{RoleBasicUser, RoleAdmin}, false},
		{"basic plus partnership", []RoleDescriptor{RoleBasicUser, RoleAdminPartnership}, false},
		{"admin only", []RoleDescriptor{RoleAdmin}, false},
		{"no roles", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Claims{Roles: tt.roles}.IsBasicOnly())
		})
	}
}

func TestSessionState_Authenticated(t *testing.T) {
	assert.False(t, SessionState{Kind: StateNone}.Authenticated())
	assert.False(t, SessionState{Kind: StateInvalid}.Authenticated())
	assert.True(t, SessionState{Kind: StateValid}.Authenticated())
}

func TestSession_FirstAccessPending(t *testing.T) {
	s := Session{UserData: UserData{FirstAccess: true}}
	assert.True(t, s.FirstAccessPending())
	s.UserData.FirstAccess = false
	assert.False(t, s.FirstAccessPending())
}
