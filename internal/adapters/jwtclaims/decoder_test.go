package jwtclaims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func newDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := NewDecoder(Config{})
	require.NoError(t, err)
	return d
}

func TestNewDecoder_InvalidPath(t *testing.T) {
	_, err := NewDecoder(Config{RolesClaimPath: "not a [valid"})
	assert.Error(t, err)
}

func TestDecoder_Decode(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub": "user-42",
		"authorities": []map[string]any{
			{"id": 1, "name": "ADMIN"},
			{"id": 3, "name": "BASIC_USER"},
		},
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := newDecoder(t).Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, []domainauth.RoleDescriptor{
		{ID: 1, Name: "ADMIN"},
		{ID: 3, Name: "BASIC_USER"},
	}, claims.Roles)
}

func TestDecoder_Decode_AuthorityLabel(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"sub": "user-42",
		"authorities": []map[string]any{
			{"id": 2, "authority": "ADMIN_PARTNERSHIP"},
		},
	})

	claims, err := newDecoder(t).Decode(token)
	require.NoError(t, err)
	require.Len(t, claims.Roles, 1)
	assert.Equal(t, domainauth.RoleAdminPartnership, claims.Roles[0])
}

func TestDecoder_Decode_UserNameFallback(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"user_name":   "legacy-user",
		"authorities": []map[string]any{{"id": 1, "name": "ADMIN"}},
	})

	claims, err := newDecoder(t).Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "legacy-user", claims.UserID)
}

func TestDecoder_Decode_CustomPath(t *testing.T) {
	d, err := NewDecoder(Config{RolesClaimPath: "realm_access.roles"})
	require.NoError(t, err)

	token := mintToken(t, jwt.MapClaims{
		"sub": "user-42",
		"realm_access": map[string]any{
			"roles": []map[string]any{{"id": 3, "name": "BASIC_USER"}},
		},
	})

	claims, err := d.Decode(token)
	require.NoError(t, err)
	require.Len(t, claims.Roles, 1)
	assert.Equal(t, domainauth.RoleBasicUser, claims.Roles[0])
}

func TestDecoder_Decode_MissingRolesClaim(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"sub": "user-42"})

	claims, err := newDecoder(t).Decode(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Roles)
}

func TestDecoder_Decode_Errors(t *testing.T) {
	d := newDecoder(t)

	t.Run("empty token", func(t *testing.T) {
		_, err := d.Decode("")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := d.Decode("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("no subject", func(t *testing.T) {
		token := mintToken(t, jwt.MapClaims{
			"authorities": []map[string]any{{"id": 1, "name": "ADMIN"}},
		})
		_, err := d.Decode(token)
		assert.Error(t, err)
	})

	t.Run("roles claim not a list", func(t *testing.T) {
		token := mintToken(t, jwt.MapClaims{
			"sub":         "user-42",
			"authorities": "ADMIN",
		})
		_, err := d.Decode(token)
		assert.Error(t, err)
	})

	t.Run("role entry without id", func(t *testing.T) {
		token := mintToken(t, jwt.MapClaims{
			"sub":         "user-42",
			"authorities": []map[string]any{{"name": "ADMIN"}},
		})
		_, err := d.Decode(token)
		assert.Error(t, err)
	})
}
