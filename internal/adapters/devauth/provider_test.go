package devauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@example.com"})
	assert.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev"})
	assert.Error(t, err)
}

func TestProvider_Login(t *testing.T) {
	p, err := NewProvider(Config{
		UserID:  "dev-user",
		Email:   "dev@example.com",
		RoleIDs: []int{1, 3},
	})
	require.NoError(t, err)

	payload, err := p.Login(context.Background(), "anyone", "anything")
	require.NoError(t, err)
	assert.Equal(t, "bearer", payload.TokenType)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), payload.ExpiresAt, 5*time.Second)

	token, _, err := jwt.NewParser().ParseUnverified(payload.AccessToken, jwt.MapClaims{})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "dev-user", claims["sub"])
	assert.Equal(t, "dev@example.com", claims["email"])

	authorities, ok := claims["authorities"].([]interface{})
	require.True(t, ok)
	require.Len(t, authorities, 2)
	first := authorities[0].(map[string]interface{})
	assert.EqualValues(t, domainauth.RoleAdmin.ID, first["id"])
	assert.Equal(t, domainauth.RoleAdmin.Name, first["name"])
}

func TestProvider_Login_EmptyCredentials(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)

	_, err = p.Login(context.Background(), "", "x")
	assert.Error(t, err)

	_, err = p.Login(context.Background(), "x", "")
	assert.Error(t, err)
}

func TestProvider_DefaultsToAdmin(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)

	payload, err := p.Login(context.Background(), "u", "p")
	require.NoError(t, err)

	token, _, err := jwt.NewParser().ParseUnverified(payload.AccessToken, jwt.MapClaims{})
	require.NoError(t, err)
	authorities := token.Claims.(jwt.MapClaims)["authorities"].([]interface{})
	require.Len(t, authorities, 1)
	assert.EqualValues(t, 1, authorities[0].(map[string]interface{})["id"])
}
