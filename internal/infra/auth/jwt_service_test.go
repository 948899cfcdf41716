package auth

import (
	"testing"
	"time"

	"agriconnect/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(testJWTConfig())
	assert.NoError(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens("u1", []string{"FARMER"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	token, err := svc.ValidateToken(access, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, "access", claims["type"])

	roles, ok := claims["roles"].([]any)
	require.True(t, ok)
	require.Len(t, roles, 1)
	assert.Equal(t, "FARMER", roles[0])
}

func TestJWTService_RefreshTokenHasNoRoles(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens("u1", []string{"FARMER"})
	require.NoError(t, err)

	token, err := svc.ValidateToken(refresh, cfg.SecretKey.Refresh)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens("u1", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access, "some-other-secret")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token", "test-access-secret")
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
