package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("usr_abc", "cmp_xyz", "owner")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", claims.UserSID)
	assert.Equal(t, "cmp_xyz", claims.CompanySID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_ValidateRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("usr_abc", "cmp_xyz", "member")
	require.NoError(t, err)

	userSID, err := svc.ValidateRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", userSID)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate("usr_abc", "cmp_xyz", "member")
	require.NoError(t, err)

	_, err = svc.ValidateRefresh(pair.AccessToken)
	assert.Error(t, err)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	other := NewJWTService("other-secret", 15, 7)

	pair, err := svc.Generate("usr_abc", "cmp_xyz", "member")
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	assert.Error(t, hasher.Compare(hash, "wrong-pass"))
}
