package security_test

import (
	"strings"
	"testing"

	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, hasher.Verify(hash, "s3cret"))
	assert.False(t, hasher.Verify(hash, "S3cret"))
	assert.False(t, hasher.Verify("not-a-hash", "s3cret"))

	again, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestNewBcryptHasher_OutOfRangeCost(t *testing.T) {
	hasher := security.NewBcryptHasher(100)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)

	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
