package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRevoker_RevocaHastaExpirar(t *testing.T) {
	r := NewTokenRevoker()
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	ctx := context.Background()

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.True(t, revoked)

	now = now.Add(time.Hour)
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
	assert.Empty(t, r.revoked)
}
