package token

import (
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	now := time.Now()
	signed, exp, err := Generate("u-1", "admin@mohil.com", core.RoleAdmin, "secret", "mohil", time.Hour, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := Parse(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, core.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@mohil.com", claims.Email)
}

func TestParseRejects(t *testing.T) {
	signed, _, err := Generate("u-1", "a@b.c", core.RoleSupervisor, "secret", "", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = Parse(signed, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := Generate("u-1", "a@b.c", core.RoleSupervisor, "secret", "", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = Parse(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = Parse("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = Generate("u-1", "a@b.c", core.RoleSupervisor, "", "", time.Minute, time.Now())
	assert.Error(t, err)
}
