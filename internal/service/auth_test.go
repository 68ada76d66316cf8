package service

import (
	"context"
	"testing"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/client"
	redisRepo "github.com/jainam30/mohil-enterprise/internal/database/redis/repository"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, st *store.Store, limiter store.RateLimiter) *AuthService {
	t.Helper()
	conf := &config.Configuration{Auth: config.Auth{JWTSecret: "test-secret", Issuer: "mohil", LoginMaxAttempts: 3}}
	svc, err := NewAuthService(conf, nil, nil, st, limiter)
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(&config.Configuration{}, nil, nil, newTestStore(t), redisRepo.NoopRateLimiter{})
	assert.ErrorIs(t, err, ErrJWTSecretRequired)
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := newAuthService(t, st, redisRepo.NoopRateLimiter{})

	admin, err := svc.CreateAdmin(ctx, &dto.CreateAdminDto{Name: "Mohil Admin", Email: "Admin@Mohil.in", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, core.RoleAdmin, admin.Role)

	_, err = svc.CreateAdmin(ctx, &dto.CreateAdminDto{Name: "Mohil Admin", Email: "admin@mohil.in", Password: "secret123"})
	assert.True(t, cErr.Is(err, cErr.CONFLICT))
	_, err = svc.CreateAdmin(ctx, &dto.CreateAdminDto{Name: "X", Email: "not-an-email", Password: "1"})
	assert.True(t, cErr.Is(err, cErr.BAD_REQUEST_BODY))

	_, err = svc.Login(ctx, &dto.LoginDto{Email: "admin@mohil.in", Password: "wrong"})
	assert.True(t, cErr.Is(err, cErr.UNAUTHORIZED))

	resp, err := svc.Login(ctx, &dto.LoginDto{Email: "ADMIN@mohil.in", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.ID, resp.User.ID)
	assert.NotNil(t, resp.User.LastLoginAt)

	session, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, session.UserID())
	assert.True(t, session.IsAdmin())

	_, err = svc.Authenticate(ctx, "garbage")
	assert.True(t, cErr.Is(err, cErr.INVALID_SESSION))

	me, err := svc.Me(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "Mohil Admin", me.Name)
}

func TestAuthService_Supervisors(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := newAuthService(t, st, redisRepo.NoopRateLimiter{})
	req := &dto.RegisterSupervisorDto{Name: "Floor Lead", Email: "lead@mohil.in", Password: "secret123"}

	_, err := svc.RegisterSupervisor(ctx, supervisorSession, req)
	assert.True(t, cErr.Is(err, cErr.FORBIDDEN))

	created, err := svc.RegisterSupervisor(ctx, adminSession, req)
	require.NoError(t, err)
	assert.Equal(t, core.RoleSupervisor, created.Role)
	assert.Equal(t, core.StatusActive, created.Status)

	_, err = svc.RegisterSupervisor(ctx, adminSession, req)
	assert.True(t, cErr.Is(err, cErr.CONFLICT))

	list, err := svc.ListSupervisors(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "lead@mohil.in", list[0].Email)

	_, err = svc.ListSupervisors(ctx, supervisorSession)
	assert.True(t, cErr.Is(err, cErr.FORBIDDEN))

	_, err = svc.Login(ctx, &dto.LoginDto{Email: "lead@mohil.in", Password: "secret123"})
	assert.NoError(t, err)
}

func TestAuthService_LoginRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	limiter := redisRepo.NewRateLimiter(nil, client.NewRedisClientFrom(rdb))

	st := newTestStore(t)
	ctx := context.Background()
	svc := newAuthService(t, st, limiter)
	_, err := svc.CreateAdmin(ctx, &dto.CreateAdminDto{Name: "Mohil Admin", Email: "admin@mohil.in", Password: "secret123"})
	require.NoError(t, err)

	bad := &dto.LoginDto{Email: "admin@mohil.in", Password: "wrong"}
	for i := 0; i < 2; i++ {
		_, err = svc.Login(ctx, bad)
		assert.True(t, cErr.Is(err, cErr.UNAUTHORIZED))
	}
	_, err = svc.Login(ctx, &dto.LoginDto{Email: "admin@mohil.in", Password: "secret123"})
	require.NoError(t, err, "success resets the counter")

	for i := 0; i < 3; i++ {
		_, err = svc.Login(ctx, bad)
		assert.True(t, cErr.Is(err, cErr.UNAUTHORIZED))
	}
	_, err = svc.Login(ctx, bad)
	assert.True(t, cErr.Is(err, cErr.RATE_LIMIT_EXCEEDED))

	_, err = svc.Login(ctx, &dto.LoginDto{Email: "admin@mohil.in", Password: "secret123"})
	assert.True(t, cErr.Is(err, cErr.RATE_LIMIT_EXCEEDED), "locked even with the right password")
}
