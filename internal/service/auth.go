package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/token"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var ErrJWTSecretRequired = errors.New("AUTH__JWT_SECRET is required")

var hashCost = bcrypt.DefaultCost

type AuthService struct {
	trace    *telemetry.Trace
	metric   *telemetry.Metric
	auth     config.Auth
	users    store.UserStore
	limiter  store.RateLimiter
	validate *validator.Validate
	now      func() time.Time
}

func NewAuthService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	st *store.Store,
	limiter store.RateLimiter,
) (*AuthService, error) {
	if strings.TrimSpace(conf.Auth.JWTSecret) == "" {
		return nil, ErrJWTSecretRequired
	}
	return &AuthService{
		trace:    trace,
		metric:   metric,
		auth:     conf.Auth,
		users:    st.Users,
		limiter:  limiter,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Login 密碼錯誤會消耗該 email 的失敗額度，額度用完回 42900
func (s *AuthService) Login(ctx context.Context, req *dto.LoginDto) (*dto.LoginResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	scope := string(core.RedisKeyLoginLimit)
	remaining, err := s.limiter.Remaining(ctx, scope, email, s.auth.MaxAttempts())
	if err != nil {
		return nil, cErr.ServiceUnavailable("rate limiter unavailable")
	}
	if remaining <= 0 {
		s.metric.LoginRateLimited()
		return nil, cErr.RateLimitExceeded("too many failed login attempts, try again later")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, cErr.DatabaseError("database Login error")
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		if _, _, err := s.limiter.Consume(ctx, scope, email, s.auth.MaxAttempts(), s.auth.Window()); errors.Is(err, store.ErrRateLimited) {
			s.metric.LoginRateLimited()
			return nil, cErr.RateLimitExceeded("too many failed login attempts, try again later")
		}
		return nil, cErr.Unauthorized("invalid email or password")
	}
	if user.Status == core.StatusBlocked {
		return nil, cErr.Unauthorized("account is blocked")
	}
	_ = s.limiter.Reset(ctx, scope, email)

	now := s.now()
	signed, expiresAt, err := token.Generate(user.ID, user.Email, user.Role, s.auth.JWTSecret, s.auth.Issuer, s.auth.TTL(), now)
	if err != nil {
		return nil, cErr.InternalServer("failed to sign token")
	}
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, storeError(ctx, err, "user", "Login")
	}
	return &dto.LoginResponseDto{Token: signed, ExpiresAt: expiresAt, User: toUserResponseDto(user)}, nil
}

// Authenticate 驗證 token 並重新讀取使用者，回傳不可變的 Session
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (core.Session, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	claims, err := token.Parse(bearer, s.auth.JWTSecret)
	if err != nil {
		return core.Session{}, cErr.InvalidSession("invalid or expired token")
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return core.Session{}, cErr.InvalidSession("user no longer exists")
		}
		return core.Session{}, cErr.DatabaseError("database Authenticate error")
	}
	if user.Status != core.StatusActive {
		return core.Session{}, cErr.Unauthorized("account is blocked")
	}
	return core.NewSession(user.ID, user.Name, user.Email, user.Role), nil
}

func (s *AuthService) Me(ctx context.Context, session core.Session) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	user, err := s.users.GetByID(ctx, session.UserID())
	if err != nil {
		return nil, storeError(ctx, err, "user", "Me")
	}
	return toUserResponseDto(user), nil
}

// RegisterSupervisor 只有 admin 能註冊主管；角色在此比對，不依賴路由
func (s *AuthService) RegisterSupervisor(ctx context.Context, session core.Session, req *dto.RegisterSupervisorDto) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !session.IsAdmin() {
		return nil, cErr.Forbidden("only admins can register supervisors")
	}
	user, err := s.createUser(ctx, req.Name, req.Email, req.Password, core.RoleSupervisor, session.UserID())
	if err != nil {
		return nil, err
	}
	return toUserResponseDto(user), nil
}

func (s *AuthService) ListSupervisors(ctx context.Context, session core.Session) ([]*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if !session.IsAdmin() {
		return nil, cErr.Forbidden("only admins can list supervisors")
	}
	users, err := s.users.ListByRole(ctx, core.RoleSupervisor)
	if err != nil {
		return nil, storeError(ctx, err, "user", "ListSupervisors")
	}
	resp := make([]*dto.UserResponseDto, len(users))
	for i, u := range users {
		resp[i] = toUserResponseDto(u)
	}
	return resp, nil
}

// CreateAdmin 首次部署建立管理員（CLI）
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.CreateAdminDto) (*dto.UserResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.validate.Struct(req); err != nil {
		return nil, cErr.ValidateErr(err.Error())
	}
	user, err := s.createUser(ctx, req.Name, req.Email, req.Password, core.RoleAdmin, "")
	if err != nil {
		return nil, err
	}
	return toUserResponseDto(user), nil
}

func (s *AuthService) createUser(ctx context.Context, name, email, password string, role core.Role, createdBy string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, cErr.InternalServer("failed to hash password")
	}
	user := &model.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       core.StatusActive,
		CreatedBy:    createdBy,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, cErr.Conflict("email is already registered")
		}
		return nil, storeError(ctx, err, "user", "CreateUser")
	}
	return user, nil
}

func toUserResponseDto(m *model.User) *dto.UserResponseDto {
	return &dto.UserResponseDto{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}
