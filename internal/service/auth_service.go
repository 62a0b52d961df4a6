package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"shuttle-checkin/internal/core/auth"
	"shuttle-checkin/internal/core/metrics"
	"shuttle-checkin/internal/core/session"
	"shuttle-checkin/internal/domain"
)

type Tokens interface {
	Issue(uid int64, role, sid string) (string, time.Time, error)
	Parse(token string) (*auth.Claims, error)
}

// Session is what a client holds after register or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Role       domain.Role // subscriber or single-rider; empty means subscriber
	NationalID *string
	Phone      *string
}

// AuthService is the identity gate: registration, login, logout and resolving a
// token back to an active user.
type AuthService struct {
	users    domain.UserRepository
	creds    Credentials
	tokens   Tokens
	sessions session.Store
	ttl      time.Duration
	newID    func() string
	mu       *sync.Mutex
	log      *zap.Logger

	dummyOnce sync.Once
	dummy     string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, Session, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return domain.User{}, Session{}, Validation("E-mail, senha e nome são obrigatórios")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleSubscriber
	}
	if role != domain.RoleSubscriber && role != domain.RoleSingleRider {
		return domain.User{}, Session{}, ErrInvalidRole
	}

	cred, err := s.creds.Hash(in.Password)
	if err != nil {
		return domain.User{}, Session{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	if s.users.GetByEmail(email) != nil {
		s.mu.Unlock()
		return domain.User{}, Session{}, reject("email_taken", ErrEmailTaken)
	}
	u := s.users.Create(domain.User{
		Email:      email,
		Password:   cred,
		Name:       name,
		Role:       role,
		NationalID: optional(in.NationalID),
		Phone:      optional(in.Phone),
	})
	s.mu.Unlock()

	sess, err := s.startSession(ctx, u)
	if err != nil {
		return domain.User{}, Session{}, err
	}
	s.log.Info("user registered", zap.Int64("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, sess, nil
}

// Login answers every failure with ErrInvalidCredentials. Unknown emails still pay
// for one hash so timing does not reveal which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, Session, error) {
	u := s.users.GetByEmail(normalizeEmail(email))
	if u == nil {
		s.creds.Verify(password, s.dummyCredential())
		metrics.Logins.WithLabelValues("failed").Inc()
		return domain.User{}, Session{}, ErrInvalidCredentials
	}
	if !s.creds.Verify(password, u.Password) || !u.Active {
		metrics.Logins.WithLabelValues("failed").Inc()
		s.log.Debug("login refused", zap.Int64("user_id", u.ID), zap.Bool("active", u.Active))
		return domain.User{}, Session{}, ErrInvalidCredentials
	}
	sess, err := s.startSession(ctx, *u)
	if err != nil {
		return domain.User{}, Session{}, err
	}
	metrics.Logins.WithLabelValues("ok").Inc()
	return *u, sess, nil
}

// Logout drops the session behind token. Unknown or invalid tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Resolve maps a token to the active user it was issued for.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrUnauthenticated
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.User{}, ErrUnauthenticated
	}
	uid, err := s.sessions.Lookup(ctx, claims.SessionID())
	if errors.Is(err, session.ErrNotFound) {
		return domain.User{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("resolve session: %w", err)
	}
	if uid != claims.UID {
		return domain.User{}, ErrUnauthenticated
	}
	u := s.users.Get(uid)
	if u == nil || !u.Active {
		return domain.User{}, ErrUnauthenticated
	}
	return *u, nil
}

func (s *AuthService) startSession(ctx context.Context, u domain.User) (Session, error) {
	sid := s.newID()
	if err := s.sessions.Save(ctx, sid, u.ID, s.ttl); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	tok, exp, err := s.tokens.Issue(u.ID, string(u.Role), sid)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{Token: tok, ExpiresAt: exp}, nil
}

func (s *AuthService) dummyCredential() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.creds.Hash("timing-equaliser")
	})
	return s.dummy
}
