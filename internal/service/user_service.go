package service

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
)

type CreateUserInput struct {
	Email      string
	Name       string
	Role       domain.Role
	NationalID *string
	Phone      *string
}

// NewAccount is a freshly created user plus the one-time plaintext password the
// admin relays to them.
type NewAccount struct {
	User     domain.User
	Password string
}

type UpdateUserInput struct {
	Email      *string
	Name       *string
	Role       *domain.Role
	NationalID *string
	Phone      *string
	Active     *bool
}

// UserService is the admin side of user management.
type UserService struct {
	users       domain.UserRepository
	contracts   domain.ContractRepository
	creds       Credentials
	newPassword func() (string, error)
	mu          *sync.Mutex
	log         *zap.Logger
}

// List returns every user, or only those matching q when q is not blank.
func (s *UserService) List(q string) []domain.User {
	all := s.users.List()
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all
	}
	out := make([]domain.User, 0, len(all))
	for _, u := range all {
		if matchesUser(u, q) {
			out = append(out, u)
		}
	}
	return out
}

// Search is List with a mandatory term; a blank term finds nothing.
func (s *UserService) Search(q string) []domain.User {
	if strings.TrimSpace(q) == "" {
		return []domain.User{}
	}
	return s.List(q)
}

func matchesUser(u domain.User, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(u.Email, q) {
		return true
	}
	return u.NationalID != nil && strings.Contains(strings.ToLower(*u.NationalID), q)
}

func (s *UserService) Get(id int64) (domain.User, error) {
	u := s.users.Get(id)
	if u == nil {
		return domain.User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *UserService) Create(in CreateUserInput) (NewAccount, error) {
	u, plain, err := s.prepare(in)
	if err != nil {
		return NewAccount{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.insertLocked(u)
	if err != nil {
		return NewAccount{}, err
	}
	s.log.Info("user created", zap.Int64("user_id", created.ID), zap.String("role", string(created.Role)))
	return NewAccount{User: created, Password: plain}, nil
}

// prepare validates in and mints the account's credential. It does not touch the
// store, so the expensive hash runs outside the writer lock.
func (s *UserService) prepare(in CreateUserInput) (domain.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return domain.User{}, "", Validation("E-mail e nome são obrigatórios")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleSubscriber
	}
	if !role.Valid() {
		return domain.User{}, "", ErrInvalidRole
	}
	plain, cred, err := s.mint()
	if err != nil {
		return domain.User{}, "", err
	}
	return domain.User{
		Email:      email,
		Password:   cred,
		Name:       name,
		Role:       role,
		NationalID: optional(in.NationalID),
		Phone:      optional(in.Phone),
	}, plain, nil
}

// insertLocked must run with s.mu held.
func (s *UserService) insertLocked(u domain.User) (domain.User, error) {
	if s.users.GetByEmail(u.Email) != nil {
		return domain.User{}, reject("email_taken", ErrEmailTaken)
	}
	return s.users.Create(u), nil
}

func (s *UserService) mint() (plain, cred string, err error) {
	plain, err = s.newPassword()
	if err != nil {
		return "", "", fmt.Errorf("generate password: %w", err)
	}
	cred, err = s.creds.Hash(plain)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}
	return plain, cred, nil
}

// Update merges the supplied fields. A changed email must stay unique, and a
// subscriber holding a contract keeps its role. A blank nationalId or phone clears it.
func (s *UserService) Update(id int64, in UpdateUserInput) (domain.User, error) {
	var p domain.UserPatch
	if in.Email != nil {
		e := normalizeEmail(*in.Email)
		if e == "" {
			return domain.User{}, Validation("E-mail inválido")
		}
		p.Email = &e
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return domain.User{}, Validation("Nome é obrigatório")
		}
		p.Name = &n
	}
	if in.Role != nil && !in.Role.Valid() {
		return domain.User{}, ErrInvalidRole
	}
	p.Role = in.Role
	p.NationalID = clearable(in.NationalID)
	p.Phone = clearable(in.Phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.users.Get(id)
	if cur == nil {
		return domain.User{}, ErrUserNotFound
	}
	if p.Email != nil && *p.Email != cur.Email && s.users.GetByEmail(*p.Email) != nil {
		return domain.User{}, reject("email_taken", ErrEmailTaken)
	}
	if in.Active != nil && !*in.Active && cur.IsAdmin() {
		return domain.User{}, reject("admin_deactivation", ErrAdminDeactivation)
	}
	if p.Role != nil && *p.Role != cur.Role && *p.Role != domain.RoleSubscriber && s.contracts.GetByUser(id) != nil {
		return domain.User{}, reject("contract_blocks_role", ErrContractBlocksRole)
	}
	p.Active = in.Active
	return *s.users.Update(id, p), nil
}

// SetActive flips the active flag. Admins can never be switched off.
func (s *UserService) SetActive(id int64, active bool) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.users.Get(id)
	if cur == nil {
		return domain.User{}, ErrUserNotFound
	}
	if !active && cur.IsAdmin() {
		return domain.User{}, reject("admin_deactivation", ErrAdminDeactivation)
	}
	u := s.users.Update(id, domain.UserPatch{Active: &active})
	s.log.Info("user status changed", zap.Int64("user_id", id), zap.Bool("active", active))
	return *u, nil
}

// Deactivate is how users are deleted.
func (s *UserService) Deactivate(id int64) (domain.User, error) {
	return s.SetActive(id, false)
}

// ResetPassword stores a fresh random password and returns its plaintext once.
func (s *UserService) ResetPassword(id int64) (NewAccount, error) {
	if s.users.Get(id) == nil {
		return NewAccount{}, ErrUserNotFound
	}
	plain, cred, err := s.mint()
	if err != nil {
		return NewAccount{}, err
	}
	s.mu.Lock()
	u := s.users.Update(id, domain.UserPatch{Password: &cred})
	s.mu.Unlock()
	if u == nil {
		return NewAccount{}, ErrUserNotFound
	}
	s.log.Info("password reset", zap.Int64("user_id", id))
	return NewAccount{User: *u, Password: plain}, nil
}
