package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

type UserRepo struct {
	t   *table[domain.User]
	now func() time.Time
}

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Get(id int64) *domain.User { return r.t.get(id) }

func (r *UserRepo) GetByEmail(email string) *domain.User {
	return r.t.find(func(u domain.User) bool { return u.Email == email })
}

func (r *UserRepo) List() []domain.User { return r.t.filter(nil) }

// Create assigns the id and creation time. New users always start active.
func (r *UserRepo) Create(u domain.User) domain.User {
	return r.t.insert(func(id int64) domain.User {
		u.ID = id
		u.Active = true
		u.CreatedAt = r.now()
		return u
	})
}

func (r *UserRepo) Update(id int64, p domain.UserPatch) *domain.User {
	return r.t.update(id, func(u *domain.User) {
		if p.Email != nil {
			u.Email = *p.Email
		}
		if p.Password != nil {
			u.Password = *p.Password
		}
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Role != nil {
			u.Role = *p.Role
		}
		if p.NationalID != nil {
			u.NationalID = nonBlank(*p.NationalID)
		}
		if p.Phone != nil {
			u.Phone = nonBlank(*p.Phone)
		}
		if p.Active != nil {
			u.Active = *p.Active
		}
	})
}

// Deactivate is the user flavour of delete: rows are never removed.
func (r *UserRepo) Deactivate(id int64) *domain.User {
	return r.t.update(id, func(u *domain.User) { u.Active = false })
}

func nonBlank(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
