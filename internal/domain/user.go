package domain

import "time"

type Role string

const (
	RoleSubscriber  Role = "subscriber"   // mensalista
	RoleSingleRider Role = "single-rider" // avulso
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSubscriber, RoleSingleRider, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	NationalID *string   `json:"nationalId"`
	Phone      *string   `json:"phone"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserPatch holds the fields of a partial update; nil fields are left untouched.
// An empty NationalID or Phone clears the field.
type UserPatch struct {
	Email      *string
	Password   *string
	Name       *string
	Role       *Role
	NationalID *string
	Phone      *string
	Active     *bool
}

type UserRepository interface {
	Get(id int64) *User
	GetByEmail(email string) *User
	List() []User
	Create(u User) User
	Update(id int64, p UserPatch) *User
	Deactivate(id int64) *User
}
