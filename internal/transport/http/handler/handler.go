// Package handler holds the HTTP adapters: bind, call the service, shape the reply.
package handler

import (
	"github.com/gin-gonic/gin"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	mdw "shuttle-checkin/internal/transport/http/middleware"
)

type empty struct{}

// me is the user resolved by RequireAuth.
func me(c *gin.Context) (domain.User, error) {
	u, ok := mdw.CurrentUser(c)
	if !ok {
		return domain.User{}, service.ErrUnauthenticated
	}
	return u, nil
}

// publicUser is what anonymous callers may see of a passenger.
type publicUser struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	NationalID *string     `json:"nationalId"`
	Role       domain.Role `json:"role"`
}

func toPublic(u domain.User) publicUser {
	return publicUser{ID: u.ID, Name: u.Name, Email: u.Email, NationalID: u.NationalID, Role: u.Role}
}

// withPassword echoes a one-time plaintext password next to the user record.
type withPassword struct {
	domain.User
	PlainPassword string `json:"plainPassword"`
}
