package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
	mdw "shuttle-checkin/internal/transport/http/middleware"
)

type Cookie struct {
	Name   string
	Secure bool
}

type Auth struct {
	auth   *service.AuthService
	cookie Cookie
	limit  gin.HandlerFunc // guards /register and /login, may be nil
	log    *zap.Logger
}

func NewAuth(a *service.AuthService, cookie Cookie, limit gin.HandlerFunc, l *zap.Logger) *Auth {
	return &Auth{auth: a, cookie: cookie, limit: limit, log: l}
}

type registerIn struct {
	Email      string  `json:"email"      binding:"required,email"`
	Password   string  `json:"password"   binding:"required,min=6"`
	Name       string  `json:"name"       binding:"required,max=120"`
	Role       string  `json:"role"       binding:"omitempty,oneof=subscriber single-rider"`
	NationalID *string `json:"nationalId" binding:"omitempty,max=20"`
	Phone      *string `json:"phone"      binding:"omitempty,max=30"`
}

type loginIn struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionOut struct {
	User      domain.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (h *Auth) Mount(g ez.Groups) {
	gate := g.Public
	if h.limit != nil {
		gate = g.Public.Group("", h.limit)
	}
	pub := ez.New(gate, h.log)
	ez.Register(pub, ez.Action[registerIn, sessionOut]{
		Method: http.MethodPost, Path: "/register", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: h.register,
	})
	ez.Register(pub, ez.Action[loginIn, sessionOut]{
		Method: http.MethodPost, Path: "/login", Binder: ez.BindJSON,
		Handler: h.login,
	})

	sess := ez.New(g.Session, h.log)
	ez.Register(sess, ez.Action[empty, empty]{
		Method: http.MethodPost, Path: "/logout", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: h.logout,
	})
	ez.Register(sess, ez.Action[empty, domain.User]{
		Method: http.MethodGet, Path: "/user", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.User, error) { return me(c) },
	})
}

func (h *Auth) register(c *gin.Context, in *registerIn) (sessionOut, error) {
	u, s, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:      in.Email,
		Password:   in.Password,
		Name:       in.Name,
		Role:       domain.Role(in.Role),
		NationalID: in.NationalID,
		Phone:      in.Phone,
	})
	if err != nil {
		return sessionOut{}, err
	}
	h.setCookie(c, s)
	return sessionOut{User: u, Token: s.Token, ExpiresAt: s.ExpiresAt}, nil
}

func (h *Auth) login(c *gin.Context, in *loginIn) (sessionOut, error) {
	u, s, err := h.auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		return sessionOut{}, err
	}
	h.setCookie(c, s)
	return sessionOut{User: u, Token: s.Token, ExpiresAt: s.ExpiresAt}, nil
}

func (h *Auth) logout(c *gin.Context, _ *empty) (empty, error) {
	if err := h.auth.Logout(c.Request.Context(), mdw.Token(c, h.cookie.Name)); err != nil {
		return empty{}, err
	}
	if h.cookie.Name != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	}
	return empty{}, nil
}

func (h *Auth) setCookie(c *gin.Context, s service.Session) {
	if h.cookie.Name == "" {
		return
	}
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, s.Token, maxAge, "/", "", h.cookie.Secure, true)
}
