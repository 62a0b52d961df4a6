package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

// Users is the admin user management surface, including a user's contract.
type Users struct {
	users     *service.UserService
	contracts *service.ContractService
	log       *zap.Logger
}

func NewUsers(u *service.UserService, c *service.ContractService, l *zap.Logger) *Users {
	return &Users{users: u, contracts: c, log: l}
}

type userQuery struct {
	Q string `form:"q"`
}

type createUserIn struct {
	Email      string  `json:"email"      binding:"required,email"`
	Name       string  `json:"name"       binding:"required,max=120"`
	Role       string  `json:"role"       binding:"omitempty,oneof=subscriber single-rider admin"`
	NationalID *string `json:"nationalId" binding:"omitempty,max=20"`
	Phone      *string `json:"phone"      binding:"omitempty,max=30"`
}

type updateUserIn struct {
	Email      *string `json:"email"      binding:"omitempty,email"`
	Name       *string `json:"name"       binding:"omitempty,max=120"`
	Role       *string `json:"role"       binding:"omitempty,oneof=subscriber single-rider admin"`
	NationalID *string `json:"nationalId" binding:"omitempty,max=20"`
	Phone      *string `json:"phone"      binding:"omitempty,max=30"`
	Active     *bool   `json:"active"`
}

type statusIn struct {
	Active *bool `json:"active" binding:"required"`
}

type resetOut struct {
	UserID        int64  `json:"userId"`
	PlainPassword string `json:"plainPassword"`
}

func (h *Users) Mount(g ez.Groups) {
	e := ez.New(g.Admin, h.log)
	ez.Register(e, ez.Action[userQuery, []domain.User]{
		Method: http.MethodGet, Path: "/users", Binder: ez.BindQuery,
		Handler: func(_ *gin.Context, q *userQuery) ([]domain.User, error) { return h.users.List(q.Q), nil },
	})
	ez.Register(e, ez.Action[userQuery, []domain.User]{
		Method: http.MethodGet, Path: "/users/search", Binder: ez.BindQuery,
		Handler: func(_ *gin.Context, q *userQuery) ([]domain.User, error) { return h.users.Search(q.Q), nil },
	})
	ez.Register(e, ez.Action[empty, domain.User]{
		Method: http.MethodGet, Path: "/users/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.User, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.User{}, err
			}
			return h.users.Get(id)
		},
	})
	ez.Register(e, ez.Action[createUserIn, withPassword]{
		Method: http.MethodPost, Path: "/users", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: h.create,
	})
	ez.Register(e, ez.Action[updateUserIn, domain.User]{
		Method: http.MethodPatch, Path: "/users/:id", Binder: ez.BindJSON,
		Handler: h.update,
	})
	ez.Register(e, ez.Action[statusIn, domain.User]{
		Method: http.MethodPatch, Path: "/users/:id/status", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *statusIn) (domain.User, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.User{}, err
			}
			return h.users.SetActive(id, *in.Active)
		},
	})
	ez.Register(e, ez.Action[empty, domain.User]{
		Method: http.MethodDelete, Path: "/users/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.User, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.User{}, err
			}
			return h.users.Deactivate(id)
		},
	})
	ez.Register(e, ez.Action[empty, resetOut]{
		Method: http.MethodPost, Path: "/users/:id/reset-password", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (resetOut, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return resetOut{}, err
			}
			acc, err := h.users.ResetPassword(id)
			if err != nil {
				return resetOut{}, err
			}
			return resetOut{UserID: acc.User.ID, PlainPassword: acc.Password}, nil
		},
	})
	ez.Register(e, ez.Action[empty, domain.Contract]{
		Method: http.MethodGet, Path: "/users/:id/contract", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.Contract, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Contract{}, err
			}
			return h.contracts.GetByUser(id)
		},
	})
	ez.Register(e, ez.Action[contractBody, domain.Contract]{
		Method: http.MethodPost, Path: "/users/:id/contract", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *contractBody) (domain.Contract, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Contract{}, err
			}
			return h.contracts.Create(in.toService(id))
		},
	})
}

func (h *Users) create(_ *gin.Context, in *createUserIn) (withPassword, error) {
	acc, err := h.users.Create(service.CreateUserInput{
		Email:      in.Email,
		Name:       in.Name,
		Role:       domain.Role(in.Role),
		NationalID: in.NationalID,
		Phone:      in.Phone,
	})
	if err != nil {
		return withPassword{}, err
	}
	return withPassword{User: acc.User, PlainPassword: acc.Password}, nil
}

func (h *Users) update(c *gin.Context, in *updateUserIn) (domain.User, error) {
	id, err := ez.ParamID(c, "id")
	if err != nil {
		return domain.User{}, err
	}
	up := service.UpdateUserInput{
		Email:      in.Email,
		Name:       in.Name,
		NationalID: in.NationalID,
		Phone:      in.Phone,
		Active:     in.Active,
	}
	if in.Role != nil {
		r := domain.Role(*in.Role)
		up.Role = &r
	}
	return h.users.Update(id, up)
}
