package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

type Trips struct {
	svc *service.TripService
	log *zap.Logger
}

func NewTrips(s *service.TripService, l *zap.Logger) *Trips {
	return &Trips{svc: s, log: l}
}

type tripPreviewOut struct {
	ID         int64            `json:"id"`
	Date       domain.Date      `json:"date"`
	Direction  domain.Direction `json:"direction"`
	ReturnTime *string          `json:"returnTime"`
	User       publicUser       `json:"user"`
}

type inlineUserIn struct {
	Name       string  `json:"name"  binding:"required,max=120"`
	Email      string  `json:"email" binding:"required,email"`
	NationalID *string `json:"cpf"   binding:"omitempty,max=20"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
}

type issueTripIn struct {
	UserID     int64         `json:"userId"     binding:"omitempty,gt=0"`
	User       *inlineUserIn `json:"user"`
	Date       domain.Date   `json:"date"`
	Direction  string        `json:"direction"  binding:"required,oneof=outbound return"`
	ReturnTime *string       `json:"returnTime" binding:"omitempty,max=20"`
}

type issuedTripOut struct {
	domain.SingleTrip
	User          domain.User `json:"user"`
	PlainPassword string      `json:"plainPassword,omitempty"`
}

func (h *Trips) Mount(g ez.Groups) {
	pub := ez.New(g.Public, h.log)
	ez.Register(pub, ez.Action[empty, tripPreviewOut]{
		Method: http.MethodGet, Path: "/single-trips/:id", Binder: ez.BindNone,
		Handler: h.preview,
	})
	ez.Register(pub, ez.Action[checkinIn, domain.Checkin]{
		Method: http.MethodPost, Path: "/single-trips/:id/checkin", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *checkinIn) (domain.Checkin, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Checkin{}, err
			}
			return h.svc.Redeem(id, in.toService())
		},
	})

	sess := ez.New(g.Session, h.log)
	ez.Register(sess, ez.Action[empty, []domain.SingleTrip]{
		Method: http.MethodGet, Path: "/single-trips", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.SingleTrip, error) {
			u, err := me(c)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByUser(u.ID), nil
		},
	})

	adm := ez.New(g.Admin, h.log)
	ez.Register(adm, ez.Action[empty, []domain.SingleTrip]{
		Method: http.MethodGet, Path: "/single-trips", Binder: ez.BindNone,
		Handler: func(*gin.Context, *empty) ([]domain.SingleTrip, error) { return h.svc.List(), nil },
	})
	ez.Register(adm, ez.Action[empty, domain.SingleTrip]{
		Method: http.MethodGet, Path: "/single-trips/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.SingleTrip, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.SingleTrip{}, err
			}
			return h.svc.Get(id)
		},
	})
	ez.Register(adm, ez.Action[issueTripIn, issuedTripOut]{
		Method: http.MethodPost, Path: "/single-trips", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: h.issue,
	})
	ez.Register(adm, ez.Action[empty, domain.SingleTrip]{
		Method: http.MethodPatch, Path: "/single-trips/:id/mark-used", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.SingleTrip, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.SingleTrip{}, err
			}
			return h.svc.MarkUsed(id)
		},
	})
	ez.Register(adm, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/single-trips/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.Delete(id)
		},
	})
}

func (h *Trips) preview(c *gin.Context, _ *empty) (tripPreviewOut, error) {
	id, err := ez.ParamID(c, "id")
	if err != nil {
		return tripPreviewOut{}, err
	}
	p, err := h.svc.Preview(id)
	if err != nil {
		return tripPreviewOut{}, err
	}
	return tripPreviewOut{
		ID:         p.Trip.ID,
		Date:       p.Trip.Date,
		Direction:  p.Trip.Direction,
		ReturnTime: p.Trip.ReturnTime,
		User:       toPublic(p.Owner),
	}, nil
}

func (h *Trips) issue(_ *gin.Context, in *issueTripIn) (issuedTripOut, error) {
	req := service.IssueTripInput{
		UserID:     in.UserID,
		Date:       in.Date,
		Direction:  domain.Direction(in.Direction),
		ReturnTime: in.ReturnTime,
	}
	if in.User != nil {
		req.User = &service.CreateUserInput{
			Email:      in.User.Email,
			Name:       in.User.Name,
			NationalID: in.User.NationalID,
			Phone:      in.User.Phone,
		}
	}
	got, err := h.svc.Create(req)
	if err != nil {
		return issuedTripOut{}, err
	}
	return issuedTripOut{SingleTrip: got.Trip, User: got.User, PlainPassword: got.Password}, nil
}
