package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

type Checkins struct {
	svc *service.CheckinService
	log *zap.Logger
}

func NewCheckins(s *service.CheckinService, l *zap.Logger) *Checkins {
	return &Checkins{svc: s, log: l}
}

type checkinIn struct {
	Date       domain.Date `json:"date"`
	Direction  string      `json:"direction"  binding:"required,oneof=outbound return"`
	ReturnTime *string     `json:"returnTime" binding:"omitempty,max=20"`
}

func (in checkinIn) toService() service.CheckinInput {
	return service.CheckinInput{
		Date:       in.Date,
		Direction:  domain.Direction(in.Direction),
		ReturnTime: in.ReturnTime,
	}
}

type checkinQuery struct {
	Date   string `form:"date"`
	UserID int64  `form:"userId" binding:"omitempty,gt=0"`
}

func (h *Checkins) Mount(g ez.Groups) {
	sess := ez.New(g.Session, h.log)
	ez.Register(sess, ez.Action[empty, []domain.Checkin]{
		Method: http.MethodGet, Path: "/checkins", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.Checkin, error) {
			u, err := me(c)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByUser(u.ID), nil
		},
	})
	ez.Register(sess, ez.Action[checkinIn, domain.Checkin]{
		Method: http.MethodPost, Path: "/checkins", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *checkinIn) (domain.Checkin, error) {
			u, err := me(c)
			if err != nil {
				return domain.Checkin{}, err
			}
			return h.svc.Create(u.ID, in.toService())
		},
	})

	adm := ez.New(g.Admin, h.log)
	ez.Register(adm, ez.Action[checkinQuery, []domain.Checkin]{
		Method: http.MethodGet, Path: "/checkins", Binder: ez.BindQuery,
		Handler: func(_ *gin.Context, q *checkinQuery) ([]domain.Checkin, error) {
			f := service.CheckinFilter{UserID: q.UserID}
			if s := strings.TrimSpace(q.Date); s != "" {
				d, err := domain.ParseDate(s)
				if err != nil {
					return nil, service.Validation("Data inválida, use o formato AAAA-MM-DD")
				}
				f.Date = d
			}
			return h.svc.List(f), nil
		},
	})
	ez.Register(adm, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/checkins/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.Delete(id)
		},
	})
}
