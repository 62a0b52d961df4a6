package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

type Vacations struct {
	svc *service.VacationService
	log *zap.Logger
}

func NewVacations(s *service.VacationService, l *zap.Logger) *Vacations {
	return &Vacations{svc: s, log: l}
}

type vacationIn struct {
	StartDate domain.Date `json:"startDate"`
	EndDate   domain.Date `json:"endDate"`
}

func (h *Vacations) Mount(g ez.Groups) {
	e := ez.New(g.Session, h.log)
	ez.Register(e, ez.Action[empty, []domain.VacationPeriod]{
		Method: http.MethodGet, Path: "/vacations", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.VacationPeriod, error) {
			u, err := me(c)
			if err != nil {
				return nil, err
			}
			return h.svc.List(u.ID), nil
		},
	})
	ez.Register(e, ez.Action[vacationIn, domain.VacationPeriod]{
		Method: http.MethodPost, Path: "/vacations", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *vacationIn) (domain.VacationPeriod, error) {
			u, err := me(c)
			if err != nil {
				return domain.VacationPeriod{}, err
			}
			return h.svc.Create(u.ID, in.StartDate, in.EndDate)
		},
	})
	ez.Register(e, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/vacations/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			u, err := me(c)
			if err != nil {
				return empty{}, err
			}
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.Delete(u.ID, id)
		},
	})
}
