package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

// Catalog serves locations and departure times.
type Catalog struct {
	svc *service.CatalogService
	log *zap.Logger
}

func NewCatalog(s *service.CatalogService, l *zap.Logger) *Catalog {
	return &Catalog{svc: s, log: l}
}

type locationQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=departure arrival"`
}

type locationIn struct {
	Name string `json:"name" binding:"required,max=120"`
	Type string `json:"type" binding:"required,oneof=departure arrival"`
}

type locationPatchIn struct {
	Name *string `json:"name" binding:"omitempty,max=120"`
	Type *string `json:"type" binding:"omitempty,oneof=departure arrival"`
}

type departureTimeIn struct {
	Time   string `json:"time"   binding:"required,max=20"`
	Active *bool  `json:"active"`
}

type departureTimePatchIn struct {
	Time   *string `json:"time" binding:"omitempty,max=20"`
	Active *bool   `json:"active"`
}

func (h *Catalog) Mount(g ez.Groups) {
	pub := ez.New(g.Public, h.log)
	ez.Register(pub, ez.Action[empty, []domain.DepartureTime]{
		Method: http.MethodGet, Path: "/departure-times", Binder: ez.BindNone,
		Handler: func(*gin.Context, *empty) ([]domain.DepartureTime, error) {
			return h.svc.ActiveDepartureTimes(), nil
		},
	})
	ez.Register(pub, ez.Action[locationQuery, []domain.Location]{
		Method: http.MethodGet, Path: "/locations", Binder: ez.BindQuery,
		Handler: func(_ *gin.Context, q *locationQuery) ([]domain.Location, error) {
			return h.svc.Locations(domain.LocationType(q.Type))
		},
	})

	e := ez.New(g.Admin, h.log)
	h.mountLocations(e)
	h.mountDepartureTimes(e)
}

func (h *Catalog) mountLocations(e ez.EZ) {
	ez.Register(e, ez.Action[locationQuery, []domain.Location]{
		Method: http.MethodGet, Path: "/locations", Binder: ez.BindQuery,
		Handler: func(_ *gin.Context, q *locationQuery) ([]domain.Location, error) {
			return h.svc.Locations(domain.LocationType(q.Type))
		},
	})
	ez.Register(e, ez.Action[empty, domain.Location]{
		Method: http.MethodGet, Path: "/locations/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.Location, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Location{}, err
			}
			return h.svc.Location(id)
		},
	})
	ez.Register(e, ez.Action[locationIn, domain.Location]{
		Method: http.MethodPost, Path: "/locations", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(_ *gin.Context, in *locationIn) (domain.Location, error) {
			return h.svc.CreateLocation(in.Name, domain.LocationType(in.Type))
		},
	})
	ez.Register(e, ez.Action[locationPatchIn, domain.Location]{
		Method: http.MethodPatch, Path: "/locations/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *locationPatchIn) (domain.Location, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Location{}, err
			}
			p := domain.LocationPatch{Name: in.Name}
			if in.Type != nil {
				t := domain.LocationType(*in.Type)
				p.Type = &t
			}
			return h.svc.UpdateLocation(id, p)
		},
	})
	ez.Register(e, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/locations/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.DeleteLocation(id)
		},
	})
}

func (h *Catalog) mountDepartureTimes(e ez.EZ) {
	ez.Register(e, ez.Action[empty, []domain.DepartureTime]{
		Method: http.MethodGet, Path: "/departure-times", Binder: ez.BindNone,
		Handler: func(*gin.Context, *empty) ([]domain.DepartureTime, error) { return h.svc.DepartureTimes(), nil },
	})
	ez.Register(e, ez.Action[empty, domain.DepartureTime]{
		Method: http.MethodGet, Path: "/departure-times/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.DepartureTime, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.DepartureTime{}, err
			}
			return h.svc.DepartureTime(id)
		},
	})
	ez.Register(e, ez.Action[departureTimeIn, domain.DepartureTime]{
		Method: http.MethodPost, Path: "/departure-times", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(_ *gin.Context, in *departureTimeIn) (domain.DepartureTime, error) {
			return h.svc.CreateDepartureTime(in.Time, in.Active)
		},
	})
	ez.Register(e, ez.Action[departureTimePatchIn, domain.DepartureTime]{
		Method: http.MethodPatch, Path: "/departure-times/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *departureTimePatchIn) (domain.DepartureTime, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.DepartureTime{}, err
			}
			return h.svc.UpdateDepartureTime(id, domain.DepartureTimePatch{Time: in.Time, Active: in.Active})
		},
	})
	ez.Register(e, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/departure-times/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.DeleteDepartureTime(id)
		},
	})
}
