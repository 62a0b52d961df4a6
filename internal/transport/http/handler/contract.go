package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
)

type Contracts struct {
	svc *service.ContractService
	log *zap.Logger
}

func NewContracts(s *service.ContractService, l *zap.Logger) *Contracts {
	return &Contracts{svc: s, log: l}
}

// contractBody is a contract without its owner, who comes from the path or from
// contractIn.
type contractBody struct {
	Monday            bool   `json:"monday"`
	Tuesday           bool   `json:"tuesday"`
	Wednesday         bool   `json:"wednesday"`
	Thursday          bool   `json:"thursday"`
	Friday            bool   `json:"friday"`
	DepartureLocation string `json:"departureLocation" binding:"required"`
	ArrivalLocation   string `json:"arrivalLocation"   binding:"required"`
	ReturnTime        string `json:"returnTime"        binding:"required"`
}

func (b contractBody) toService(userID int64) service.ContractInput {
	return service.ContractInput{
		UserID:            userID,
		Monday:            b.Monday,
		Tuesday:           b.Tuesday,
		Wednesday:         b.Wednesday,
		Thursday:          b.Thursday,
		Friday:            b.Friday,
		DepartureLocation: b.DepartureLocation,
		ArrivalLocation:   b.ArrivalLocation,
		ReturnTime:        b.ReturnTime,
	}
}

type contractIn struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
	contractBody
}

type contractPatchIn struct {
	Monday            *bool   `json:"monday"`
	Tuesday           *bool   `json:"tuesday"`
	Wednesday         *bool   `json:"wednesday"`
	Thursday          *bool   `json:"thursday"`
	Friday            *bool   `json:"friday"`
	DepartureLocation *string `json:"departureLocation"`
	ArrivalLocation   *string `json:"arrivalLocation"`
	ReturnTime        *string `json:"returnTime"`
}

func (h *Contracts) Mount(g ez.Groups) {
	sess := ez.New(g.Session, h.log)
	ez.Register(sess, ez.Action[empty, domain.Contract]{
		Method: http.MethodGet, Path: "/contract", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.Contract, error) {
			u, err := me(c)
			if err != nil {
				return domain.Contract{}, err
			}
			return h.svc.GetByUser(u.ID)
		},
	})

	e := ez.New(g.Admin, h.log)
	ez.Register(e, ez.Action[empty, []domain.Contract]{
		Method: http.MethodGet, Path: "/contracts", Binder: ez.BindNone,
		Handler: func(*gin.Context, *empty) ([]domain.Contract, error) { return h.svc.List(), nil },
	})
	ez.Register(e, ez.Action[empty, domain.Contract]{
		Method: http.MethodGet, Path: "/contracts/:id", Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (domain.Contract, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Contract{}, err
			}
			return h.svc.Get(id)
		},
	})
	ez.Register(e, ez.Action[contractIn, domain.Contract]{
		Method: http.MethodPost, Path: "/contracts", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(_ *gin.Context, in *contractIn) (domain.Contract, error) {
			return h.svc.Create(in.toService(in.UserID))
		},
	})
	ez.Register(e, ez.Action[contractPatchIn, domain.Contract]{
		Method: http.MethodPatch, Path: "/contracts/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *contractPatchIn) (domain.Contract, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return domain.Contract{}, err
			}
			return h.svc.Update(id, domain.ContractPatch{
				Monday:            in.Monday,
				Tuesday:           in.Tuesday,
				Wednesday:         in.Wednesday,
				Thursday:          in.Thursday,
				Friday:            in.Friday,
				DepartureLocation: in.DepartureLocation,
				ArrivalLocation:   in.ArrivalLocation,
				ReturnTime:        in.ReturnTime,
			})
		},
	})
	ez.Register(e, ez.Action[empty, empty]{
		Method: http.MethodDelete, Path: "/contracts/:id", Binder: ez.BindNone, Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			id, err := ez.ParamID(c, "id")
			if err != nil {
				return empty{}, err
			}
			return empty{}, h.svc.Delete(id)
		},
	})
}
