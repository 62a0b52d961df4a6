package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shuttle-checkin/internal/core/metrics"
	"shuttle-checkin/internal/core/session"
	"shuttle-checkin/internal/domain"
	"shuttle-checkin/pkg/utils"
)

// Credentials is the opaque hashing capability (see pkg/utils.Hasher).
type Credentials interface {
	Hash(plain string) (string, error)
	Verify(plain, credential string) bool
}

type Deps struct {
	Users          domain.UserRepository
	Vacations      domain.VacationRepository
	Checkins       domain.CheckinRepository
	SingleTrips    domain.SingleTripRepository
	Locations      domain.LocationRepository
	DepartureTimes domain.DepartureTimeRepository
	Contracts      domain.ContractRepository

	Credentials Credentials
	Tokens      Tokens
	Sessions    session.Store
	SessionTTL  time.Duration

	Log         *zap.Logger
	Now         func() time.Time
	NewID       func() string
	NewPassword func() (string, error)
}

type Services struct {
	Auth      *AuthService
	Users     *UserService
	Vacations *VacationService
	Checkins  *CheckinService
	Trips     *TripService
	Contracts *ContractService
	Catalog   *CatalogService
}

// New wires every service around one writer lock. Each check-then-mutate sequence
// runs under it, so two requests cannot both pass a uniqueness check.
func New(d Deps) *Services {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.NewPassword == nil {
		d.NewPassword = func() (string, error) { return utils.RandomPassword(10) }
	}
	if d.SessionTTL <= 0 {
		d.SessionTTL = 24 * time.Hour
	}
	mu := &sync.Mutex{}
	log := d.Log.Named("service")

	users := &UserService{
		users:       d.Users,
		contracts:   d.Contracts,
		creds:       d.Credentials,
		newPassword: d.NewPassword,
		mu:          mu,
		log:         log.Named("users"),
	}
	checkins := &CheckinService{
		checkins:  d.Checkins,
		vacations: d.Vacations,
		mu:        mu,
		log:       log.Named("checkins"),
	}
	return &Services{
		Auth: &AuthService{
			users:    d.Users,
			creds:    d.Credentials,
			tokens:   d.Tokens,
			sessions: d.Sessions,
			ttl:      d.SessionTTL,
			newID:    d.NewID,
			mu:       mu,
			log:      log.Named("auth"),
		},
		Users: users,
		Vacations: &VacationService{
			vacations: d.Vacations,
			mu:        mu,
		},
		Checkins: checkins,
		Trips: &TripService{
			trips:    d.SingleTrips,
			checkins: d.Checkins,
			users:    d.Users,
			accounts: users,
			mu:       mu,
			log:      log.Named("trips"),
		},
		Contracts: &ContractService{
			contracts: d.Contracts,
			users:     d.Users,
			locations: d.Locations,
			times:     d.DepartureTimes,
			mu:        mu,
		},
		Catalog: &CatalogService{
			locations: d.Locations,
			times:     d.DepartureTimes,
			mu:        mu,
		},
	}
}

// reject counts a business-rule refusal and hands the error back.
func reject(reason string, err error) error {
	metrics.RuleRejections.WithLabelValues(reason).Inc()
	return err
}
