package service

import (
	"sync"

	"go.uber.org/zap"

	"shuttle-checkin/internal/core/metrics"
	"shuttle-checkin/internal/domain"
)

// IssueTripInput names the passenger either by UserID or by an inline user that is
// created as a single-rider when its email is unknown.
type IssueTripInput struct {
	UserID     int64
	User       *CreateUserInput
	Date       domain.Date
	Direction  domain.Direction
	ReturnTime *string
}

// IssuedTrip carries the new trip and its owner. Password is set only when the
// owner was created on the spot.
type IssuedTrip struct {
	Trip     domain.SingleTrip
	User     domain.User
	Password string
}

// TripPreview is what the public redemption page shows before check-in.
type TripPreview struct {
	Trip  domain.SingleTrip
	Owner domain.User
}

type TripService struct {
	trips    domain.SingleTripRepository
	checkins domain.CheckinRepository
	users    domain.UserRepository
	accounts *UserService
	mu       *sync.Mutex
	log      *zap.Logger
}

func (s *TripService) Create(in IssueTripInput) (IssuedTrip, error) {
	if in.Date.IsZero() {
		return IssuedTrip{}, ErrDateRequired
	}
	rt, err := normalizeLeg(in.Direction, in.ReturnTime)
	if err != nil {
		return IssuedTrip{}, err
	}
	if in.UserID <= 0 && in.User == nil {
		return IssuedTrip{}, Validation("Informe o usuário da viagem")
	}

	var (
		fresh domain.User
		plain string
	)
	if in.UserID <= 0 {
		inline := *in.User
		inline.Role = domain.RoleSingleRider
		if fresh, plain, err = s.accounts.prepare(inline); err != nil {
			return IssuedTrip{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var owner domain.User
	switch {
	case in.UserID > 0:
		u := s.users.Get(in.UserID)
		if u == nil {
			return IssuedTrip{}, ErrUserNotFound
		}
		owner = *u
	case s.users.GetByEmail(fresh.Email) != nil:
		owner = *s.users.GetByEmail(fresh.Email)
		plain = ""
	default:
		if owner, err = s.accounts.insertLocked(fresh); err != nil {
			return IssuedTrip{}, err
		}
		s.log.Info("single-rider created for trip", zap.Int64("user_id", owner.ID))
	}
	if owner.Role != domain.RoleSingleRider {
		return IssuedTrip{}, reject("not_single_rider", ErrNotSingleRider)
	}
	if !owner.Active {
		return IssuedTrip{}, reject("user_inactive", ErrUserInactive)
	}

	t := s.trips.Create(domain.SingleTrip{
		UserID:     owner.ID,
		Date:       in.Date,
		Direction:  in.Direction,
		ReturnTime: rt,
	})
	s.log.Info("single trip issued", zap.Int64("trip_id", t.ID), zap.Int64("user_id", owner.ID))
	return IssuedTrip{Trip: t, User: owner, Password: plain}, nil
}

func (s *TripService) Get(id int64) (domain.SingleTrip, error) {
	t := s.trips.Get(id)
	if t == nil {
		return domain.SingleTrip{}, ErrTripNotFound
	}
	return *t, nil
}

// Preview refuses trips that were already redeemed.
func (s *TripService) Preview(id int64) (TripPreview, error) {
	t := s.trips.Get(id)
	if t == nil {
		return TripPreview{}, ErrTripNotFound
	}
	u := s.users.Get(t.UserID)
	if u == nil {
		return TripPreview{}, ErrUserNotFound
	}
	if t.Used {
		return TripPreview{}, ErrTripUsed
	}
	return TripPreview{Trip: *t, Owner: *u}, nil
}

func (s *TripService) ListByUser(userID int64) []domain.SingleTrip {
	return s.trips.ListByUser(userID)
}

func (s *TripService) List() []domain.SingleTrip { return s.trips.List() }

// Redeem consumes a pending trip whose date, direction and return time match the
// submission, and checks its owner in with the trip's own values. Trips of a
// deactivated owner cannot be redeemed.
func (s *TripService) Redeem(id int64, in CheckinInput) (domain.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.trips.Get(id)
	if t == nil {
		return domain.Checkin{}, ErrTripNotFound
	}
	if t.Used {
		return domain.Checkin{}, reject("trip_used", ErrTripUsed)
	}
	if !in.Date.Equal(t.Date) {
		return domain.Checkin{}, reject("trip_mismatch", ErrTripDateMismatch)
	}
	if in.Direction != t.Direction {
		return domain.Checkin{}, reject("trip_mismatch", ErrTripDirMismatch)
	}
	if t.Direction == domain.Return && !sameOptional(optional(in.ReturnTime), t.ReturnTime) {
		return domain.Checkin{}, reject("trip_mismatch", ErrTripReturnMismatch)
	}
	if u := s.users.Get(t.UserID); u == nil || !u.Active {
		return domain.Checkin{}, reject("user_inactive", ErrUserInactive)
	}
	if s.checkins.FindByDateAndDirection(t.UserID, t.Date, t.Direction) != nil {
		return domain.Checkin{}, reject("duplicate_checkin", ErrDuplicateCheckin)
	}

	s.trips.MarkUsed(id)
	c := s.checkins.Create(domain.Checkin{
		UserID:     t.UserID,
		Date:       t.Date,
		Direction:  t.Direction,
		ReturnTime: t.ReturnTime,
	})
	metrics.CheckinsCreated.WithLabelValues("single_trip").Inc()
	s.log.Info("single trip redeemed", zap.Int64("trip_id", id), zap.Int64("checkin_id", c.ID))
	return c, nil
}

// Delete cancels a pending trip. Used trips are permanent.
func (s *TripService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.trips.Get(id)
	if t == nil {
		return ErrTripNotFound
	}
	if t.Used {
		return reject("trip_used", ErrTripUsedUndeletable)
	}
	s.trips.Delete(id)
	return nil
}

// MarkUsed consumes a trip without creating a check-in.
func (s *TripService) MarkUsed(id int64) (domain.SingleTrip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.trips.Get(id)
	if t == nil {
		return domain.SingleTrip{}, ErrTripNotFound
	}
	if t.Used {
		return domain.SingleTrip{}, reject("trip_used", ErrTripUsed)
	}
	return *s.trips.MarkUsed(id), nil
}
