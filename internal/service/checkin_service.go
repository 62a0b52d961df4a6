package service

import (
	"sync"

	"go.uber.org/zap"

	"shuttle-checkin/internal/core/metrics"
	"shuttle-checkin/internal/domain"
)

type CheckinInput struct {
	Date       domain.Date
	Direction  domain.Direction
	ReturnTime *string
}

// CheckinFilter narrows the admin listing. Zero values match everything.
type CheckinFilter struct {
	Date   domain.Date
	UserID int64
}

type CheckinService struct {
	checkins  domain.CheckinRepository
	vacations domain.VacationRepository
	mu        *sync.Mutex
	log       *zap.Logger
}

// Create is the self-service check-in. Vacation blackouts are checked first, then
// the one-per-(date, direction) rule.
func (s *CheckinService) Create(userID int64, in CheckinInput) (domain.Checkin, error) {
	if in.Date.IsZero() {
		return domain.Checkin{}, ErrDateRequired
	}
	rt, err := normalizeLeg(in.Direction, in.ReturnTime)
	if err != nil {
		return domain.Checkin{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onVacation(userID, in.Date) {
		return domain.Checkin{}, reject("vacation", ErrVacationConflict)
	}
	if s.checkins.FindByDateAndDirection(userID, in.Date, in.Direction) != nil {
		return domain.Checkin{}, reject("duplicate_checkin", ErrDuplicateCheckin)
	}
	c := s.checkins.Create(domain.Checkin{
		UserID:     userID,
		Date:       in.Date,
		Direction:  in.Direction,
		ReturnTime: rt,
	})
	metrics.CheckinsCreated.WithLabelValues("self").Inc()
	s.log.Info("checkin created",
		zap.Int64("user_id", userID),
		zap.Stringer("date", c.Date),
		zap.String("direction", string(c.Direction)))
	return c, nil
}

func (s *CheckinService) onVacation(userID int64, d domain.Date) bool {
	for _, v := range s.vacations.ListByUser(userID) {
		if v.Contains(d) {
			return true
		}
	}
	return false
}

func (s *CheckinService) ListByUser(userID int64) []domain.Checkin {
	return s.checkins.ListByUser(userID)
}

func (s *CheckinService) List(f CheckinFilter) []domain.Checkin {
	var all []domain.Checkin
	if f.UserID > 0 {
		all = s.checkins.ListByUser(f.UserID)
	} else {
		all = s.checkins.List()
	}
	if f.Date.IsZero() {
		return all
	}
	out := make([]domain.Checkin, 0, len(all))
	for _, c := range all {
		if c.Date.Equal(f.Date) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CheckinService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.checkins.Delete(id) {
		return ErrCheckinNotFound
	}
	return nil
}
