package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

type CheckinRepo struct {
	t   *table[domain.Checkin]
	now func() time.Time
}

var _ domain.CheckinRepository = (*CheckinRepo)(nil)

func (r *CheckinRepo) Get(id int64) *domain.Checkin { return r.t.get(id) }

func (r *CheckinRepo) List() []domain.Checkin { return r.t.filter(nil) }

func (r *CheckinRepo) ListByUser(userID int64) []domain.Checkin {
	return r.t.filter(func(c domain.Checkin) bool { return c.UserID == userID })
}

func (r *CheckinRepo) FindByDateAndDirection(userID int64, date domain.Date, dir domain.Direction) *domain.Checkin {
	return r.t.find(func(c domain.Checkin) bool {
		return c.UserID == userID && c.Date.Equal(date) && c.Direction == dir
	})
}

func (r *CheckinRepo) Create(c domain.Checkin) domain.Checkin {
	return r.t.insert(func(id int64) domain.Checkin {
		c.ID = id
		c.CreatedAt = r.now()
		return c
	})
}

func (r *CheckinRepo) Delete(id int64) bool { return r.t.remove(id) }

type SingleTripRepo struct {
	t   *table[domain.SingleTrip]
	now func() time.Time
}

var _ domain.SingleTripRepository = (*SingleTripRepo)(nil)

func (r *SingleTripRepo) Get(id int64) *domain.SingleTrip { return r.t.get(id) }

func (r *SingleTripRepo) List() []domain.SingleTrip { return r.t.filter(nil) }

func (r *SingleTripRepo) ListByUser(userID int64) []domain.SingleTrip {
	return r.t.filter(func(t domain.SingleTrip) bool { return t.UserID == userID })
}

// Create stores a pending trip; Used from the input is ignored.
func (r *SingleTripRepo) Create(t domain.SingleTrip) domain.SingleTrip {
	return r.t.insert(func(id int64) domain.SingleTrip {
		t.ID = id
		t.Used = false
		t.CreatedAt = r.now()
		return t
	})
}

func (r *SingleTripRepo) MarkUsed(id int64) *domain.SingleTrip {
	return r.t.update(id, func(t *domain.SingleTrip) { t.Used = true })
}

func (r *SingleTripRepo) Delete(id int64) bool { return r.t.remove(id) }
