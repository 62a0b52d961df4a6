package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

type VacationRepo struct {
	t   *table[domain.VacationPeriod]
	now func() time.Time
}

var _ domain.VacationRepository = (*VacationRepo)(nil)

func (r *VacationRepo) Get(id int64) *domain.VacationPeriod { return r.t.get(id) }

func (r *VacationRepo) ListByUser(userID int64) []domain.VacationPeriod {
	return r.t.filter(func(v domain.VacationPeriod) bool { return v.UserID == userID })
}

func (r *VacationRepo) Create(v domain.VacationPeriod) domain.VacationPeriod {
	return r.t.insert(func(id int64) domain.VacationPeriod {
		v.ID = id
		v.CreatedAt = r.now()
		return v
	})
}

func (r *VacationRepo) Delete(id int64) bool { return r.t.remove(id) }
