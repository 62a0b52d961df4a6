package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

type LocationRepo struct {
	t   *table[domain.Location]
	now func() time.Time
}

var _ domain.LocationRepository = (*LocationRepo)(nil)

func (r *LocationRepo) Get(id int64) *domain.Location { return r.t.get(id) }

func (r *LocationRepo) GetByName(name string) *domain.Location {
	return r.t.find(func(l domain.Location) bool { return l.Name == name })
}

func (r *LocationRepo) List() []domain.Location { return r.t.filter(nil) }

func (r *LocationRepo) Create(l domain.Location) domain.Location {
	return r.t.insert(func(id int64) domain.Location {
		l.ID = id
		l.CreatedAt = r.now()
		return l
	})
}

func (r *LocationRepo) Update(id int64, p domain.LocationPatch) *domain.Location {
	return r.t.update(id, func(l *domain.Location) {
		if p.Name != nil {
			l.Name = *p.Name
		}
		if p.Type != nil {
			l.Type = *p.Type
		}
	})
}

func (r *LocationRepo) Delete(id int64) bool { return r.t.remove(id) }

type DepartureTimeRepo struct {
	t   *table[domain.DepartureTime]
	now func() time.Time
}

var _ domain.DepartureTimeRepository = (*DepartureTimeRepo)(nil)

func (r *DepartureTimeRepo) Get(id int64) *domain.DepartureTime { return r.t.get(id) }

func (r *DepartureTimeRepo) GetByTime(label string) *domain.DepartureTime {
	return r.t.find(func(d domain.DepartureTime) bool { return d.Time == label })
}

func (r *DepartureTimeRepo) List() []domain.DepartureTime { return r.t.filter(nil) }

func (r *DepartureTimeRepo) Create(d domain.DepartureTime) domain.DepartureTime {
	return r.t.insert(func(id int64) domain.DepartureTime {
		d.ID = id
		d.CreatedAt = r.now()
		return d
	})
}

func (r *DepartureTimeRepo) Update(id int64, p domain.DepartureTimePatch) *domain.DepartureTime {
	return r.t.update(id, func(d *domain.DepartureTime) {
		if p.Time != nil {
			d.Time = *p.Time
		}
		if p.Active != nil {
			d.Active = *p.Active
		}
	})
}

func (r *DepartureTimeRepo) Delete(id int64) bool { return r.t.remove(id) }
