package service

import (
	"strings"
	"sync"

	"shuttle-checkin/internal/domain"
)

// CatalogService manages the reference data: stops and bus times.
type CatalogService struct {
	locations domain.LocationRepository
	times     domain.DepartureTimeRepository
	mu        *sync.Mutex
}

// Locations lists every location, or only those of typ when it is set.
func (s *CatalogService) Locations(typ domain.LocationType) ([]domain.Location, error) {
	all := s.locations.List()
	if typ == "" {
		return all, nil
	}
	if !typ.Valid() {
		return nil, ErrInvalidLocation
	}
	out := make([]domain.Location, 0, len(all))
	for _, l := range all {
		if l.Type == typ {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *CatalogService) Location(id int64) (domain.Location, error) {
	l := s.locations.Get(id)
	if l == nil {
		return domain.Location{}, ErrLocationNotFound
	}
	return *l, nil
}

func (s *CatalogService) CreateLocation(name string, typ domain.LocationType) (domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Location{}, Validation("Nome do local é obrigatório")
	}
	if !typ.Valid() {
		return domain.Location{}, ErrInvalidLocation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locations.GetByName(name) != nil {
		return domain.Location{}, reject("location_taken", ErrLocationNameTaken)
	}
	return s.locations.Create(domain.Location{Name: name, Type: typ}), nil
}

func (s *CatalogService) UpdateLocation(id int64, p domain.LocationPatch) (domain.Location, error) {
	if p.Name != nil {
		n := strings.TrimSpace(*p.Name)
		if n == "" {
			return domain.Location{}, Validation("Nome do local é obrigatório")
		}
		p.Name = &n
	}
	if p.Type != nil && !p.Type.Valid() {
		return domain.Location{}, ErrInvalidLocation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locations.Get(id) == nil {
		return domain.Location{}, ErrLocationNotFound
	}
	if p.Name != nil {
		if other := s.locations.GetByName(*p.Name); other != nil && other.ID != id {
			return domain.Location{}, reject("location_taken", ErrLocationNameTaken)
		}
	}
	return *s.locations.Update(id, p), nil
}

func (s *CatalogService) DeleteLocation(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.locations.Delete(id) {
		return ErrLocationNotFound
	}
	return nil
}

func (s *CatalogService) DepartureTimes() []domain.DepartureTime { return s.times.List() }

// ActiveDepartureTimes is the public list offered to passengers.
func (s *CatalogService) ActiveDepartureTimes() []domain.DepartureTime {
	all := s.times.List()
	out := make([]domain.DepartureTime, 0, len(all))
	for _, t := range all {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}

func (s *CatalogService) DepartureTime(id int64) (domain.DepartureTime, error) {
	t := s.times.Get(id)
	if t == nil {
		return domain.DepartureTime{}, ErrDepartureTimeMissing
	}
	return *t, nil
}

// CreateDepartureTime adds a label; active defaults to true.
func (s *CatalogService) CreateDepartureTime(label string, active *bool) (domain.DepartureTime, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.DepartureTime{}, Validation("Horário é obrigatório")
	}
	on := active == nil || *active
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.times.GetByTime(label) != nil {
		return domain.DepartureTime{}, reject("departure_time_taken", ErrDepartureTimeTaken)
	}
	return s.times.Create(domain.DepartureTime{Time: label, Active: on}), nil
}

func (s *CatalogService) UpdateDepartureTime(id int64, p domain.DepartureTimePatch) (domain.DepartureTime, error) {
	if p.Time != nil {
		v := strings.TrimSpace(*p.Time)
		if v == "" {
			return domain.DepartureTime{}, Validation("Horário é obrigatório")
		}
		p.Time = &v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.times.Get(id) == nil {
		return domain.DepartureTime{}, ErrDepartureTimeMissing
	}
	if p.Time != nil {
		if other := s.times.GetByTime(*p.Time); other != nil && other.ID != id {
			return domain.DepartureTime{}, reject("departure_time_taken", ErrDepartureTimeTaken)
		}
	}
	return *s.times.Update(id, p), nil
}

func (s *CatalogService) DeleteDepartureTime(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.times.Delete(id) {
		return ErrDepartureTimeMissing
	}
	return nil
}
