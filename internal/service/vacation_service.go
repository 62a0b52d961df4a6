package service

import (
	"sync"

	"shuttle-checkin/internal/domain"
)

type VacationService struct {
	vacations domain.VacationRepository
	mu        *sync.Mutex
}

func (s *VacationService) List(userID int64) []domain.VacationPeriod {
	return s.vacations.ListByUser(userID)
}

// Create records an inclusive blackout range; start must not be after end.
func (s *VacationService) Create(userID int64, start, end domain.Date) (domain.VacationPeriod, error) {
	if start.IsZero() || end.IsZero() {
		return domain.VacationPeriod{}, Validation("Datas de início e fim são obrigatórias")
	}
	if start.After(end) {
		return domain.VacationPeriod{}, ErrInvalidRange
	}
	return s.vacations.Create(domain.VacationPeriod{UserID: userID, StartDate: start, EndDate: end}), nil
}

// Delete removes a period owned by userID.
func (s *VacationService) Delete(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.vacations.Get(id)
	if v == nil {
		return ErrVacationNotFound
	}
	if v.UserID != userID {
		return ErrForbidden
	}
	s.vacations.Delete(id)
	return nil
}
