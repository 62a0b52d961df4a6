package service

import (
	"strings"
	"sync"

	"shuttle-checkin/internal/domain"
)

type ContractInput struct {
	UserID            int64
	Monday            bool
	Tuesday           bool
	Wednesday         bool
	Thursday          bool
	Friday            bool
	DepartureLocation string
	ArrivalLocation   string
	ReturnTime        string
}

type ContractService struct {
	contracts domain.ContractRepository
	users     domain.UserRepository
	locations domain.LocationRepository
	times     domain.DepartureTimeRepository
	mu        *sync.Mutex
}

func (s *ContractService) List() []domain.Contract { return s.contracts.List() }

func (s *ContractService) Get(id int64) (domain.Contract, error) {
	c := s.contracts.Get(id)
	if c == nil {
		return domain.Contract{}, ErrContractNotFound
	}
	return *c, nil
}

func (s *ContractService) GetByUser(userID int64) (domain.Contract, error) {
	if s.users.Get(userID) == nil {
		return domain.Contract{}, ErrUserNotFound
	}
	c := s.contracts.GetByUser(userID)
	if c == nil {
		return domain.Contract{}, ErrContractNotFound
	}
	return *c, nil
}

// Create gives a subscriber their single contract.
func (s *ContractService) Create(in ContractInput) (domain.Contract, error) {
	in.DepartureLocation = strings.TrimSpace(in.DepartureLocation)
	in.ArrivalLocation = strings.TrimSpace(in.ArrivalLocation)
	in.ReturnTime = strings.TrimSpace(in.ReturnTime)

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users.Get(in.UserID)
	if u == nil {
		return domain.Contract{}, ErrUserNotFound
	}
	if u.Role != domain.RoleSubscriber {
		return domain.Contract{}, reject("not_subscriber", ErrNotSubscriber)
	}
	if s.contracts.GetByUser(in.UserID) != nil {
		return domain.Contract{}, reject("contract_exists", ErrContractExists)
	}
	if err := s.checkRoute(in.DepartureLocation, in.ArrivalLocation, in.ReturnTime); err != nil {
		return domain.Contract{}, err
	}
	return s.contracts.Create(domain.Contract{
		UserID:            in.UserID,
		Monday:            in.Monday,
		Tuesday:           in.Tuesday,
		Wednesday:         in.Wednesday,
		Thursday:          in.Thursday,
		Friday:            in.Friday,
		DepartureLocation: in.DepartureLocation,
		ArrivalLocation:   in.ArrivalLocation,
		ReturnTime:        in.ReturnTime,
	}), nil
}

func (s *ContractService) Update(id int64, p domain.ContractPatch) (domain.Contract, error) {
	p.DepartureLocation = optional(p.DepartureLocation)
	p.ArrivalLocation = optional(p.ArrivalLocation)
	p.ReturnTime = optional(p.ReturnTime)

	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.contracts.Get(id)
	if cur == nil {
		return domain.Contract{}, ErrContractNotFound
	}
	dep, arr, rt := cur.DepartureLocation, cur.ArrivalLocation, cur.ReturnTime
	if p.DepartureLocation != nil {
		dep = *p.DepartureLocation
	}
	if p.ArrivalLocation != nil {
		arr = *p.ArrivalLocation
	}
	if p.ReturnTime != nil {
		rt = *p.ReturnTime
	}
	if err := s.checkRoute(dep, arr, rt); err != nil {
		return domain.Contract{}, err
	}
	return *s.contracts.Update(id, p), nil
}

func (s *ContractService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.contracts.Delete(id) {
		return ErrContractNotFound
	}
	return nil
}

// checkRoute requires catalog entries for both stops and the return time.
func (s *ContractService) checkRoute(departure, arrival, returnTime string) error {
	if l := s.locations.GetByName(departure); l == nil || l.Type != domain.LocationDeparture {
		return Validation("Local de partida inválido")
	}
	if l := s.locations.GetByName(arrival); l == nil || l.Type != domain.LocationArrival {
		return Validation("Local de chegada inválido")
	}
	if s.times.GetByTime(returnTime) == nil {
		return Validation("Horário de retorno inválido")
	}
	return nil
}
