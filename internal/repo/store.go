package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

// Store owns every entity collection. It is built once at startup and handed to the
// services; nothing else mints ids.
type Store struct {
	users     *UserRepo
	vacations *VacationRepo
	checkins  *CheckinRepo
	trips     *SingleTripRepo
	locations *LocationRepo
	times     *DepartureTimeRepo
	contracts *ContractRepo
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		users:     &UserRepo{t: newTable[domain.User](), now: now},
		vacations: &VacationRepo{t: newTable[domain.VacationPeriod](), now: now},
		checkins:  &CheckinRepo{t: newTable[domain.Checkin](), now: now},
		trips:     &SingleTripRepo{t: newTable[domain.SingleTrip](), now: now},
		locations: &LocationRepo{t: newTable[domain.Location](), now: now},
		times:     &DepartureTimeRepo{t: newTable[domain.DepartureTime](), now: now},
		contracts: &ContractRepo{t: newTable[domain.Contract](), now: now},
	}
}

func (s *Store) Users() *UserRepo                   { return s.users }
func (s *Store) Vacations() *VacationRepo           { return s.vacations }
func (s *Store) Checkins() *CheckinRepo             { return s.checkins }
func (s *Store) SingleTrips() *SingleTripRepo       { return s.trips }
func (s *Store) Locations() *LocationRepo           { return s.locations }
func (s *Store) DepartureTimes() *DepartureTimeRepo { return s.times }
func (s *Store) Contracts() *ContractRepo           { return s.contracts }
