package domain

import "time"

type LocationType string

const (
	LocationDeparture LocationType = "departure"
	LocationArrival   LocationType = "arrival"
)

func (t LocationType) Valid() bool { return t == LocationDeparture || t == LocationArrival }

type Location struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Type      LocationType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

type LocationPatch struct {
	Name *string
	Type *LocationType
}

// DepartureTime is a bus time label such as "17h10".
type DepartureTime struct {
	ID        int64     `json:"id"`
	Time      string    `json:"time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type DepartureTimePatch struct {
	Time   *string
	Active *bool
}

type LocationRepository interface {
	Get(id int64) *Location
	GetByName(name string) *Location
	List() []Location
	Create(l Location) Location
	Update(id int64, p LocationPatch) *Location
	Delete(id int64) bool
}

type DepartureTimeRepository interface {
	Get(id int64) *DepartureTime
	GetByTime(label string) *DepartureTime
	List() []DepartureTime
	Create(t DepartureTime) DepartureTime
	Update(id int64, p DepartureTimePatch) *DepartureTime
	Delete(id int64) bool
}
