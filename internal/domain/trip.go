package domain

import "time"

type Direction string

const (
	Outbound Direction = "outbound" // ida
	Return   Direction = "return"   // retorno
)

func (d Direction) Valid() bool { return d == Outbound || d == Return }

type Checkin struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Date       Date      `json:"date"`
	Direction  Direction `json:"direction"`
	ReturnTime *string   `json:"returnTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TripStatus string

const (
	TripPending TripStatus = "pending"
	TripUsed    TripStatus = "used"
)

// SingleTrip is a one-shot pass. Used never goes back to false.
type SingleTrip struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Date       Date      `json:"date"`
	Direction  Direction `json:"direction"`
	ReturnTime *string   `json:"returnTime"`
	Used       bool      `json:"used"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (t SingleTrip) Status() TripStatus {
	if t.Used {
		return TripUsed
	}
	return TripPending
}

type CheckinRepository interface {
	Get(id int64) *Checkin
	List() []Checkin
	ListByUser(userID int64) []Checkin
	FindByDateAndDirection(userID int64, date Date, dir Direction) *Checkin
	Create(c Checkin) Checkin
	Delete(id int64) bool
}

type SingleTripRepository interface {
	Get(id int64) *SingleTrip
	List() []SingleTrip
	ListByUser(userID int64) []SingleTrip
	Create(t SingleTrip) SingleTrip
	MarkUsed(id int64) *SingleTrip
	Delete(id int64) bool
}
