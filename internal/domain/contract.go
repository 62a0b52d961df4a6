package domain

import "time"

// Contract is a subscriber's standing weekly arrangement. One per user.
type Contract struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"userId"`
	Monday            bool      `json:"monday"`
	Tuesday           bool      `json:"tuesday"`
	Wednesday         bool      `json:"wednesday"`
	Thursday          bool      `json:"thursday"`
	Friday            bool      `json:"friday"`
	DepartureLocation string    `json:"departureLocation"`
	ArrivalLocation   string    `json:"arrivalLocation"`
	ReturnTime        string    `json:"returnTime"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ContractPatch struct {
	Monday            *bool
	Tuesday           *bool
	Wednesday         *bool
	Thursday          *bool
	Friday            *bool
	DepartureLocation *string
	ArrivalLocation   *string
	ReturnTime        *string
}

type ContractRepository interface {
	Get(id int64) *Contract
	GetByUser(userID int64) *Contract
	List() []Contract
	Create(c Contract) Contract
	Update(id int64, p ContractPatch) *Contract
	Delete(id int64) bool
}
