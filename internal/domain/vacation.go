package domain

import "time"

type VacationPeriod struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	StartDate Date      `json:"startDate"`
	EndDate   Date      `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}

func (v VacationPeriod) Contains(d Date) bool { return d.Between(v.StartDate, v.EndDate) }

type VacationRepository interface {
	Get(id int64) *VacationPeriod
	ListByUser(userID int64) []VacationPeriod
	Create(v VacationPeriod) VacationPeriod
	Delete(id int64) bool
}
