package repo

import (
	"time"

	"shuttle-checkin/internal/domain"
)

type ContractRepo struct {
	t   *table[domain.Contract]
	now func() time.Time
}

var _ domain.ContractRepository = (*ContractRepo)(nil)

func (r *ContractRepo) Get(id int64) *domain.Contract { return r.t.get(id) }

func (r *ContractRepo) GetByUser(userID int64) *domain.Contract {
	return r.t.find(func(c domain.Contract) bool { return c.UserID == userID })
}

func (r *ContractRepo) List() []domain.Contract { return r.t.filter(nil) }

func (r *ContractRepo) Create(c domain.Contract) domain.Contract {
	return r.t.insert(func(id int64) domain.Contract {
		now := r.now()
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		return c
	})
}

// Update merges the patch and stamps UpdatedAt.
func (r *ContractRepo) Update(id int64, p domain.ContractPatch) *domain.Contract {
	return r.t.update(id, func(c *domain.Contract) {
		setBool(&c.Monday, p.Monday)
		setBool(&c.Tuesday, p.Tuesday)
		setBool(&c.Wednesday, p.Wednesday)
		setBool(&c.Thursday, p.Thursday)
		setBool(&c.Friday, p.Friday)
		if p.DepartureLocation != nil {
			c.DepartureLocation = *p.DepartureLocation
		}
		if p.ArrivalLocation != nil {
			c.ArrivalLocation = *p.ArrivalLocation
		}
		if p.ReturnTime != nil {
			c.ReturnTime = *p.ReturnTime
		}
		c.UpdatedAt = r.now()
	})
}

func (r *ContractRepo) Delete(id int64) bool { return r.t.remove(id) }

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
