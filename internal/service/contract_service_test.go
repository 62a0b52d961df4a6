package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuttle-checkin/internal/domain"
)

func validContract(userID int64) ContractInput {
	return ContractInput{
		UserID:            userID,
		Monday:            true,
		Wednesday:         true,
		DepartureLocation: "Terminal Central",
		ArrivalLocation:   "Campus Principal",
		ReturnTime:        "17h10",
	}
}

func TestContractOnlyForSubscribersOnce(t *testing.T) {
	f := newFixture(t)
	sub := f.user(t, "s@x.com", domain.RoleSubscriber).User
	rider := f.user(t, "r@x.com", domain.RoleSingleRider).User

	_, err := f.svc.Contracts.Create(validContract(rider.ID))
	assert.ErrorIs(t, err, ErrNotSubscriber)

	c, err := f.svc.Contracts.Create(validContract(sub.ID))
	require.NoError(t, err)
	assert.True(t, c.Monday)
	assert.False(t, c.Tuesday)

	_, err = f.svc.Contracts.Create(validContract(sub.ID))
	assert.ErrorIs(t, err, ErrContractExists)

	got, err := f.svc.Contracts.GetByUser(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.svc.Contracts.Create(validContract(999))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestContractRouteMustExist(t *testing.T) {
	f := newFixture(t)
	sub := f.user(t, "s@x.com", domain.RoleSubscriber).User

	in := validContract(sub.ID)
	in.DepartureLocation = "Campus Principal" // an arrival stop
	_, err := f.svc.Contracts.Create(in)
	assert.Equal(t, KindValidation, KindOf(err))

	in = validContract(sub.ID)
	in.ReturnTime = "23h59"
	_, err = f.svc.Contracts.Create(in)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestContractUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	sub := f.user(t, "s@x.com", domain.RoleSubscriber).User
	c, err := f.svc.Contracts.Create(validContract(sub.ID))
	require.NoError(t, err)

	yes := true
	got, err := f.svc.Contracts.Update(c.ID, domain.ContractPatch{Friday: &yes, ReturnTime: strp("18h10")})
	require.NoError(t, err)
	assert.True(t, got.Friday)
	assert.True(t, got.Monday)
	assert.Equal(t, "18h10", got.ReturnTime)

	_, err = f.svc.Contracts.Update(c.ID, domain.ContractPatch{ArrivalLocation: strp("Lugar Nenhum")})
	assert.Equal(t, KindValidation, KindOf(err))

	require.NoError(t, f.svc.Contracts.Delete(c.ID))
	assert.ErrorIs(t, f.svc.Contracts.Delete(c.ID), ErrContractNotFound)
	_, err = f.svc.Contracts.GetByUser(sub.ID)
	assert.ErrorIs(t, err, ErrContractNotFound)
}
