package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuttle-checkin/internal/domain"
)

func TestCheckinDuringVacationIsRejected(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@x.com", domain.RoleSubscriber).User

	_, err := f.svc.Vacations.Create(a.ID, day(2024, time.June, 1), day(2024, time.June, 10))
	require.NoError(t, err)

	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 5), Direction: domain.Outbound})
	assert.ErrorIs(t, err, ErrVacationConflict)

	// both ends are inclusive
	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 10), Direction: domain.Outbound})
	assert.ErrorIs(t, err, ErrVacationConflict)

	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 11), Direction: domain.Outbound})
	assert.NoError(t, err)
}

func TestCheckinOnePerDateAndDirection(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@x.com", domain.RoleSubscriber).User
	d := day(2024, time.June, 3)

	out, err := f.svc.Checkins.Create(a.ID, CheckinInput{Date: d, Direction: domain.Outbound, ReturnTime: strp("17h10")})
	require.NoError(t, err)
	assert.Nil(t, out.ReturnTime)

	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: d, Direction: domain.Outbound})
	assert.ErrorIs(t, err, ErrDuplicateCheckin)

	back, err := f.svc.Checkins.Create(a.ID, CheckinInput{Date: d, Direction: domain.Return, ReturnTime: strp("18h10")})
	require.NoError(t, err)
	require.NotNil(t, back.ReturnTime)
	assert.Equal(t, "18h10", *back.ReturnTime)

	assert.Len(t, f.svc.Checkins.ListByUser(a.ID), 2)
}

func TestCheckinValidation(t *testing.T) {
	f := newFixture(t)
	d := day(2024, time.June, 3)

	_, err := f.svc.Checkins.Create(1, CheckinInput{Direction: domain.Outbound})
	assert.ErrorIs(t, err, ErrDateRequired)
	_, err = f.svc.Checkins.Create(1, CheckinInput{Date: d, Direction: "ida"})
	assert.ErrorIs(t, err, ErrInvalidDirection)
	_, err = f.svc.Checkins.Create(1, CheckinInput{Date: d, Direction: domain.Return, ReturnTime: strp("  ")})
	assert.ErrorIs(t, err, ErrReturnTimeRequired)
}

func TestAdminCheckinListAndDelete(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@x.com", domain.RoleSubscriber).User
	b := f.user(t, "b@x.com", domain.RoleSubscriber).User

	c1, err := f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 3), Direction: domain.Outbound})
	require.NoError(t, err)
	_, err = f.svc.Checkins.Create(b.ID, CheckinInput{Date: day(2024, time.June, 3), Direction: domain.Outbound})
	require.NoError(t, err)
	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 4), Direction: domain.Outbound})
	require.NoError(t, err)

	assert.Len(t, f.svc.Checkins.List(CheckinFilter{}), 3)
	assert.Len(t, f.svc.Checkins.List(CheckinFilter{Date: day(2024, time.June, 3)}), 2)
	assert.Len(t, f.svc.Checkins.List(CheckinFilter{Date: day(2024, time.June, 3), UserID: a.ID}), 1)

	require.NoError(t, f.svc.Checkins.Delete(c1.ID))
	assert.ErrorIs(t, f.svc.Checkins.Delete(c1.ID), ErrCheckinNotFound)

	// the slot is free again
	_, err = f.svc.Checkins.Create(a.ID, CheckinInput{Date: day(2024, time.June, 3), Direction: domain.Outbound})
	assert.NoError(t, err)
}

func TestVacationRules(t *testing.T) {
	f := newFixture(t)
	a := f.user(t, "a@x.com", domain.RoleSubscriber).User
	b := f.user(t, "b@x.com", domain.RoleSubscriber).User

	_, err := f.svc.Vacations.Create(a.ID, day(2024, time.June, 10), day(2024, time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	v, err := f.svc.Vacations.Create(a.ID, day(2024, time.June, 1), day(2024, time.June, 1))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Vacations.Delete(b.ID, v.ID), ErrForbidden)
	assert.ErrorIs(t, f.svc.Vacations.Delete(a.ID, 999), ErrVacationNotFound)
	require.NoError(t, f.svc.Vacations.Delete(a.ID, v.ID))
	assert.Empty(t, f.svc.Vacations.List(a.ID))
}
