package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shuttle-checkin/internal/core/auth"
	"shuttle-checkin/internal/core/session"
	"shuttle-checkin/internal/domain"
	"shuttle-checkin/internal/repo"
	"shuttle-checkin/pkg/utils"
)

var cheapHasher = utils.Hasher{N: 16, R: 1, P: 1, KeyLen: 32, SaltLen: 8}

type fixture struct {
	svc      *Services
	store    *repo.Store
	sessions *session.Memory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) }
	store := repo.NewStore(now)
	cred, err := cheapHasher.Hash("admin123")
	require.NoError(t, err)
	repo.Seed(store, repo.SeedOptions{AdminEmail: "admin@shuttle.local", AdminCredential: cred})

	sessions := session.NewMemory()
	svc := New(Deps{
		Users:          store.Users(),
		Vacations:      store.Vacations(),
		Checkins:       store.Checkins(),
		SingleTrips:    store.SingleTrips(),
		Locations:      store.Locations(),
		DepartureTimes: store.DepartureTimes(),
		Contracts:      store.Contracts(),
		Credentials:    cheapHasher,
		Tokens:         &auth.JWTer{Secret: []byte("test-secret"), Issuer: "shuttle-test", TTL: time.Hour},
		Sessions:       sessions,
		SessionTTL:     time.Hour,
	})
	return fixture{svc: svc, store: store, sessions: sessions}
}

// user creates an account directly through the admin path.
func (f fixture) user(t *testing.T, email string, role domain.Role) NewAccount {
	t.Helper()
	acc, err := f.svc.Users.Create(CreateUserInput{Email: email, Name: "Passageiro", Role: role})
	require.NoError(t, err)
	return acc
}

func day(y int, m time.Month, d int) domain.Date { return domain.NewDate(y, m, d) }
