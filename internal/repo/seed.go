package repo

import (
	"strings"

	"shuttle-checkin/internal/domain"
)

type SeedOptions struct {
	AdminEmail      string
	AdminName       string
	AdminCredential string // already hashed
}

var (
	seedDepartureTimes = []string{"17h10", "18h10"}

	seedDepartureLocations = []string{
		"Terminal Central",
		"Estação Paulista",
		"Praça da Sé",
		"Shopping Norte",
		"Rodoviária",
	}
	seedArrivalLocations = []string{
		"Campus Principal",
		"Bloco A",
		"Bloco B",
		"Hospital Universitário",
		"Parque Tecnológico",
		"Portaria Sul",
	}
)

// Seed fills an empty store with the bootstrap admin and the default catalog.
func Seed(s *Store, o SeedOptions) {
	name := o.AdminName
	if name == "" {
		name = "Administrador"
	}
	s.users.Create(domain.User{
		Email:    strings.ToLower(strings.TrimSpace(o.AdminEmail)),
		Password: o.AdminCredential,
		Name:     name,
		Role:     domain.RoleAdmin,
	})
	for _, label := range seedDepartureTimes {
		s.times.Create(domain.DepartureTime{Time: label, Active: true})
	}
	for _, n := range seedDepartureLocations {
		s.locations.Create(domain.Location{Name: n, Type: domain.LocationDeparture})
	}
	for _, n := range seedArrivalLocations {
		s.locations.Create(domain.Location{Name: n, Type: domain.LocationArrival})
	}
}
