// Package metrics holds the business counters exported on /metrics next to the
// HTTP ones.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckinsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "shuttle_checkins_created_total", Help: "Check-ins created, by source"},
		[]string{"source"}, // self / single_trip
	)
	RuleRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "shuttle_rule_rejections_total", Help: "Requests refused by a business rule"},
		[]string{"reason"},
	)
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "shuttle_logins_total", Help: "Login attempts, by outcome"},
		[]string{"outcome"}, // ok / failed
	)
)

func init() { prometheus.MustRegister(CheckinsCreated, RuleRejections, Logins) }
