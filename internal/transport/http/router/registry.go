package router

import (
	"sort"

	"shuttle-checkin/internal/transport/http/ez"
)

// Module is a feature area that mounts its routes into the access tiers.
type Module interface{ Mount(ez.Groups) }

// Modules may implement prioritizer to control mount order (lower first, default 100).
type prioritizer interface{ Priority() int }

type Registry struct {
	mods []Module
}

func (r *Registry) Register(mods ...Module) {
	r.mods = append(r.mods, mods...)
}

// MountAll mounts every registered module into g, ordered by priority.
func (r *Registry) MountAll(g ez.Groups) {
	mods := append([]Module(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
