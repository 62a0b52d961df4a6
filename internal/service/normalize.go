package service

import (
	"strings"

	"shuttle-checkin/internal/domain"
)

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// optional trims s and maps blank to nil.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// clearable trims s but keeps a blank value, which a patch reads as "clear".
func clearable(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// normalizeLeg validates a direction and its return-time label. Outbound legs never
// carry a return time; return legs must.
func normalizeLeg(dir domain.Direction, returnTime *string) (*string, error) {
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}
	if dir == domain.Outbound {
		return nil, nil
	}
	rt := optional(returnTime)
	if rt == nil {
		return nil, ErrReturnTimeRequired
	}
	return rt, nil
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
