// Package region implements the location affinity rules used to scope a
// community agent's view to "their" farmers.
package region

import (
	"strings"

	"agriconnect/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// IsRegional reports whether two free-text locations refer to the same
// region: case-insensitive, whitespace-trimmed substring containment in
// either direction. Empty locations never match.
//
// This is deliberately approximate. The locations are free text, not
// geocoded, so false positives and negatives are expected and acceptable.
func IsRegional(a, b string) bool {
	cleanA := strings.ToLower(strings.TrimSpace(a))
	cleanB := strings.ToLower(strings.TrimSpace(b))
	if cleanA == "" || cleanB == "" {
		return false
	}

	return strings.Contains(cleanA, cleanB) || strings.Contains(cleanB, cleanA)
}

// Matcher combines the substring rule with a geodesic proximity check for
// users that carry coordinates.
type Matcher struct {
	maxDistanceMeters float64
}

// NewMatcher creates a Matcher with the given proximity radius in kilometers.
func NewMatcher(maxDistanceKm float64) *Matcher {
	return &Matcher{maxDistanceMeters: maxDistanceKm * 1000}
}

// Near reports whether two coordinate pairs lie within the matcher's radius.
// A missing coordinate on either side is never near.
func (m *Matcher) Near(a, b *entity.Coordinates) bool {
	if a == nil || b == nil {
		return false
	}

	return geo.Distance(orb.Point{a.Lng, a.Lat}, orb.Point{b.Lng, b.Lat}) <= m.maxDistanceMeters
}

// Matches reports whether other falls inside the agent's region, by location
// text or by coordinates.
func (m *Matcher) Matches(agent, other *entity.User) bool {
	if agent == nil || other == nil {
		return false
	}
	if IsRegional(agent.Location, other.Location) {
		return true
	}

	return m.Near(agent.Coords, other.Coords)
}
