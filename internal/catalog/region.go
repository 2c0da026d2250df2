package catalog

import (
	"strings"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
)

// RegionMembers returns the spots whose region string contains one of the
// region's member tokens, in their original order. A region without members
// falls back to matching its own name, the same containment check the region
// filter uses.
func RegionMembers(spots []domain.Destination, region domain.Region) []domain.Destination {
	tokens := region.Members
	if len(tokens) == 0 {
		tokens = []string{region.Name}
	}
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			lowered = append(lowered, t)
		}
	}

	out := make([]domain.Destination, 0)
	for _, spot := range spots {
		r := strings.ToLower(spot.Region)
		for _, t := range lowered {
			if strings.Contains(r, t) {
				out = append(out, spot)
				break
			}
		}
	}
	return out
}
