package catalog

import (
	"sort"

	"github.com/minsu/opportunity-finder/internal/models"
)

type SortKey string

const (
	SortROI         SortKey = "roi"
	SortRevenue     SortKey = "revenue"
	SortPrice       SortKey = "price"
	SortDevTime     SortKey = "devTime"
	SortDemand      SortKey = "demand"
	SortMarketSize  SortKey = "marketSize"
	SortCompetition SortKey = "competition"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterSpec is the user-chosen constraint set applied to the scored
// collection before display. Zero values mean "unconstrained": empty sets
// accept everything and zero bounds are unbounded.
type FilterSpec struct {
	RevenueMin   float64
	RevenueMax   float64
	DevTimeMax   int
	ROIThreshold int
	Categories   []models.Category
	Platforms    []models.Platform
	Competition  []models.Competition
	SortBy       SortKey   // default SortROI
	Order        SortOrder // default OrderDesc
}

// Select filters the scored collection by spec and returns a new slice
// ordered by the chosen key. The input is never mutated; ties keep their
// original collection order.
func Select(scored []models.Opportunity, spec FilterSpec) []models.Opportunity {
	out := make([]models.Opportunity, 0, len(scored))
	for _, opp := range scored {
		if matches(opp, spec) {
			out = append(out, opp)
		}
	}

	desc := spec.Order != OrderAsc
	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortValue(out[i], spec.SortBy), sortValue(out[j], spec.SortBy)
		if desc {
			return a > b
		}
		return a < b
	})

	return out
}

func matches(opp models.Opportunity, spec FilterSpec) bool {
	rev := float64(opp.MonthlyRevenue)
	if spec.RevenueMin > 0 && rev < spec.RevenueMin {
		return false
	}
	if spec.RevenueMax > 0 && rev > spec.RevenueMax {
		return false
	}
	if spec.DevTimeMax > 0 && opp.DevTime > spec.DevTimeMax {
		return false
	}
	if spec.ROIThreshold > 0 && opp.ROIScore < spec.ROIThreshold {
		return false
	}
	if len(spec.Categories) > 0 && !containsCategory(spec.Categories, opp.Category) {
		return false
	}
	if len(spec.Competition) > 0 && !containsCompetition(spec.Competition, opp.Competition) {
		return false
	}
	if len(spec.Platforms) > 0 && !intersectsPlatforms(spec.Platforms, opp.Platforms) {
		return false
	}
	return true
}

func sortValue(opp models.Opportunity, key SortKey) float64 {
	switch key {
	case SortRevenue:
		return float64(opp.MonthlyRevenue)
	case SortPrice:
		return opp.AveragePrice
	case SortDevTime:
		return float64(opp.DevTime)
	case SortDemand, SortMarketSize:
		return float64(opp.DemandScore)
	case SortCompetition:
		return float64(opp.CompetitionScore)
	default:
		return float64(opp.ROIScore)
	}
}

func containsCategory(set []models.Category, c models.Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsCompetition(set []models.Competition, c models.Competition) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func intersectsPlatforms(set, platforms []models.Platform) bool {
	for _, want := range set {
		for _, have := range platforms {
			if want == have {
				return true
			}
		}
	}
	return false
}
