// Package scoring turns raw per-platform metrics into the derived demand,
// competition and ROI scores that rank an opportunity. Every function here is
// pure and total: malformed platform data degrades to a neutral contribution
// instead of an error.
package scoring

import (
	"math"

	"github.com/minsu/opportunity-finder/internal/models"
)

// Score attaches every derived field to a raw opportunity and returns the
// fully-populated record. The derived fields are always consistent with each
// other: Competition is exactly the classification of CompetitionScore, and
// MarketSize is DemandScore on a 0-10 scale.
func Score(raw models.RawOpportunity) models.Opportunity {
	demand := DemandScore(raw.DataPoints)
	competition := CompetitionScore(raw.DataPoints)
	level := ClassifyCompetition(competition)

	return models.Opportunity{
		ID:               raw.ID,
		Title:            raw.Title,
		Description:      raw.Description,
		Platforms:        raw.Platforms,
		AveragePrice:     raw.AveragePrice,
		MonthlyRevenue:   MonthlyRevenue(raw.AveragePrice, demand),
		DevTime:          raw.DevTime,
		Competition:      level,
		CompetitionScore: competition,
		DemandScore:      demand,
		MarketSize:       int(math.Round(float64(demand) / 10)),
		TrendDirection:   raw.TrendDirection,
		ROIScore:         CalculateROI(raw.AveragePrice, demand, raw.DevTime, level),
		Category:         raw.Category,
		Tags:             raw.Tags,
		DataPoints:       raw.DataPoints,
		TechStack:        raw.TechStack,
		ActionPlan:       raw.ActionPlan,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}
}
