package scoring

import (
	"math"

	"github.com/minsu/opportunity-finder/internal/models"
)

// dailyOpportunityCost is what a day of development could earn doing other
// work, in USD.
const dailyOpportunityCost = 200

// ClassifyCompetition maps a 0-100 competition score to its discrete level.
// 40 and 70 belong to the upper band.
func ClassifyCompetition(score int) models.Competition {
	switch {
	case score < 40:
		return models.CompetitionLow
	case score < 70:
		return models.CompetitionMedium
	default:
		return models.CompetitionHigh
	}
}

func competitionMultiplier(level models.Competition) float64 {
	switch level {
	case models.CompetitionMedium:
		return 1.5
	case models.CompetitionHigh:
		return 2.5
	default:
		return 1
	}
}

// MonthlyRevenue estimates monthly revenue potential: the demand score scaled
// to an order count times the average price.
func MonthlyRevenue(averagePrice float64, demandScore int) int {
	return int(math.Round(averagePrice * float64(demandScore) / 10))
}

// CalculateROI is the competition-aware ranking formula:
//
//	ROI = (monthly revenue potential) / (development cost) × 100
//
// where development cost is devTime × dailyOpportunityCost scaled by the
// competition multiplier (low 1, medium 1.5, high 2.5). devTime of 0 is a
// defined boundary and yields 0.
func CalculateROI(averagePrice float64, demandScore, devTime int, level models.Competition) int {
	if devTime == 0 {
		return 0
	}

	monthlyRevenue := averagePrice * float64(demandScore) / 10
	developmentCost := float64(devTime) * dailyOpportunityCost * competitionMultiplier(level)

	return int(math.Round(monthlyRevenue / developmentCost * 100))
}

// LegacyROI is the flat single-source formula, round(revenue × marketSize /
// devTime), kept only for the per-source endpoints that predate the
// multi-platform model. New code ranks with CalculateROI.
func LegacyROI(revenue float64, marketSize, devTime int) int {
	if devTime == 0 {
		return 0
	}
	return int(math.Round(revenue * float64(marketSize) / float64(devTime)))
}
