package scoring

import (
	"math"

	"github.com/minsu/opportunity-finder/internal/models"
)

// NeutralScore is the aggregate used when no platform contributes to a
// score. Product Hunt and Reddit define no competition formula, so an
// opportunity seen only there still gets a competition score of exactly 50.
const NeutralScore = 50

// DemandScore averages the demand sub-scores of every platform present in
// dp, rounding only after the average.
func DemandScore(dp models.DataPoints) int {
	var total float64
	var count int

	if dp.Fiverr != nil {
		total += fiverrDemand(*dp.Fiverr)
		count++
	}
	if dp.Upwork != nil {
		total += upworkDemand(*dp.Upwork)
		count++
	}
	if dp.Kmong != nil {
		total += kmongDemand(*dp.Kmong)
		count++
	}
	if dp.Freelancer != nil {
		total += freelancerDemand(*dp.Freelancer)
		count++
	}
	if dp.ProductHunt != nil {
		total += productHuntDemand(*dp.ProductHunt)
		count++
	}
	if dp.Reddit != nil {
		total += redditDemand(*dp.Reddit)
		count++
	}
	if dp.Chrome != nil {
		total += chromeDemand(*dp.Chrome)
		count++
	}

	if count == 0 {
		return NeutralScore
	}
	return int(math.Round(total / float64(count)))
}

// CompetitionScore averages the competition sub-scores of the platforms that
// define one. Platforms without a competition formula are excluded from the
// count, not averaged in as zero.
func CompetitionScore(dp models.DataPoints) int {
	var total float64
	var count int

	if dp.Fiverr != nil {
		total += fiverrCompetition(*dp.Fiverr)
		count++
	}
	if dp.Upwork != nil {
		total += upworkCompetition(*dp.Upwork)
		count++
	}
	if dp.Kmong != nil {
		total += kmongCompetition(*dp.Kmong)
		count++
	}
	if dp.Freelancer != nil {
		total += freelancerCompetition(*dp.Freelancer)
		count++
	}
	if dp.Chrome != nil {
		total += chromeCompetition(*dp.Chrome)
		count++
	}

	if count == 0 {
		return NeutralScore
	}
	return int(math.Round(total / float64(count)))
}
