package scoring

import "github.com/minsu/opportunity-finder/internal/models"

// Per-platform extractors reduce one platform's raw sub-record to a 0-100
// sub-score. Every formula is clamped to [0, 100], and ratio formulas guard
// their denominator: a malformed metric contributes 0 instead of a
// non-finite value leaking into the average.

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Demand: orders per month map 1:1 onto the score.
func fiverrDemand(d models.FiverrData) float64 {
	return clamp(float64(d.OrdersPerMonth))
}

// Competition: sellers per gig, scaled so one seller per two gigs scores 25.
func fiverrCompetition(d models.FiverrData) float64 {
	if d.GigCount <= 0 {
		return 0
	}
	return clamp(float64(d.SellerCount) / float64(d.GigCount) * 50)
}

func upworkDemand(d models.UpworkData) float64 {
	return clamp(float64(d.JobPostings) * 2)
}

func upworkCompetition(d models.UpworkData) float64 {
	return clamp(float64(d.ProposalCount) / 5)
}

func kmongDemand(d models.KmongData) float64 {
	return clamp(float64(d.OrdersPerMonth) * 1.25)
}

// Kmong reports a discrete level directly; anything unrecognized contributes 0.
func kmongCompetition(d models.KmongData) float64 {
	switch d.CompetitionLevel {
	case models.CompetitionLow:
		return 20
	case models.CompetitionMedium:
		return 50
	case models.CompetitionHigh:
		return 80
	default:
		return 0
	}
}

func freelancerDemand(d models.FreelancerData) float64 {
	return clamp(float64(d.ProjectCount) * 0.5)
}

func freelancerCompetition(d models.FreelancerData) float64 {
	return clamp(float64(d.BidCount) / 3)
}

func productHuntDemand(d models.ProductHuntData) float64 {
	return clamp(float64(d.Upvotes) / 2)
}

func redditDemand(d models.RedditData) float64 {
	switch {
	case d.Subscribers > 1000000:
		return 90
	case d.Subscribers > 500000:
		return 70
	default:
		return 50
	}
}

func chromeDemand(d models.ChromeData) float64 {
	return clamp(float64(d.Users) / 100)
}

// A large installed base means a saturated store category.
func chromeCompetition(d models.ChromeData) float64 {
	switch {
	case d.Users > 100000:
		return 70
	case d.Users > 50000:
		return 50
	default:
		return 30
	}
}
