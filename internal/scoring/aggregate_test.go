package scoring

import (
	"testing"

	"github.com/minsu/opportunity-finder/internal/models"
)

func TestDemandScore_EmptyDataPointsDefaultsNeutral(t *testing.T) {
	if got := DemandScore(models.DataPoints{}); got != 50 {
		t.Fatalf("expected neutral 50, got %d", got)
	}
	if got := CompetitionScore(models.DataPoints{}); got != 50 {
		t.Fatalf("expected neutral 50, got %d", got)
	}
}

func TestCompetitionScore_DemandOnlyPlatformsDefaultNeutral(t *testing.T) {
	// Product Hunt and Reddit define no competition formula, so nothing
	// contributes and the aggregate must be exactly 50.
	dp := models.DataPoints{
		ProductHunt: &models.ProductHuntData{Upvotes: 1250},
		Reddit:      &models.RedditData{Subscribers: 450000},
	}

	if got := CompetitionScore(dp); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := DemandScore(dp); got == 50 {
		t.Fatalf("demand should aggregate contributing platforms, got neutral %d", got)
	}
}

func TestDemandScore_AveragesOnlyContributingPlatforms(t *testing.T) {
	// fiverr 450 orders clamps to 100; chrome 8500 users scores 85.
	dp := models.DataPoints{
		Fiverr: &models.FiverrData{GigCount: 45, OrdersPerMonth: 450, SellerCount: 12},
		Chrome: &models.ChromeData{Users: 8500},
	}

	// (100 + 85) / 2 = 92.5, rounded only after averaging.
	if got := DemandScore(dp); got != 93 {
		t.Fatalf("expected 93, got %d", got)
	}
}

func TestCompetitionScore_RoundsAfterAveraging(t *testing.T) {
	// fiverr 12/45*50 = 13.33..., upwork 45/5 = 9. Average 11.16... -> 11.
	dp := models.DataPoints{
		Fiverr: &models.FiverrData{GigCount: 45, SellerCount: 12},
		Upwork: &models.UpworkData{ProposalCount: 45},
	}

	if got := CompetitionScore(dp); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
}
