package scoring

import (
	"testing"

	"github.com/minsu/opportunity-finder/internal/models"
)

func TestScore_SingleKmongPlatform(t *testing.T) {
	raw := models.RawOpportunity{
		ID:           "km-test",
		Title:        "엑셀 자동화 매크로",
		Platforms:    []models.Platform{models.PlatformKmong},
		AveragePrice: 150,
		DevTime:      3,
		Category:     models.CategoryAutomation,
		DataPoints: models.DataPoints{
			Kmong: &models.KmongData{
				ServiceCount:     42,
				OrdersPerMonth:   85,
				CompetitionLevel: models.CompetitionLow,
			},
		},
	}

	opp := Score(raw)

	if opp.DemandScore != 100 {
		t.Fatalf("expected demand 100 (85 × 1.25 clamped), got %d", opp.DemandScore)
	}
	if opp.CompetitionScore != 20 {
		t.Fatalf("expected competition score 20, got %d", opp.CompetitionScore)
	}
	if opp.Competition != models.CompetitionLow {
		t.Fatalf("expected low competition, got %s", opp.Competition)
	}
	if opp.MonthlyRevenue != 1500 {
		t.Fatalf("expected monthly revenue 1500, got %d", opp.MonthlyRevenue)
	}
	if opp.MarketSize != 10 {
		t.Fatalf("expected market size 10, got %d", opp.MarketSize)
	}
	if opp.ROIScore != 250 {
		t.Fatalf("expected ROI 250, got %d", opp.ROIScore)
	}
}

func TestScore_EmptyDataPointsNeutral(t *testing.T) {
	opp := Score(models.RawOpportunity{ID: "bare", AveragePrice: 100, DevTime: 2})

	if opp.DemandScore != 50 || opp.CompetitionScore != 50 {
		t.Fatalf("expected 50/50, got %d/%d", opp.DemandScore, opp.CompetitionScore)
	}
	if opp.Competition != models.CompetitionMedium {
		t.Fatalf("expected medium (score 50), got %s", opp.Competition)
	}
	if opp.MonthlyRevenue != 500 {
		t.Fatalf("expected monthly revenue 500, got %d", opp.MonthlyRevenue)
	}
}

func TestScore_CompetitionLevelMatchesScore(t *testing.T) {
	cases := []models.DataPoints{
		{},
		{Kmong: &models.KmongData{CompetitionLevel: models.CompetitionHigh}},
		{Upwork: &models.UpworkData{ProposalCount: 500}},
		{Chrome: &models.ChromeData{Users: 1000}},
		{ProductHunt: &models.ProductHuntData{Upvotes: 50}},
	}

	for i, dp := range cases {
		opp := Score(models.RawOpportunity{AveragePrice: 100, DevTime: 5, DataPoints: dp})
		if opp.Competition != ClassifyCompetition(opp.CompetitionScore) {
			t.Fatalf("case %d: level %s disagrees with score %d", i, opp.Competition, opp.CompetitionScore)
		}
	}
}

func TestScore_PreservesSourceFields(t *testing.T) {
	raw := models.RawOpportunity{
		ID:             "fiv-9",
		Title:          "Custom API Development",
		Description:    "REST API 개발 서비스",
		Platforms:      []models.Platform{models.PlatformFiverr, models.PlatformUpwork},
		AveragePrice:   400,
		DevTime:        7,
		TrendDirection: models.TrendStable,
		Category:       models.CategoryDeveloperTool,
		Tags:           []string{"API", "Backend"},
		TechStack:      []string{"Node.js"},
		CreatedAt:      "2025-10-10",
		UpdatedAt:      "2025-10-18",
	}

	opp := Score(raw)
	if opp.ID != raw.ID || opp.Title != raw.Title || opp.Category != raw.Category {
		t.Fatal("source fields must carry over unchanged")
	}
	if opp.TrendDirection != models.TrendStable || len(opp.Tags) != 2 {
		t.Fatal("descriptive fields must carry over unchanged")
	}
}
