// rank prints the scored catalog as a ranked table, with the same filters
// the API exposes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/minsu/opportunity-finder/internal/catalog"
	"github.com/minsu/opportunity-finder/internal/models"
)

func main() {
	sortBy := flag.String("sort", "roi", "sort key: roi, revenue, price, devTime, demand, competition")
	order := flag.String("order", "desc", "sort order: asc or desc")
	categories := flag.String("categories", "", "comma-separated category filter")
	platforms := flag.String("platforms", "", "comma-separated platform filter")
	maxDevTime := flag.Int("max-dev-time", 0, "maximum dev time in days (0 = unbounded)")
	minRevenue := flag.Float64("min-revenue", 0, "minimum monthly revenue")
	maxRevenue := flag.Float64("max-revenue", 0, "maximum monthly revenue (0 = unbounded)")
	top := flag.Int("top", 0, "show only the first N rows (0 = all)")
	flag.Parse()

	raw, err := catalog.LoadSeed()
	if err != nil {
		log.Fatal(err)
	}
	cat := catalog.New(raw)

	spec := catalog.FilterSpec{
		RevenueMin: *minRevenue,
		RevenueMax: *maxRevenue,
		DevTimeMax: *maxDevTime,
		SortBy:     catalog.SortKey(*sortBy),
		Order:      catalog.SortOrder(*order),
	}
	for _, v := range splitCSV(*categories) {
		spec.Categories = append(spec.Categories, models.Category(v))
	}
	for _, v := range splitCSV(*platforms) {
		spec.Platforms = append(spec.Platforms, models.Platform(v))
	}

	selected := catalog.Select(cat.All(), spec)
	if *top > 0 && len(selected) > *top {
		selected = selected[:*top]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Title", "Category", "Platforms", "Price", "Monthly Rev", "Days", "Demand", "Competition", "ROI"})

	for i, opp := range selected {
		names := make([]string, len(opp.Platforms))
		for j, p := range opp.Platforms {
			names[j] = string(p)
		}
		t.AppendRow(table.Row{
			i + 1,
			opp.Title,
			opp.Category,
			strings.Join(names, ","),
			fmt.Sprintf("$%.0f", opp.AveragePrice),
			fmt.Sprintf("$%d", opp.MonthlyRevenue),
			opp.DevTime,
			opp.DemandScore,
			fmt.Sprintf("%s (%d)", opp.Competition, opp.CompetitionScore),
			opp.ROIScore,
		})
	}
	t.Render()

	summary := catalog.Summarize(selected)
	fmt.Printf("\n%d of %d opportunities | avg ROI %d | best category %s | total revenue $%d/mo\n",
		summary.Count, cat.Len(), summary.AvgROI, summary.BestCategory, summary.TotalRevenue)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
