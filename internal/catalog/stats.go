package catalog

import (
	"math"
	"sort"

	"github.com/minsu/opportunity-finder/internal/models"
)

// maxChartBuckets caps the category chart series to the strongest entries.
const maxChartBuckets = 6

// ChartBucket is one category's slice of the chart series: mean ROI across
// the category's opportunities and how many there are.
type ChartBucket struct {
	Name          string `json:"name"`
	ROI           int    `json:"roi"`
	Opportunities int    `json:"opportunities"`
}

// Summary holds the headline numbers for a filtered view of the catalog.
type Summary struct {
	Count        int           `json:"count"`
	AvgROI       int           `json:"avgROI"`
	BestCategory string        `json:"bestCategory"`
	TotalRevenue int           `json:"totalRevenue"`
	ChartBuckets []ChartBucket `json:"chartBuckets"`
}

// Summarize derives the summary for a filtered sequence. Best category is
// the one with the highest summed ROI; ties go to the category encountered
// first. Chart buckets are sorted by mean ROI descending and truncated to
// the top six, again keeping first-encounter order on ties.
func Summarize(selected []models.Opportunity) Summary {
	if len(selected) == 0 {
		return Summary{BestCategory: "N/A", ChartBuckets: []ChartBucket{}}
	}

	type categoryTotal struct {
		name  string
		roi   int
		count int
	}

	var roiSum, revenueSum int
	index := make(map[string]int)
	totals := make([]categoryTotal, 0)

	for _, opp := range selected {
		roiSum += opp.ROIScore
		revenueSum += opp.MonthlyRevenue

		name := string(opp.Category)
		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, categoryTotal{name: name})
		}
		totals[i].roi += opp.ROIScore
		totals[i].count++
	}

	best := totals[0]
	for _, t := range totals[1:] {
		if t.roi > best.roi {
			best = t
		}
	}

	buckets := make([]ChartBucket, 0, len(totals))
	for _, t := range totals {
		buckets = append(buckets, ChartBucket{
			Name:          t.name,
			ROI:           int(math.Round(float64(t.roi) / float64(t.count))),
			Opportunities: t.count,
		})
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].ROI > buckets[j].ROI })
	if len(buckets) > maxChartBuckets {
		buckets = buckets[:maxChartBuckets]
	}

	return Summary{
		Count:        len(selected),
		AvgROI:       int(math.Round(float64(roiSum) / float64(len(selected)))),
		BestCategory: best.name,
		TotalRevenue: revenueSum,
		ChartBuckets: buckets,
	}
}
