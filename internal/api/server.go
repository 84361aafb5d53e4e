package api

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/minsu/opportunity-finder/internal/catalog"
	"github.com/minsu/opportunity-finder/internal/config"
	"github.com/minsu/opportunity-finder/internal/models"
	"github.com/minsu/opportunity-finder/internal/scoring"
)

type Server struct {
	Catalog *catalog.Catalog
	Legacy  catalog.LegacySources
	Echo    *echo.Echo

	log *logrus.Logger
}

type listResponse struct {
	Success bool                 `json:"success"`
	Data    []models.Opportunity `json:"data"`
	Count   int                  `json:"count"`
	Total   int                  `json:"total"`
}

func NewServer(cat *catalog.Catalog, legacy catalog.LegacySources, cfg config.Config, log *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Anything unexpected leaves the process as a {success:false} envelope.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if c.Response().Committed {
			return
		}
		if log != nil && code >= http.StatusInternalServerError {
			log.WithError(err).Error("request failed")
		}
		_ = c.JSON(code, map[string]interface{}{"success": false, "error": msg})
	}

	s := &Server{
		Catalog: cat,
		Legacy:  legacy,
		Echo:    e,
		log:     log,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api/v1")
	api.GET("/opportunities", s.handleListOpportunities)
	api.GET("/opportunities/:id", s.handleGetOpportunity)
	api.GET("/stats", s.handleGetStats)

	// Legacy per-source routes kept for backward display compatibility.
	api.GET("/sources/chrome-extensions", s.handleChromeExtensions)
	api.GET("/sources/reddit-trends", s.handleRedditTrends)
	api.GET("/sources/producthunt", s.handleProductHunt)
}

// Start begins listening on the given port.
func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// specFromQuery translates query parameters into a FilterSpec. Unparseable
// values fall back to the unconstrained default, mirroring how the
// presentation layer treats an empty control.
func specFromQuery(c echo.Context) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		SortBy: catalog.SortKey(c.QueryParam("sort")),
	}

	if v, err := strconv.ParseFloat(c.QueryParam("min_revenue"), 64); err == nil && v > 0 {
		spec.RevenueMin = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_revenue"), 64); err == nil && v > 0 {
		spec.RevenueMax = v
	}
	if v, err := strconv.Atoi(c.QueryParam("max_dev_time")); err == nil && v > 0 {
		spec.DevTimeMax = v
	}
	if v, err := strconv.Atoi(c.QueryParam("min_roi")); err == nil && v > 0 {
		spec.ROIThreshold = v
	}

	for _, v := range c.QueryParams()["categories"] {
		spec.Categories = append(spec.Categories, models.Category(v))
	}
	for _, v := range c.QueryParams()["platforms"] {
		spec.Platforms = append(spec.Platforms, models.Platform(v))
	}
	for _, v := range c.QueryParams()["competition"] {
		spec.Competition = append(spec.Competition, models.Competition(v))
	}

	if c.QueryParam("order") == "asc" {
		spec.Order = catalog.OrderAsc
	}

	return spec
}

func (s *Server) handleListOpportunities(c echo.Context) error {
	selected := catalog.Select(s.Catalog.All(), specFromQuery(c))
	return c.JSON(http.StatusOK, listResponse{
		Success: true,
		Data:    selected,
		Count:   len(selected),
		Total:   s.Catalog.Len(),
	})
}

func (s *Server) handleGetOpportunity(c echo.Context) error {
	opp, ok := s.Catalog.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "opportunity not found")
	}
	return c.JSON(http.StatusOK, opp)
}

func (s *Server) handleGetStats(c echo.Context) error {
	selected := catalog.Select(s.Catalog.All(), specFromQuery(c))
	return c.JSON(http.StatusOK, catalog.Summarize(selected))
}

// rescoreLegacy applies the legacy formula to a copy of a source list.
func rescoreLegacy(list []models.LegacyOpportunity) []models.LegacyOpportunity {
	out := make([]models.LegacyOpportunity, len(list))
	copy(out, list)
	for i := range out {
		out[i].ROIScore = scoring.LegacyROI(out[i].Revenue, out[i].MarketSize, out[i].DevTime)
	}
	return out
}

func (s *Server) handleChromeExtensions(c echo.Context) error {
	opps := rescoreLegacy(s.Legacy.ChromeExtensions)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    opps,
		"count":   len(opps),
	})
}

func (s *Server) handleRedditTrends(c echo.Context) error {
	opps := rescoreLegacy(s.Legacy.RedditTrends)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    opps,
		"count":   len(opps),
		"sources": []string{"r/SaaS", "r/Entrepreneur", "r/microsaas"},
	})
}

func (s *Server) handleProductHunt(c echo.Context) error {
	opps := rescoreLegacy(s.Legacy.ProductHunt)

	// Trending first
	sort.SliceStable(opps, func(i, j int) bool { return opps[i].Upvotes > opps[j].Upvotes })

	totalUpvotes := 0
	for _, opp := range opps {
		totalUpvotes += opp.Upvotes
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"data":         opps,
		"count":        len(opps),
		"totalUpvotes": totalUpvotes,
	})
}
