package catalog

import (
	"embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/minsu/opportunity-finder/internal/models"
)

//go:embed seed/opportunities.yaml seed/legacy_sources.yaml
var seedFS embed.FS

// LegacySources are the flat single-source lists behind the per-source
// endpoints.
type LegacySources struct {
	ChromeExtensions []models.LegacyOpportunity `yaml:"chrome_extensions"`
	RedditTrends     []models.LegacyOpportunity `yaml:"reddit_trends"`
	ProductHunt      []models.LegacyOpportunity `yaml:"producthunt"`
}

// LoadSeed reads the embedded multi-platform dataset. Records without an id
// get a generated one so every opportunity stays addressable.
func LoadSeed() ([]models.RawOpportunity, error) {
	data, err := seedFS.ReadFile("seed/opportunities.yaml")
	if err != nil {
		return nil, fmt.Errorf("read seed dataset: %w", err)
	}

	var doc struct {
		Opportunities []models.RawOpportunity `yaml:"opportunities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}

	for i := range doc.Opportunities {
		if doc.Opportunities[i].ID == "" {
			doc.Opportunities[i].ID = uuid.NewString()
		}
	}
	return doc.Opportunities, nil
}

// LoadLegacySources reads the embedded single-source lists.
func LoadLegacySources() (LegacySources, error) {
	data, err := seedFS.ReadFile("seed/legacy_sources.yaml")
	if err != nil {
		return LegacySources{}, fmt.Errorf("read legacy sources: %w", err)
	}

	var sources LegacySources
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return LegacySources{}, fmt.Errorf("parse legacy sources: %w", err)
	}

	for _, list := range [][]models.LegacyOpportunity{sources.ChromeExtensions, sources.RedditTrends, sources.ProductHunt} {
		for i := range list {
			if list[i].ID == "" {
				list[i].ID = uuid.NewString()
			}
		}
	}
	return sources, nil
}
