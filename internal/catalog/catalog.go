// Package catalog owns the scored opportunity collection and the filter,
// sort and statistics operations over it. The collection is built once at
// startup and never mutated; every query produces a new view.
package catalog

import (
	"github.com/minsu/opportunity-finder/internal/models"
	"github.com/minsu/opportunity-finder/internal/scoring"
)

// Catalog is the authoritative scored collection. Construct it with New and
// share it freely: all methods are read-only.
type Catalog struct {
	opportunities []models.Opportunity
}

// New scores every raw record and returns the owned, immutable collection.
// This replaces any notion of a module-level global: whichever entry point
// builds the application's data context calls New exactly once.
func New(raw []models.RawOpportunity) *Catalog {
	scored := make([]models.Opportunity, 0, len(raw))
	for _, r := range raw {
		scored = append(scored, scoring.Score(r))
	}
	return &Catalog{opportunities: scored}
}

// All returns a copy of the collection in original order. Callers may sort
// the returned slice without affecting the catalog.
func (c *Catalog) All() []models.Opportunity {
	out := make([]models.Opportunity, len(c.opportunities))
	copy(out, c.opportunities)
	return out
}

func (c *Catalog) Len() int {
	return len(c.opportunities)
}

// Get looks up one opportunity by id.
func (c *Catalog) Get(id string) (models.Opportunity, bool) {
	for _, opp := range c.opportunities {
		if opp.ID == id {
			return opp, true
		}
	}
	return models.Opportunity{}, false
}
