// Package city provides the read-only catalog of cities that vacancies and
// candidates point at through their CityID.
package city

import (
	"context"

	"github.com/maauso/dreamjob/internal/memstore"
)

// City is an entry of the catalog.
type City struct {
	ID   int
	Name string
}

// Catalog lists the known cities. It is filled once on construction and never
// changes afterwards.
type Catalog struct {
	entries *memstore.Store[City]
}

// NewCatalog creates a catalog holding cities. Later entries with an already
// used ID are ignored.
func NewCatalog(cities ...City) *Catalog {
	c := &Catalog{entries: memstore.NewStore[City]()}
	for _, city := range cities {
		c.entries.Insert(city.ID, city)
	}
	return c
}

// FindAll returns all cities ordered by ID.
func (c *Catalog) FindAll(_ context.Context) []City {
	return c.entries.Snapshot()
}

// FindByID returns the city with the given ID.
func (c *Catalog) FindByID(_ context.Context, id int) (City, bool) {
	return c.entries.Get(id)
}

// Demo returns the cities referenced by the demo vacancies and candidates.
func Demo() []City {
	return []City{
		{ID: 1, Name: "Москва"},
		{ID: 2, Name: "Санкт-Петербург"},
		{ID: 3, Name: "Екатеринбург"},
	}
}
