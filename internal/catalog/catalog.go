// Package catalog owns the authoritative place list and the curated
// routes that reference it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/geotrack/discovery/internal/geotrack"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrLoadInProgress = errors.New("catalog load already in progress")
)

// Loader produces the place list. Implementations may hit the network;
// the static loader shipped today returns fixed demo data, but the
// catalog treats every load as a fallible asynchronous operation so a
// remote fetch is a drop-in swap.
type Loader interface {
	Load(ctx context.Context) ([]geotrack.Place, error)
}

type Catalog struct {
	mu      sync.RWMutex
	loading bool
	places  []geotrack.Place
	byID    map[int]geotrack.Place
	routes  []geotrack.Route
}

func New() *Catalog {
	return &Catalog{byID: make(map[int]geotrack.Place)}
}

// Load replaces the catalog contents with whatever loader returns.
// Loads are serialized: a call while another is in flight fails with
// ErrLoadInProgress. On loader failure the catalog is left empty so
// dependents degrade to "no places" instead of serving stale data.
func (c *Catalog) Load(ctx context.Context, loader Loader) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrLoadInProgress
	}
	c.loading = true
	c.mu.Unlock()

	places, err := loader.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.places = nil
		c.byID = make(map[int]geotrack.Place)
		return fmt.Errorf("loading places: %w", err)
	}

	c.places = places
	c.byID = make(map[int]geotrack.Place, len(places))
	for _, p := range places {
		c.byID[p.ID] = p
	}
	return nil
}

// Places returns a copy of the place list in load order.
func (c *Catalog) Places() []geotrack.Place {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]geotrack.Place, len(c.places))
	copy(out, c.places)
	return out
}

func (c *Catalog) FindByID(id int) (geotrack.Place, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	if !ok {
		return geotrack.Place{}, ErrNotFound
	}
	return p, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.places)
}

func (c *Catalog) SetRoutes(routes []geotrack.Route) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes = routes
}

func (c *Catalog) Routes() []geotrack.Route {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]geotrack.Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// Bounds resolves a route's places to coordinates for the map's
// fitBounds call. Stale place ids are skipped rather than failing the
// whole route.
func (c *Catalog) Bounds(routeID int) ([][2]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var route *geotrack.Route
	for i := range c.routes {
		if c.routes[i].ID == routeID {
			route = &c.routes[i]
			break
		}
	}
	if route == nil {
		return nil, ErrNotFound
	}

	bounds := [][2]float64{}
	for _, id := range route.Places {
		if p, ok := c.byID[id]; ok {
			bounds = append(bounds, [2]float64{p.Lat, p.Lng})
		}
	}
	return bounds, nil
}
