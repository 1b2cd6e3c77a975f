package filter

import (
	"slices"
	"sync"

	"moto-rentals-backend/internal/domain"
)

const DefaultProjectorCapacity = 128

// Projector memoizes the visible list for a fixed catalog, keyed by the
// FilterState fingerprint. It is safe for concurrent use.
type Projector struct {
	catalog  []domain.Vehicle
	capacity int

	mu    sync.Mutex
	cache map[uint64]projection
	hits  uint64
	miss  uint64
}

func NewProjector(catalog []domain.Vehicle, capacity int) *Projector {
	if capacity <= 0 {
		capacity = DefaultProjectorCapacity
	}
	return &Projector{
		catalog:  catalog,
		capacity: capacity,
		cache:    make(map[uint64]projection),
	}
}

// Visible returns the filtered catalog for s. Callers must not modify the
// returned slice.
func (p *Projector) Visible(s domain.FilterState) []domain.Vehicle {
	key := Fingerprint(s)

	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.cache[key]; ok && sameState(entry.state, s) {
		p.hits++
		return entry.visible
	}
	p.miss++
	visible := Apply(p.catalog, s)
	if len(p.cache) >= p.capacity {
		clear(p.cache)
	}
	p.cache[key] = projection{state: s.Clone(), visible: visible}
	return visible
}

// projection is a cached result together with the state it was computed for;
// a fingerprint hit only counts when the states are equal.
type projection struct {
	state   domain.FilterState
	visible []domain.Vehicle
}

// sameState compares two states the way Fingerprint hashes them: facet order
// is ignored.
func sameState(a, b domain.FilterState) bool {
	return a.RentalType == b.RentalType &&
		a.AvailableNowOnly == b.AvailableNowOnly &&
		a.PriceMin == b.PriceMin &&
		a.PriceMax == b.PriceMax &&
		a.Transmission == b.Transmission &&
		sameSet(a.Brands, b.Brands) &&
		sameSet(a.ModelYears, b.ModelYears) &&
		sameSet(a.BodyTypes, b.BodyTypes) &&
		sameSet(a.FuelTypes, b.FuelTypes)
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// Stats returns cache hits and misses.
func (p *Projector) Stats() (hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.miss
}
