package stream

import (
	"math/rand/v2"
	"time"

	"opsdash/internal/app/errors"
)

// Random is the pseudo-random source used for template selection and rendering
type Random interface {
	IntN(n int) int
}

// NewRandom returns a deterministic PCG-backed random source for the given seed
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // simulated data, not security-critical
}

// Source synthesizes log records from a template catalog
type Source struct {
	catalog Catalog
	rng     Random
}

// NewSource creates a source over a validated catalog
func NewSource(catalog Catalog, rng Random) (*Source, error) {
	if rng == nil {
		return nil, errors.ErrNilRandomSource
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return &Source{
		catalog: clone(catalog),
		rng:     rng,
	}, nil
}

// Next picks a template uniformly at random and stamps it with now
func (s *Source) Next(now time.Time) Record {
	tmpl := s.catalog[s.rng.IntN(len(s.catalog))]

	return Record{
		Timestamp: now,
		Level:     tmpl.Level,
		Message:   tmpl.Render(s.rng),
	}
}

// SetCatalog replaces the templates, keeping the old ones if the new catalog is invalid
func (s *Source) SetCatalog(catalog Catalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}

	s.catalog = clone(catalog)

	return nil
}

// Catalog returns a copy of the current templates
func (s *Source) Catalog() Catalog {
	return clone(s.catalog)
}

func clone(catalog Catalog) Catalog {
	out := make(Catalog, len(catalog))
	copy(out, catalog)

	return out
}
