// Package generators holds the four record generators and the batch loop.
// A generator owns its locale, its fake-value provider, and an rng fixed at
// construction; it keeps no mutable state across GenerateRow calls, so a
// seeded generator reproduces its rows exactly.
package generators

import (
	"math/rand"
	"time"

	"github.com/mmrzaf/secgen/internal/domain"
	"github.com/mmrzaf/secgen/internal/logging"
	"github.com/mmrzaf/secgen/internal/provider"
)

type Generator interface {
	// Kind returns the generator kind name.
	Kind() string

	// GenerateRow produces one record. On any internal error it returns a
	// *domain.GenerationError and contributes nothing to a batch.
	GenerateRow() (domain.Record, error)

	// Validate is a pure structural check; it never panics. False means the
	// record is missing required fields or carries inconsistent metadata.
	Validate(rec domain.Record) bool

	// SupportedFields is the closed vocabulary of field names this kind can
	// emit, used by template filtering and by tests.
	SupportedFields() []string
}

// Options configures a generator at construction time.
type Options struct {
	Locale string
	// Seed pins the rng; nil means a time-based seed.
	Seed *int64
	// InjectionProbability overrides the penetration default of 0.4.
	InjectionProbability *float64
	Logger               *logging.Logger
}

func (o Options) rng() *rand.Rand {
	seed := time.Now().UnixNano()
	if o.Seed != nil {
		seed = *o.Seed
	}
	return rand.New(rand.NewSource(seed))
}

func (o Options) logger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewLogger("info")
}

type base struct {
	locale string
	rng    *rand.Rand
	fake   *provider.Provider
	log    *logging.Logger
}

func newBase(component string, opts Options) base {
	rng := opts.rng()
	return base{
		locale: opts.Locale,
		rng:    rng,
		fake:   provider.New(opts.Locale, rng),
		log:    opts.logger().WithComponent(component),
	}
}

// GenerateBatch calls GenerateRow exactly count times. Rows that fail to
// generate are skipped and rows that fail Validate are dropped, both logged;
// the batch is never padded, so len(rows) <= count. Surviving rows keep
// generation order.
func GenerateBatch(g Generator, count int, log *logging.Logger) ([]domain.Record, domain.BatchStats) {
	if log == nil {
		log = logging.NewLogger("info")
	}
	if count < 0 {
		count = 0
	}
	stats := domain.BatchStats{Requested: count}
	rows := make([]domain.Record, 0, count)

	for i := 0; i < count; i++ {
		row, err := g.GenerateRow()
		if err != nil {
			stats.FailedRows++
			log.Errorw("row.generation_failed", map[string]any{
				"kind": g.Kind(), "attempt": i, "error": err.Error(),
			})
			continue
		}
		if !g.Validate(row) {
			stats.InvalidRows++
			log.Warnw("row.invalid", map[string]any{
				"kind": g.Kind(), "attempt": i,
			})
			continue
		}
		rows = append(rows, row)
	}

	stats.Generated = len(rows)
	return rows, stats
}

func hasNonEmpty(rec domain.Record, fields ...string) bool {
	for _, field := range fields {
		v, ok := rec[field]
		if !ok {
			return false
		}
		s, isStr := v.(string)
		if isStr && s == "" {
			return false
		}
		if v == nil {
			return false
		}
	}
	return true
}
