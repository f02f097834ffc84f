package generators

import (
	"github.com/mmrzaf/secgen/internal/domain"
)

// VulnerabilityGenerator emits one payload event per row: a single catalog
// payload aimed at one target parameter, with request-style metadata.
type VulnerabilityGenerator struct {
	base
	payloads Catalog
}

func NewVulnerabilityGenerator(opts Options) *VulnerabilityGenerator {
	return &VulnerabilityGenerator{
		base:     newBase("generator.vulnerability", opts),
		payloads: NewPayloadCatalog(),
	}
}

func (g *VulnerabilityGenerator) Kind() string {
	return domain.KindVulnerability
}

func (g *VulnerabilityGenerator) GenerateRow() (domain.Record, error) {
	category := g.fake.Pick(g.payloads.Categories())
	return g.rowFor(category)
}

// SQLInjectionRow, XSSRow and PathTraversalRow build a row for a fixed
// category, for callers that want one family of payloads only.
func (g *VulnerabilityGenerator) SQLInjectionRow() (domain.Record, error) {
	return g.rowFor(domain.CategorySQL)
}

func (g *VulnerabilityGenerator) XSSRow() (domain.Record, error) {
	return g.rowFor(domain.CategoryXSS)
}

func (g *VulnerabilityGenerator) PathTraversalRow() (domain.Record, error) {
	return g.rowFor(domain.CategoryPathTraversal)
}

func (g *VulnerabilityGenerator) rowFor(category string) (domain.Record, error) {
	id, err := g.fake.UUID()
	if err != nil {
		return nil, &domain.GenerationError{Kind: g.Kind(), Err: err}
	}

	return domain.Record{
		"id":                 id,
		"timestamp":          g.fake.Timestamp(),
		"source_ip":          g.fake.IPv4(),
		"user_agent":         g.fake.UserAgent(),
		"vulnerability_type": category,
		"payload":            g.fake.Pick(g.payloads[category]),
		"target_parameter":   g.fake.Pick(injectableFields),
		"severity":           g.fake.Pick(categorySeverities[category]),
	}, nil
}

func (g *VulnerabilityGenerator) Validate(rec domain.Record) bool {
	if !hasNonEmpty(rec, "id", "timestamp", "source_ip") {
		return false
	}
	category, _ := rec["vulnerability_type"].(string)
	if _, known := g.payloads[category]; !known {
		return false
	}
	payload, _ := rec["payload"].(string)
	return g.payloads.Contains(category, payload)
}

// VulnerabilityTypes returns the catalog categories this generator selects
// from, sorted.
func (g *VulnerabilityGenerator) VulnerabilityTypes() []string {
	return g.payloads.Categories()
}

func (g *VulnerabilityGenerator) SupportedFields() []string {
	return []string{
		"id", "timestamp", "source_ip", "user_agent",
		"vulnerability_type", "payload", "target_parameter", "severity",
	}
}
