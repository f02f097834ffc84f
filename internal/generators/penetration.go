package generators

import (
	"sort"

	"github.com/mmrzaf/secgen/internal/domain"
)

const defaultInjectionProbability = 0.4

// PenetrationGenerator produces combined rows where any injectable field may
// carry a catalog payload. The injection draw happens independently per field
// rather than once per row; the resulting spread of injection counts across a
// batch is part of what the fixture models, and per-field draws keep seeded
// runs reproducible.
type PenetrationGenerator struct {
	base
	payloads    Catalog
	probability float64
}

func NewPenetrationGenerator(opts Options) *PenetrationGenerator {
	probability := defaultInjectionProbability
	if opts.InjectionProbability != nil {
		probability = *opts.InjectionProbability
	}
	return &PenetrationGenerator{
		base:        newBase("generator.penetration", opts),
		payloads:    NewPayloadCatalog(),
		probability: probability,
	}
}

func (g *PenetrationGenerator) Kind() string {
	return domain.KindPenetration
}

func (g *PenetrationGenerator) InjectionProbability() float64 {
	return g.probability
}

func (g *PenetrationGenerator) GenerateRow() (domain.Record, error) {
	id, err := g.fake.UUID()
	if err != nil {
		return nil, &domain.GenerationError{Kind: g.Kind(), Err: err}
	}
	sessionID, err := g.fake.UUID()
	if err != nil {
		return nil, &domain.GenerationError{Kind: g.Kind(), Err: err}
	}

	// Metadata fields come from the provider and are never injectable.
	row := domain.Record{
		"id":         id,
		"timestamp":  g.fake.Timestamp(),
		"source_ip":  g.fake.IPv4(),
		"user_agent": g.fake.UserAgent(),
		"session_id": sessionID,
	}

	injected := make([]string, 0, len(injectableFields))
	usedCategories := make(map[string]struct{})

	for _, field := range injectableFields {
		if g.fake.Chance(g.probability) {
			category := g.fake.Pick(g.payloads.Categories())
			row[field] = g.fake.Pick(g.payloads[category])
			row[field+"_vulnerability_type"] = category
			injected = append(injected, field)
			usedCategories[category] = struct{}{}
		} else {
			row[field] = g.normalValue(field)
		}
	}

	types := make([]string, 0, len(usedCategories))
	for category := range usedCategories {
		types = append(types, category)
	}
	sort.Strings(types)

	row["injected_fields"] = injected
	row["total_injections"] = len(injected)
	row["injection_types"] = types

	return row, nil
}

// normalValue synthesizes a plausible benign value for an injectable field,
// falling back to a generic word for fields with no specific mapping.
func (g *PenetrationGenerator) normalValue(field string) string {
	switch field {
	case "username":
		return g.fake.Username()
	case "password":
		return g.fake.Password()
	case "email":
		return g.fake.Email()
	case "first_name":
		return g.fake.FirstName()
	case "last_name":
		return g.fake.LastName()
	case "comment":
		return g.fake.Sentence()
	case "message":
		return g.fake.Text(100)
	case "search_query":
		return g.fake.Word()
	case "file_path":
		return g.fake.FilePath()
	case "url":
		return g.fake.URL()
	case "phone":
		return g.fake.Phone()
	case "address":
		return g.fake.Address()
	case "city":
		return g.fake.City()
	case "country":
		return g.fake.Country()
	case "description":
		return g.fake.Text(200)
	default:
		return g.fake.Word()
	}
}

// Validate re-derives the injection consistency invariant: every field listed
// in injected_fields must record a known category and hold one of that
// category's literal payloads.
func (g *PenetrationGenerator) Validate(rec domain.Record) bool {
	if !hasNonEmpty(rec, "id", "timestamp", "source_ip") {
		return false
	}

	injected, ok := rec["injected_fields"].([]string)
	if !ok {
		return false
	}
	if total, ok := rec["total_injections"].(int); !ok || total != len(injected) {
		return false
	}

	for _, field := range injected {
		category, _ := rec[field+"_vulnerability_type"].(string)
		if _, known := g.payloads[category]; category == "" || !known {
			return false
		}
		value, _ := rec[field].(string)
		if !g.payloads.Contains(category, value) {
			return false
		}
	}
	return true
}

func (g *PenetrationGenerator) SupportedFields() []string {
	fields := []string{
		"id", "timestamp", "source_ip", "user_agent", "session_id",
		"injected_fields", "total_injections", "injection_types",
	}
	fields = append(fields, injectableFields...)
	for _, field := range injectableFields {
		fields = append(fields, field+"_vulnerability_type")
	}
	return fields
}
