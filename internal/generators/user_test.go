package generators

import (
	"strings"
	"testing"

	"github.com/mmrzaf/secgen/internal/domain"
)

func seededOpts(seed int64) Options {
	return Options{Locale: "en_US", Seed: &seed}
}

func TestUserGeneratorRowSchema(t *testing.T) {
	g := NewUserGenerator(seededOpts(42))

	row, err := g.GenerateRow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{"id", "username", "first_name", "last_name", "email", "phone", "address", "birth_date", "company", "job"} {
		v, ok := row[field].(string)
		if !ok || v == "" {
			t.Fatalf("expected non-empty string field %q, got %#v", field, row[field])
		}
	}

	card, ok := row["credit_card"].(domain.Record)
	if !ok {
		t.Fatalf("expected nested credit_card record, got %#v", row["credit_card"])
	}
	if len(card) != 3 {
		t.Fatalf("expected exactly 3 credit_card keys, got %d: %#v", len(card), card)
	}
	for _, field := range []string{"number", "expiry", "provider"} {
		if v, ok := card[field].(string); !ok || v == "" {
			t.Fatalf("expected credit_card.%s, got %#v", field, card[field])
		}
	}

	if strings.Contains(row["address"].(string), "\n") {
		t.Fatalf("expected single-line address, got %q", row["address"])
	}
}

func TestUserGeneratorValidate(t *testing.T) {
	g := NewUserGenerator(seededOpts(1))

	row, err := g.GenerateRow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Validate(row) {
		t.Fatal("expected generated row to validate")
	}

	bad := row.Clone()
	bad["email"] = "not-an-email"
	if g.Validate(bad) {
		t.Fatal("expected validation failure for email without @")
	}

	missing := row.Clone()
	delete(missing, "username")
	if g.Validate(missing) {
		t.Fatal("expected validation failure for missing username")
	}

	empty := row.Clone()
	empty["phone"] = ""
	if g.Validate(empty) {
		t.Fatal("expected validation failure for empty phone")
	}
}

func TestUserGeneratorBatch(t *testing.T) {
	g := NewUserGenerator(seededOpts(7))

	rows, stats := GenerateBatch(g, 5, nil)
	if len(rows) > 5 {
		t.Fatalf("batch must not exceed requested count, got %d", len(rows))
	}
	if stats.Generated != len(rows) {
		t.Fatalf("stats.Generated = %d, want %d", stats.Generated, len(rows))
	}
	for i, row := range rows {
		if !g.Validate(row) {
			t.Fatalf("row %d failed validation: %#v", i, row)
		}
	}
}
