package generators

import (
	"strings"
	"testing"
)

func TestSensitiveSubKindInvariants(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(42))

	known := map[string]bool{"credit_card": true, "passport": true, "tax_insurance": true, "medical": true}

	for i := 0; i < 40; i++ {
		row, err := g.GenerateRow()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		subKind := row["type"].(string)
		if !known[subKind] {
			t.Fatalf("unknown sub-kind %q", subKind)
		}
		if !g.Validate(row) {
			t.Fatalf("row of sub-kind %q failed validation: %#v", subKind, row)
		}

		switch subKind {
		case "credit_card":
			if len(row["card_number"].(string)) < 13 {
				t.Fatalf("card number too short: %q", row["card_number"])
			}
		case "passport":
			digits := strings.ReplaceAll(row["full_number"].(string), " ", "")
			if len(digits) != 10 {
				t.Fatalf("passport digits = %q, want 10 digits", digits)
			}
		case "tax_insurance":
			if len(row["tax_id"].(string)) != 12 {
				t.Fatalf("tax_id length = %d, want 12", len(row["tax_id"].(string)))
			}
			if len(row["insurance_id"].(string)) < 11 {
				t.Fatalf("insurance_id too short: %q", row["insurance_id"])
			}
		}
	}
}

func TestSensitiveCreditCardPreview(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(7))

	row, err := g.CreditCardRow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	number := row["card_number"].(string)
	masked := row["masked_number"].(string)
	if len(masked) != len(number) {
		t.Fatalf("masked preview length %d, want %d", len(masked), len(number))
	}
	if !strings.HasPrefix(masked, number[:6]) || !strings.HasSuffix(masked, number[len(number)-4:]) {
		t.Fatalf("masked preview %q does not keep first 6 and last 4 of %q", masked, number)
	}
	if !strings.Contains(masked, "*") {
		t.Fatalf("masked preview %q has no masked characters", masked)
	}
}

func TestSensitivePassportPreview(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(7))

	row, err := g.PassportRow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series := row["series"].(string)
	if len(series) != 4 {
		t.Fatalf("series length = %d, want 4", len(series))
	}
	if row["masked_number"] != series+" ******" {
		t.Fatalf("masked preview = %q, want series kept and number blanked", row["masked_number"])
	}
	if row["full_number"] != series+" "+row["number"].(string) {
		t.Fatalf("full_number %q does not combine series and number", row["full_number"])
	}
}

func TestSensitiveTaxInsurancePreviews(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(3))

	row, err := g.TaxInsuranceRow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	taxID := row["tax_id"].(string)
	masked := row["masked_tax_id"].(string)
	if !strings.HasPrefix(masked, taxID[:4]) || !strings.HasSuffix(masked, taxID[len(taxID)-4:]) {
		t.Fatalf("masked_tax_id %q does not keep first 4 and last 4 of %q", masked, taxID)
	}
	if !strings.Contains(masked, "*") {
		t.Fatalf("masked_tax_id %q has no masked characters", masked)
	}
}

func TestSensitiveValidateUnknownType(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(1))

	if g.Validate(map[string]any{"type": "biometric"}) {
		t.Fatal("expected validation failure for unrecognized type")
	}
	if g.Validate(map[string]any{}) {
		t.Fatal("expected validation failure for missing type")
	}
}

func TestSensitiveBatch(t *testing.T) {
	g := NewSensitiveDataGenerator(seededOpts(5))

	rows, _ := GenerateBatch(g, 8, nil)
	if len(rows) > 8 {
		t.Fatalf("batch must not exceed requested count, got %d", len(rows))
	}
	for i, row := range rows {
		if !g.Validate(row) {
			t.Fatalf("row %d failed validation", i)
		}
	}
}
