package generators

import (
	"strings"

	"github.com/mmrzaf/secgen/internal/domain"
)

// SensitiveDataGenerator emits one sensitive-data artifact per row, picking
// uniformly among four sub-kinds. Each builder computes its own masked
// preview field; the previews are cosmetic, not a PII guarantee.
type SensitiveDataGenerator struct {
	base
	passportSeriesPrefixes []string
	taxIDPrefixes          []string
}

var sensitiveSubKinds = []string{"credit_card", "passport", "tax_insurance", "medical"}

var (
	bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
	allergies  = []string{"Penicillin", "Aspirin", "Pollen", "Cat hair", "Peanuts", "Milk", "Eggs"}
	diseases   = []string{"Hypertension", "Type 2 diabetes", "Asthma", "Arthritis", "Migraine"}

	issueAuthorities = []string{
		"Federal Migration Office, Moscow",
		"Ministry of Internal Affairs, Moscow Region",
		"Federal Migration Office, Saint Petersburg",
	}
)

func NewSensitiveDataGenerator(opts Options) *SensitiveDataGenerator {
	return &SensitiveDataGenerator{
		base: newBase("generator.sensitive", opts),
		// Regional prefix tables: series prefixes for passports, region
		// codes for tax identifiers.
		passportSeriesPrefixes: []string{"45", "46", "47", "48", "49", "50"},
		taxIDPrefixes:          []string{"77", "50", "52", "53"},
	}
}

func (g *SensitiveDataGenerator) Kind() string {
	return domain.KindSensitiveData
}

func (g *SensitiveDataGenerator) GenerateRow() (domain.Record, error) {
	switch g.fake.Pick(sensitiveSubKinds) {
	case "credit_card":
		return g.CreditCardRow()
	case "passport":
		return g.PassportRow()
	case "tax_insurance":
		return g.TaxInsuranceRow()
	default:
		return g.MedicalRow()
	}
}

func (g *SensitiveDataGenerator) CreditCardRow() (domain.Record, error) {
	number := g.fake.CreditCardNumber()
	return domain.Record{
		"type":          "credit_card",
		"card_number":   number,
		"expiry_date":   g.fake.CreditCardExpiry(),
		"card_holder":   strings.ToUpper(g.fake.FullName()),
		"cvv":           g.fake.CVV(),
		"provider":      g.fake.CreditCardProvider(),
		"masked_number": maskCardNumber(number),
	}, nil
}

// PassportRow builds a passport artifact: a 4-digit series carrying a
// regional prefix plus a 6-digit number, 10 digits in total.
func (g *SensitiveDataGenerator) PassportRow() (domain.Record, error) {
	series := g.fake.Pick(g.passportSeriesPrefixes) + g.fake.DigitString(2)
	number := g.fake.DigitString(6)
	return domain.Record{
		"type":            "passport",
		"series":          series,
		"number":          number,
		"full_number":     series + " " + number,
		"issue_date":      g.fake.DateBetween(10*365, 365),
		"issue_authority": g.fake.Pick(issueAuthorities),
		"birth_place":     g.fake.City(),
		"masked_number":   series + " ******",
	}, nil
}

func (g *SensitiveDataGenerator) TaxInsuranceRow() (domain.Record, error) {
	taxID := g.fake.Pick(g.taxIDPrefixes) + g.fake.DigitString(10)
	digits := g.fake.DigitString(9)
	insuranceID := digits[:3] + "-" + digits[3:6] + "-" + digits[6:9] + " " + g.fake.DigitString(2)
	return domain.Record{
		"type":                "tax_insurance",
		"tax_id":              taxID,
		"insurance_id":        insuranceID,
		"masked_tax_id":       maskString(taxID, 4, 4),
		"masked_insurance_id": maskString(insuranceID, 3, 4),
	}, nil
}

func (g *SensitiveDataGenerator) MedicalRow() (domain.Record, error) {
	patientID, err := g.fake.UUID()
	if err != nil {
		return nil, &domain.GenerationError{Kind: g.Kind(), Err: err}
	}
	return domain.Record{
		"type":             "medical",
		"patient_id":       patientID,
		"blood_type":       g.fake.Pick(bloodTypes),
		"allergies":        g.fake.Sample(allergies, g.sampleSize(3)),
		"chronic_diseases": g.fake.Sample(diseases, g.sampleSize(2)),
		"last_visit":       g.fake.DateBetween(365, 0),
		"insurance_policy": g.fake.DigitString(6),
		"doctor":           g.fake.FullName(),
	}, nil
}

func (g *SensitiveDataGenerator) sampleSize(max int) int {
	return g.rng.Intn(max + 1)
}

// Validate dispatches on the recorded sub-kind; unknown types fail.
func (g *SensitiveDataGenerator) Validate(rec domain.Record) bool {
	if !hasNonEmpty(rec, "type") {
		return false
	}

	switch rec["type"] {
	case "credit_card":
		number, _ := rec["card_number"].(string)
		return len(number) >= 13
	case "passport":
		full, _ := rec["full_number"].(string)
		digits := strings.ReplaceAll(full, " ", "")
		return len(digits) == 10 && isDigits(digits)
	case "tax_insurance":
		taxID, _ := rec["tax_id"].(string)
		insuranceID, _ := rec["insurance_id"].(string)
		return len(taxID) == 12 && len(insuranceID) >= 11
	case "medical":
		return true
	default:
		return false
	}
}

func (g *SensitiveDataGenerator) SupportedFields() []string {
	return []string{
		"type", "card_number", "expiry_date", "card_holder", "cvv", "provider",
		"series", "number", "full_number", "issue_date", "issue_authority",
		"birth_place", "tax_id", "insurance_id", "patient_id", "blood_type",
		"allergies", "chronic_diseases", "last_visit", "insurance_policy",
		"doctor", "masked_number", "masked_tax_id", "masked_insurance_id",
	}
}

// SubKinds returns the sensitive sub-kind names this generator produces.
func (g *SensitiveDataGenerator) SubKinds() []string {
	out := make([]string, len(sensitiveSubKinds))
	copy(out, sensitiveSubKinds)
	return out
}

func maskCardNumber(number string) string {
	if len(number) <= 10 {
		return strings.Repeat("*", len(number))
	}
	return number[:6] + strings.Repeat("*", len(number)-10) + number[len(number)-4:]
}

func maskString(s string, visibleStart, visibleEnd int) string {
	if len(s) <= visibleStart+visibleEnd {
		return s
	}
	return s[:visibleStart] + strings.Repeat("*", len(s)-visibleStart-visibleEnd) + s[len(s)-visibleEnd:]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
