package generators

import (
	"strings"

	"github.com/mmrzaf/secgen/internal/domain"
)

// UserGenerator emits user profile records with a fixed schema: identity
// fields, professional fields, and a nested credit_card sub-record.
type UserGenerator struct {
	base
}

func NewUserGenerator(opts Options) *UserGenerator {
	return &UserGenerator{base: newBase("generator.user", opts)}
}

func (g *UserGenerator) Kind() string {
	return domain.KindUser
}

func (g *UserGenerator) GenerateRow() (domain.Record, error) {
	id, err := g.fake.UUID()
	if err != nil {
		return nil, &domain.GenerationError{Kind: g.Kind(), Err: err}
	}

	return domain.Record{
		"id":         id,
		"username":   g.fake.Username(),
		"first_name": g.fake.FirstName(),
		"last_name":  g.fake.LastName(),
		"email":      g.fake.Email(),
		"phone":      g.fake.Phone(),
		"address":    strings.ReplaceAll(g.fake.Address(), "\n", ", "),
		"birth_date": g.fake.DateOfBirth(18, 65),
		"company":    g.fake.Company(),
		"job":        g.fake.JobTitle(),
		"credit_card": domain.Record{
			"number":   g.fake.CreditCardNumber(),
			"expiry":   g.fake.CreditCardExpiry(),
			"provider": g.fake.CreditCardProvider(),
		},
	}, nil
}

func (g *UserGenerator) Validate(rec domain.Record) bool {
	if !hasNonEmpty(rec, "id", "username", "email", "phone") {
		return false
	}
	email, _ := rec["email"].(string)
	return strings.Contains(email, "@")
}

func (g *UserGenerator) SupportedFields() []string {
	return []string{
		"id", "username", "first_name", "last_name", "email", "phone",
		"address", "birth_date", "company", "job", "credit_card",
	}
}
