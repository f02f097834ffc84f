// Package provider wraps the fake-value vocabulary the generators draw from.
// Atomic values come from go-faker; selections from static tables and all
// probability draws use the injected rng so that seeded runs reproduce.
// The locale is passed through for regional formats and is otherwise cosmetic.
package provider

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

type Provider struct {
	locale string
	rng    *rand.Rand
}

func New(locale string, rng *rand.Rand) *Provider {
	return &Provider{locale: locale, rng: rng}
}

func (p *Provider) Locale() string {
	return p.locale
}

// UUID derives a v4 UUID from the injected rng, so identifiers are stable
// under a fixed seed.
func (p *Provider) UUID() (string, error) {
	b := make([]byte, 16)
	p.rng.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(b)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (p *Provider) Username() string  { return faker.Username() }
func (p *Provider) Password() string  { return faker.Password() }
func (p *Provider) Email() string     { return faker.Email() }
func (p *Provider) FirstName() string { return faker.FirstName() }
func (p *Provider) LastName() string  { return faker.LastName() }
func (p *Provider) FullName() string  { return faker.Name() }
func (p *Provider) Phone() string     { return faker.Phonenumber() }
func (p *Provider) Word() string      { return faker.Word() }
func (p *Provider) Sentence() string  { return faker.Sentence() }
func (p *Provider) URL() string       { return faker.URL() }
func (p *Provider) IPv4() string      { return faker.IPv4() }

func (p *Provider) Text(maxChars int) string {
	text := faker.Paragraph()
	if len(text) > maxChars {
		text = strings.TrimSpace(text[:maxChars])
	}
	return text
}

// Address returns a single-line postal address.
func (p *Provider) Address() string {
	a := faker.GetRealAddress()
	return fmt.Sprintf("%s, %s, %s %s", a.Address, a.City, a.State, a.PostalCode)
}

func (p *Provider) City() string {
	return pick(p.rng, cities)
}

func (p *Provider) Country() string {
	return pick(p.rng, countries)
}

func (p *Provider) Company() string {
	return pick(p.rng, companies)
}

func (p *Provider) JobTitle() string {
	return pick(p.rng, jobTitles)
}

func (p *Provider) UserAgent() string {
	return pick(p.rng, userAgents)
}

func (p *Provider) FilePath() string {
	dir := pick(p.rng, fileDirs)
	ext := pick(p.rng, fileExts)
	return dir + "/" + faker.Word() + ext
}

// Timestamp returns an RFC 3339 instant within the last 30 days.
func (p *Provider) Timestamp() string {
	offset := time.Duration(p.rng.Int63n(int64(30 * 24 * time.Hour)))
	return time.Now().UTC().Add(-offset).Format(time.RFC3339)
}

// DateOfBirth returns an ISO date for a person aged within [minAge, maxAge].
func (p *Provider) DateOfBirth(minAge, maxAge int) string {
	years := minAge + p.rng.Intn(maxAge-minAge+1)
	days := p.rng.Intn(365)
	return time.Now().AddDate(-years, 0, -days).Format("2006-01-02")
}

// DateBetween returns an ISO date between daysAgoMax and daysAgoMin days ago.
func (p *Provider) DateBetween(daysAgoMax, daysAgoMin int) string {
	days := daysAgoMin + p.rng.Intn(daysAgoMax-daysAgoMin+1)
	return time.Now().AddDate(0, 0, -days).Format("2006-01-02")
}

func (p *Provider) CreditCardNumber() string   { return faker.CCNumber() }
func (p *Provider) CreditCardProvider() string { return faker.CCType() }

func (p *Provider) CreditCardExpiry() string {
	month := 1 + p.rng.Intn(12)
	year := time.Now().Year()%100 + 1 + p.rng.Intn(5)
	return fmt.Sprintf("%02d/%02d", month, year)
}

func (p *Provider) CVV() string {
	return p.DigitString(3)
}

// DigitString returns exactly n random decimal digits.
func (p *Provider) DigitString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + p.rng.Intn(10)))
	}
	return b.String()
}

// Pick returns a uniformly chosen element of values.
func (p *Provider) Pick(values []string) string {
	return pick(p.rng, values)
}

// Sample returns up to n distinct elements of values in draw order.
func (p *Provider) Sample(values []string, n int) []string {
	if n > len(values) {
		n = len(values)
	}
	idx := p.rng.Perm(len(values))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

// Chance returns true with the given probability.
func (p *Provider) Chance(probability float64) bool {
	return p.rng.Float64() < probability
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
