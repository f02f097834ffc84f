// Package masking rewrites sensitive values into partially obscured forms,
// classifying each field by its name. It is a best-effort cosmetic heuristic:
// callers must not treat the output as guaranteed PII removal.
package masking

import (
	"strings"

	"github.com/mmrzaf/secgen/internal/domain"
)

// A rule pairs a field-name predicate with a formatter. Rules are evaluated
// top to bottom; the first matching rule wins. Predicates see the lowercased
// field name plus the lowercased enclosing key (empty at the top level), so a
// bare "number" inside a "credit_card" record still classifies as a card.
type rule struct {
	name  string
	match func(key, parent string) bool
	apply func(value string) string
}

// The tax/insurance rule precedes the generic id rule because those keys end
// in "_id" and would otherwise be grouped like uuids.
var rules = []rule{
	{"card_number", func(k, p string) bool {
		return (strings.Contains(k, "card") || strings.Contains(p, "card")) && strings.Contains(k, "number")
	}, maskCardNumber},
	{"phone", func(k, _ string) bool { return strings.Contains(k, "phone") }, maskPhone},
	{"email", func(k, _ string) bool { return strings.Contains(k, "email") }, maskEmail},
	{"ip", func(k, _ string) bool { return hasToken(k, "ip") }, maskIP},
	{"tax_insurance", func(k, _ string) bool { return hasToken(k, "tax") || strings.Contains(k, "insurance") }, keepEnds(4, 4)},
	{"id", func(k, _ string) bool { return hasToken(k, "id") || strings.Contains(k, "uuid") }, maskID},
	{"passport_series", func(k, _ string) bool { return strings.Contains(k, "series") }, keepAll},
	{"passport_number", func(k, _ string) bool { return k == "number" || k == "full_number" }, maskPassportNumber},
	{"cvv", func(k, _ string) bool { return strings.Contains(k, "cvv") || strings.Contains(k, "cvc") || hasToken(k, "pin") }, replaceWith("***")},
	{"password", func(k, _ string) bool { return strings.Contains(k, "password") || strings.Contains(k, "passwd") }, replaceWith("********")},
	{"secret", func(k, _ string) bool {
		return strings.Contains(k, "token") || strings.Contains(k, "secret") || hasToken(k, "key")
	}, keepEnds(4, 4)},
}

// MaskRecord returns a masked copy of the record. Nested records are masked
// with their own keys and see the enclosing key as context; list items
// inherit the parent key. The input is never mutated.
func MaskRecord(rec domain.Record) domain.Record {
	return maskRecord(rec, "")
}

func maskRecord(rec domain.Record, parent string) domain.Record {
	out := make(domain.Record, len(rec))
	for key, value := range rec {
		out[key] = maskValue(key, parent, value)
	}
	return out
}

// MaskRecords masks a batch, preserving order.
func MaskRecords(recs []domain.Record) []domain.Record {
	out := make([]domain.Record, len(recs))
	for i, rec := range recs {
		out[i] = MaskRecord(rec)
	}
	return out
}

// MaskField applies the rule set to a single named value. Fields matching no
// rule pass through unmodified.
func MaskField(key, value string) string {
	return maskField(key, "", value)
}

func maskField(key, parent, value string) string {
	lowerKey := strings.ToLower(key)
	lowerParent := strings.ToLower(parent)
	for _, r := range rules {
		if r.match(lowerKey, lowerParent) {
			return r.apply(value)
		}
	}
	return value
}

func maskValue(key, parent string, value any) any {
	switch v := value.(type) {
	case string:
		return maskField(key, parent, v)
	case domain.Record:
		return maskRecord(v, key)
	case map[string]any:
		return maskRecord(domain.Record(v), key)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = maskValue(key, parent, item)
		}
		return items
	case []string:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = maskField(key, parent, item)
		}
		return items
	default:
		// Non-string scalars carry no maskable text.
		return value
	}
}

// hasToken reports whether the underscore-separated key contains the token,
// so "source_ip" matches "ip" but "description" does not.
func hasToken(key, token string) bool {
	for _, part := range strings.Split(key, "_") {
		if part == token {
			return true
		}
	}
	return false
}

func maskCardNumber(v string) string {
	if len(v) <= 10 {
		return strings.Repeat("*", len(v))
	}
	return v[:6] + strings.Repeat("*", len(v)-10) + v[len(v)-4:]
}

func maskPhone(v string) string {
	digits := digitsOf(v)
	if len(digits) <= 5 {
		// Too short to truncate further; keeps re-masking a no-op.
		return v
	}
	return digits[:3] + strings.Repeat("*", len(digits)-5) + digits[len(digits)-2:]
}

func maskEmail(v string) string {
	at := strings.IndexByte(v, '@')
	if at < 0 {
		return keepEnds(2, 0)(v)
	}
	local, dom := v[:at], v[at+1:]
	if len(local) > 2 {
		local = local[:2] + strings.Repeat("*", len(local)-2)
	}
	segments := strings.Split(dom, ".")
	for i, seg := range segments {
		if len(seg) > 2 {
			segments[i] = seg[:1] + strings.Repeat("*", len(seg)-2) + seg[len(seg)-1:]
		}
	}
	return local + "@" + strings.Join(segments, ".")
}

func maskIP(v string) string {
	parts := strings.Split(v, ".")
	if len(parts) != 4 {
		return v
	}
	return parts[0] + "." + parts[1] + ".*.*"
}

func maskID(v string) string {
	if len(v) <= 8 {
		return v
	}
	return v[:4] + "-****-****-" + v[len(v)-4:]
}

func maskPassportNumber(v string) string {
	if strings.HasSuffix(v, " ******") || v == "******" {
		return v
	}
	digits := digitsOf(v)
	if len(digits) == 10 {
		return digits[:4] + " ******"
	}
	return "******"
}

func keepEnds(start, end int) func(string) string {
	return func(v string) string {
		if len(v) <= start+end {
			return v
		}
		return v[:start] + strings.Repeat("*", len(v)-start-end) + v[len(v)-end:]
	}
}

func replaceWith(mask string) func(string) string {
	return func(string) string { return mask }
}

func keepAll(v string) string {
	return v
}

func digitsOf(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
