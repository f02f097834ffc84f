package generators

import (
	"sort"

	"github.com/mmrzaf/secgen/internal/domain"
)

// Catalog maps a vulnerability category to its literal attack strings.
// Built once at generator construction and read-only after that; every
// category holds at least one payload. Selection only, no synthesis.
type Catalog map[string][]string

func NewPayloadCatalog() Catalog {
	return Catalog{
		domain.CategorySQL: {
			"' OR '1'='1",
			"' UNION SELECT username, password FROM users--",
			"'; DROP TABLE users--",
			"' OR 1=1--",
			"admin'--",
			"' AND 1=CAST((SELECT version()) AS int)--",
			"' WAITFOR DELAY '00:00:10'--",
			"' OR EXISTS(SELECT * FROM information_schema.tables)--",
		},
		domain.CategoryXSS: {
			"<script>alert('XSS')</script>",
			"<img src=x onerror=alert('XSS')>",
			"<svg onload=alert('XSS')>",
			"javascript:alert('XSS')",
			"<body onload=alert('XSS')>",
			"<iframe src=javascript:alert('XSS')>",
			"<a href=javascript:alert('XSS')>click</a>",
		},
		domain.CategoryPathTraversal: {
			"../../../etc/passwd",
			"..\\..\\..\\windows\\system32\\drivers\\etc\\hosts",
			"%2e%2e%2f%2e%2e%2f%2e%2e%2fetc%2fpasswd",
			"....//....//....//etc/passwd",
			"../../../etc/shadow",
			"../../../../windows/win.ini",
		},
	}
}

// Categories returns the catalog's category names, sorted.
func (c Catalog) Categories() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether payload is a member of the category's list.
func (c Catalog) Contains(category, payload string) bool {
	for _, p := range c[category] {
		if p == payload {
			return true
		}
	}
	return false
}

var categorySeverities = map[string][]string{
	domain.CategorySQL:           {"critical", "high"},
	domain.CategoryXSS:           {"high", "medium"},
	domain.CategoryPathTraversal: {"high", "medium", "low"},
}

// injectableFields is the fixed vocabulary of fields that may carry a
// payload in penetration rows and that vulnerability rows target.
var injectableFields = []string{
	"username", "password", "email", "first_name", "last_name",
	"comment", "message", "search_query", "file_path", "url",
	"phone", "address", "city", "country", "description",
}
