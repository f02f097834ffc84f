package domain

// Record is one generated data item: field name to value. Values are strings,
// numbers, booleans, nested Records, or lists thereof. Downstream stages
// (filter, mask, serialize) build new records and never mutate the original.
type Record map[string]any

// Clone returns a deep copy of the record. Nested records and lists are
// copied; scalar values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]any:
		return Record(val).Clone()
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = cloneValue(item)
		}
		return items
	case []string:
		items := make([]string, len(val))
		copy(items, val)
		return items
	default:
		return v
	}
}

// Generator kinds. Fixed at construction; a generator never changes kind.
const (
	KindUser          = "user"
	KindVulnerability = "vulnerability"
	KindSensitiveData = "sensitive_data"
	KindPenetration   = "penetration"
)

// Vulnerability categories of the payload catalog.
const (
	CategorySQL           = "sql"
	CategoryXSS           = "xss"
	CategoryPathTraversal = "path_traversal"
)

// Template projects a record onto a caller-specified field subset.
// Field order is preserved by the filter and by the csv/sql exporters.
type Template struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []string `json:"fields" yaml:"fields"`
}

// BatchStats reports what happened during one generate-batch call. Dropped
// rows never reach the output; the counters keep them observable.
type BatchStats struct {
	Requested   int `json:"requested"`
	Generated   int `json:"generated"`
	FailedRows  int `json:"failed_rows"`
	InvalidRows int `json:"invalid_rows"`
}
