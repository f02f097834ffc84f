// Package schema loads caller-supplied field templates and projects records
// onto them.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmrzaf/secgen/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadTemplate reads a template from a JSON or YAML file and validates it.
func LoadTemplate(path string) (*domain.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}

	var tpl domain.Template
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &tpl)
	} else {
		err = yaml.Unmarshal(data, &tpl)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}

	if err := ValidateTemplate(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ValidateTemplate checks structure: a name, at least one field, no
// duplicate field names.
func ValidateTemplate(tpl *domain.Template) error {
	if tpl.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidTemplate)
	}
	if len(tpl.Fields) == 0 {
		return fmt.Errorf("%w: fields must not be empty", domain.ErrInvalidTemplate)
	}
	seen := make(map[string]bool, len(tpl.Fields))
	for _, field := range tpl.Fields {
		if seen[field] {
			return fmt.Errorf("%w: duplicate field %q", domain.ErrInvalidTemplate, field)
		}
		seen[field] = true
	}
	return nil
}

// Filter returns a new record holding only the template's fields, in template
// order as far as downstream column ordering is concerned. Template fields
// absent from the record are omitted, not added as nulls. Idempotent.
func Filter(rec domain.Record, tpl *domain.Template) domain.Record {
	out := make(domain.Record, len(tpl.Fields))
	for _, field := range tpl.Fields {
		if value, ok := rec[field]; ok {
			out[field] = value
		}
	}
	return out
}

// FilterAll projects every record, preserving row order.
func FilterAll(recs []domain.Record, tpl *domain.Template) []domain.Record {
	out := make([]domain.Record, len(recs))
	for i, rec := range recs {
		out[i] = Filter(rec, tpl)
	}
	return out
}
