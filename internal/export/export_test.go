package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/secgen/internal/domain"
)

func exportToString(t *testing.T, rows []domain.Record, opts Options) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	opts.Output = path
	if err := Export(rows, opts); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestExportCSVColumnsAndMissingValues(t *testing.T) {
	rows := []domain.Record{
		{"b": "2", "a": "1"},
		{"a": "3", "c": "4"},
	}

	out := exportToString(t, rows, Options{Format: FormatCSV})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "a,b,c" {
		t.Fatalf("header = %q, want sorted union", lines[0])
	}
	if lines[1] != "1,2," {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "3,,4" {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestExportCSVNonScalarAsJSON(t *testing.T) {
	rows := []domain.Record{
		{"name": "x", "tags": []string{"a", "b"}},
	}

	out := exportToString(t, rows, Options{Format: FormatCSV})
	if !strings.Contains(out, `"[""a"",""b""]"`) {
		t.Fatalf("expected JSON-embedded list cell, got %q", out)
	}
}

func TestExportSQL(t *testing.T) {
	rows := []domain.Record{
		{"id": "1", "count": 2},
		{"id": "it's"},
	}

	out := exportToString(t, rows, Options{Format: FormatSQL, Table: "events"})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(lines))
	}
	if lines[0] != "INSERT INTO events (count, id) VALUES (2, '1');" {
		t.Fatalf("statement 1 = %q", lines[0])
	}
	if lines[1] != "INSERT INTO events (count, id) VALUES (NULL, 'it''s');" {
		t.Fatalf("statement 2 = %q", lines[1])
	}
}

func TestExportSQLQuotesUnsafeIdentifiers(t *testing.T) {
	rows := []domain.Record{{"select": "x"}}
	out := exportToString(t, rows, Options{Format: FormatSQL, Table: "drop table"})
	if !strings.Contains(out, `INSERT INTO "drop table" ("select")`) {
		t.Fatalf("unsafe identifiers must be quoted, got %q", out)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	rows := []domain.Record{
		{"id": "1", "nested": domain.Record{"k": "v"}},
	}

	out := exportToString(t, rows, Options{Format: FormatJSON})
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["id"] != "1" {
		t.Fatalf("unexpected decode: %v", decoded)
	}
}

func TestExportExplicitColumnOrder(t *testing.T) {
	rows := []domain.Record{{"a": "1", "b": "2", "c": "3"}}

	out := exportToString(t, rows, Options{Format: FormatCSV, Columns: []string{"c", "a", "nope"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "c,a" {
		t.Fatalf("header = %q, want template order without absent columns", lines[0])
	}
	if lines[1] != "3,1" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestExportMasksBeforeSerialization(t *testing.T) {
	rows := []domain.Record{{"password": "hunter2", "comment": "fine"}}

	out := exportToString(t, rows, Options{Format: FormatCSV, Mask: true})
	if strings.Contains(out, "hunter2") {
		t.Fatalf("password leaked into output: %q", out)
	}
	if !strings.Contains(out, "********") {
		t.Fatalf("expected masked password, got %q", out)
	}
	if !strings.Contains(out, "fine") {
		t.Fatalf("unmatched field must pass through, got %q", out)
	}
	// Masking builds new records; the caller's rows are untouched.
	if rows[0]["password"] != "hunter2" {
		t.Fatal("input record was mutated")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	if err := Export(nil, Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
