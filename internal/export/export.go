// Package export renders batches of records to json, csv, or sql text.
// Output is staged in memory and written in one call, so a failing run does
// not leave a half-written file behind.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mmrzaf/secgen/internal/domain"
	"github.com/mmrzaf/secgen/internal/masking"
	"github.com/mmrzaf/secgen/internal/validation"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatSQL  = "sql"
)

type Options struct {
	Format string
	// Output is a destination path; empty means stdout.
	Output string
	// Mask rewrites sensitive values before serialization.
	Mask bool
	// Columns fixes csv/sql column order (template order). Empty means the
	// sorted union of all keys seen across records.
	Columns []string
	// Table names the sql INSERT target; defaults to "records".
	Table string
}

func Export(rows []domain.Record, opts Options) error {
	if opts.Mask {
		rows = masking.MaskRecords(rows)
	}

	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatJSON:
		data, err = renderJSON(rows)
	case FormatCSV:
		data, err = renderCSV(rows, columnsFor(rows, opts.Columns))
	case FormatSQL:
		data, err = renderSQL(rows, columnsFor(rows, opts.Columns), opts.Table)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	return nil
}

// columnsFor resolves the column set: the caller's explicit order restricted
// to keys that actually occur, else the sorted union of keys.
func columnsFor(rows []domain.Record, explicit []string) []string {
	union := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			union[key] = true
		}
	}

	if len(explicit) > 0 {
		cols := make([]string, 0, len(explicit))
		for _, key := range explicit {
			if union[key] {
				cols = append(cols, key)
			}
		}
		return cols
	}

	cols := make([]string, 0, len(union))
	for key := range union {
		cols = append(cols, key)
	}
	sort.Strings(cols)
	return cols
}

func renderJSON(rows []domain.Record) ([]byte, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return append(data, '\n'), nil
}

func renderCSV(rows []domain.Record, cols []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(cols); err != nil {
		return nil, fmt.Errorf("csv encode: %w", err)
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			value, ok := row[col]
			if !ok {
				record[i] = ""
				continue
			}
			cell, err := cellText(value)
			if err != nil {
				return nil, err
			}
			record[i] = cell
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv encode: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv encode: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSQL(rows []domain.Record, cols []string, table string) ([]byte, error) {
	if table == "" {
		table = "records"
	}
	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = validation.QuoteIdentifier(col)
	}
	columnList := strings.Join(quoted, ", ")
	tableName := validation.QuoteIdentifier(table)

	var buf bytes.Buffer
	values := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			value, ok := row[col]
			if !ok {
				values[i] = "NULL"
				continue
			}
			literal, err := sqlLiteral(value)
			if err != nil {
				return nil, err
			}
			values[i] = literal
		}
		fmt.Fprintf(&buf, "INSERT INTO %s (%s) VALUES (%s);\n", tableName, columnList, strings.Join(values, ", "))
	}
	return buf.Bytes(), nil
}

// cellText renders a value for a csv cell. Non-scalar values are embedded as
// their compact JSON form.
func cellText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case nil:
		return "", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode cell: %w", err)
		}
		return string(data), nil
	}
}

func sqlLiteral(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return quoteSQLString(v), nil
	case bool:
		if v {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case nil:
		return "NULL", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode value: %w", err)
		}
		return quoteSQLString(string(data)), nil
	}
}

func quoteSQLString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
