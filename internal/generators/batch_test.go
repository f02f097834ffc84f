package generators

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mmrzaf/secgen/internal/domain"
)

// flakyGenerator fails generation on some rows and produces invalid rows on
// others, to exercise the batch loop's drop behavior.
type flakyGenerator struct {
	calls        int
	failEvery    int
	invalidEvery int
}

func (g *flakyGenerator) Kind() string { return "flaky" }

func (g *flakyGenerator) GenerateRow() (domain.Record, error) {
	g.calls++
	if g.failEvery > 0 && g.calls%g.failEvery == 0 {
		return nil, &domain.GenerationError{Kind: "flaky", Err: errors.New("boom")}
	}
	row := domain.Record{"seq": g.calls, "ok": true}
	if g.invalidEvery > 0 && g.calls%g.invalidEvery == 0 {
		row["ok"] = false
	}
	return row, nil
}

func (g *flakyGenerator) Validate(rec domain.Record) bool {
	ok, _ := rec["ok"].(bool)
	return ok
}

func (g *flakyGenerator) SupportedFields() []string { return []string{"seq", "ok"} }

func TestGenerateBatchSkipsFailedRows(t *testing.T) {
	g := &flakyGenerator{failEvery: 3}

	rows, stats := GenerateBatch(g, 9, nil)
	if g.calls != 9 {
		t.Fatalf("expected exactly 9 attempts, got %d", g.calls)
	}
	if stats.FailedRows != 3 {
		t.Fatalf("stats.FailedRows = %d, want 3", stats.FailedRows)
	}
	if len(rows) != 6 {
		t.Fatalf("expected 6 surviving rows (no padding), got %d", len(rows))
	}

	// Surviving rows keep generation order.
	prev := 0
	for _, row := range rows {
		seq := row["seq"].(int)
		if seq <= prev {
			t.Fatalf("rows out of generation order: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestGenerateBatchDropsInvalidRows(t *testing.T) {
	g := &flakyGenerator{invalidEvery: 2}

	rows, stats := GenerateBatch(g, 10, nil)
	if stats.InvalidRows != 5 {
		t.Fatalf("stats.InvalidRows = %d, want 5", stats.InvalidRows)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 surviving rows, got %d", len(rows))
	}
	if stats.Generated != 5 || stats.Requested != 10 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestGenerateBatchNonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		g := &flakyGenerator{}
		rows, stats := GenerateBatch(g, count, nil)
		if g.calls != 0 {
			t.Fatalf("count %d: expected no generation attempts, got %d", count, g.calls)
		}
		if len(rows) != 0 {
			t.Fatalf("count %d: expected empty batch, got %d rows", count, len(rows))
		}
		if stats.Requested != 0 || stats.Generated != 0 || stats.FailedRows != 0 || stats.InvalidRows != 0 {
			t.Fatalf("count %d: unexpected stats: %+v", count, stats)
		}
	}
}

func TestGenerationErrorUnwrap(t *testing.T) {
	inner := errors.New("provider down")
	err := &domain.GenerationError{Kind: "user", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("expected GenerationError to unwrap to its cause")
	}
	if msg := fmt.Sprint(err); msg == "" {
		t.Fatal("expected non-empty error message")
	}
}
