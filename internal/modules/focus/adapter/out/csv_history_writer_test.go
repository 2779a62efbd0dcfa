package out_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"

	focusadapter "focusly/internal/modules/focus/adapter/out"
	"focusly/internal/modules/focus/domain"
)

func sampleEvents() []domain.ClassifiedEvent {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return []domain.ClassifiedEvent{
		{ActivityEvent: domain.ActivityEvent{Start: start, End: start.Add(40 * time.Second), Process: "chrome", Title: "Cats, Dogs - YouTube", Seconds: 40}, Class: domain.Distractor},
		{ActivityEvent: domain.ActivityEvent{Start: start.Add(40 * time.Second), End: start.Add(240 * time.Second), Process: "code", Title: "main.go", Seconds: 200}, Class: domain.Productive},
	}
}

func readRows(t *testing.T, r *os.File, compressed bool) [][]string {
	t.Helper()
	var reader *csv.Reader
	if compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			t.Fatalf("zstd reader: %v", err)
		}
		defer dec.Close()
		reader = csv.NewReader(dec)
	} else {
		reader = csv.NewReader(r)
	}
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}

func TestCSVHistoryWriter(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"activity.csv", "activity.csv.zst"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "exports", name)
			if err := focusadapter.NewCSVHistoryWriter().Write(context.Background(), path, sampleEvents()); err != nil {
				t.Fatalf("write: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			rows := readRows(t, f, filepath.Ext(name) == ".zst")
			if len(rows) != 3 {
				t.Fatalf("expected header and two rows, got %v", rows)
			}
			if rows[0][0] != "start_ts" || rows[0][5] != "class" {
				t.Fatalf("unexpected header %v", rows[0])
			}
			if rows[1][3] != "Cats, Dogs - YouTube" || rows[1][4] != "40" || rows[1][5] != "distractor" {
				t.Fatalf("unexpected row %v", rows[1])
			}
			if rows[2][0] != "2026-03-02T09:00:40Z" || rows[2][5] != "productive" {
				t.Fatalf("unexpected row %v", rows[2])
			}
		})
	}
}
