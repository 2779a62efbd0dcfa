package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"focusly/internal/modules/focus/domain"
	focusout "focusly/internal/modules/focus/port/out"
)

var historyHeader = []string{"start_ts", "end_ts", "proc", "title", "seconds", "class"}

// CSVHistoryWriter exports ledger events as CSV, zstd-compressed when the
// target path ends in .zst.
type CSVHistoryWriter struct{}

func NewCSVHistoryWriter() focusout.HistoryWriter {
	return CSVHistoryWriter{}
}

func (CSVHistoryWriter) Write(ctx context.Context, path string, events []domain.ClassifiedEvent) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		if err := WriteHistoryCSV(ctx, f, events); err != nil {
			return err
		}
		return f.Close()
	}

	encoder, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	if err := WriteHistoryCSV(ctx, encoder, events); err != nil {
		encoder.Close()
		return err
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}
	return f.Close()
}

func WriteHistoryCSV(ctx context.Context, w io.Writer, events []domain.ClassifiedEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		record := []string{
			ev.Start.Format(time.RFC3339),
			ev.End.Format(time.RFC3339),
			ev.Process,
			ev.Title,
			strconv.Itoa(ev.Seconds),
			string(ev.Class),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
