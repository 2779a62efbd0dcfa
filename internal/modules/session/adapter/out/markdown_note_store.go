package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"focusly/internal/modules/session/domain"
	sessionout "focusly/internal/modules/session/port/out"
	"focusly/internal/platform/markdown"
)

type MarkdownNoteStore struct {
	root string
}

func NewMarkdownNoteStore(root string) sessionout.NoteWriter {
	return &MarkdownNoteStore{root: root}
}

type noteMeta struct {
	SchemaVersion   int       `yaml:"schema_version"`
	ID              string    `yaml:"id"`
	StartedAt       string    `yaml:"started_at"`
	EndedAt         string    `yaml:"ended_at"`
	DurationSeconds int       `yaml:"duration_seconds"`
	FinalScore      int       `yaml:"final_score"`
	Reason          string    `yaml:"reason,omitempty"`
	Apps            []noteApp `yaml:"apps,omitempty"`
}

type noteApp struct {
	Process string `yaml:"process"`
	Title   string `yaml:"title"`
	Seconds int    `yaml:"seconds"`
}

func (s *MarkdownNoteStore) Write(_ context.Context, session domain.Session) (string, error) {
	date := session.StartedAt.Local()
	dir := filepath.Join(s.root, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", date.Format("150405"), shortID(session.ID)))

	meta := noteMeta{
		SchemaVersion:   domain.SchemaVersion,
		ID:              session.ID,
		StartedAt:       session.StartedAt.Format(time.RFC3339),
		EndedAt:         session.EndedAt.Format(time.RFC3339),
		DurationSeconds: session.DurationSeconds,
		FinalScore:      session.FinalScore,
		Reason:          session.Reason,
	}
	for _, app := range session.Apps {
		meta.Apps = append(meta.Apps, noteApp{Process: app.Process, Title: app.Title, Seconds: app.Seconds})
	}
	rendered, err := markdown.RenderFrontmatter(meta, renderBody(session))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}

func renderBody(session domain.Session) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# Focus session %s\n\n", session.StartedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- Duration: %s\n", (time.Duration(session.DurationSeconds) * time.Second).String())
	fmt.Fprintf(&b, "- Final score: %d%%\n", session.FinalScore)
	if session.Reason != "" {
		fmt.Fprintf(&b, "- Ended: %s\n", session.Reason)
	}
	if len(session.Apps) == 0 {
		return b.String()
	}
	b.WriteString("\n## Apps\n\n| Process | Title | Seconds |\n|---|---|---|\n")
	for _, app := range session.Apps {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", escapeCell(app.Process), escapeCell(app.Title), app.Seconds)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
