package markdown

import (
	"strings"
	"testing"
)

type noteMeta struct {
	ID    string `yaml:"id"`
	Score int    `yaml:"final_score"`
	Apps  int    `yaml:"apps"`
}

func TestRenderKeepsFieldOrderAndParsesBack(t *testing.T) {
	t.Parallel()
	rendered, err := RenderFrontmatter(noteMeta{ID: "s-1", Score: 83, Apps: 2}, "# Session\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: s-1\nfinal_score: 83\napps: 2\n---\n") {
		t.Fatalf("unexpected frontmatter layout:\n%s", rendered)
	}
	var back noteMeta
	body, err := ParseFrontmatter(rendered, &back)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if back.ID != "s-1" || back.Score != 83 || back.Apps != 2 {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if !strings.Contains(body, "# Session") {
		t.Fatalf("body lost: %q", body)
	}
}

func TestParseFrontmatterMissingClose(t *testing.T) {
	t.Parallel()
	var meta noteMeta
	if _, err := ParseFrontmatter("---\nid: x\n", &meta); err == nil {
		t.Fatalf("expected missing separator error")
	}
}
