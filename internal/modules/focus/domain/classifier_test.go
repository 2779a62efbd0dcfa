package domain_test

import (
	"testing"

	"focusly/internal/modules/focus/domain"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	c := domain.NewDefaultClassifier()
	cases := []struct {
		name    string
		process string
		title   string
		seconds int
		want    domain.Classification
	}{
		{name: "productive wins over youtube", process: "code.exe", title: "youtube tutorial - Visual Studio Code", want: domain.Productive},
		{name: "browser title", process: "chrome.exe", title: "Lo-fi Beats - YouTube", want: domain.Distractor},
		{name: "browser site", process: "firefox", title: "r/golang - Reddit", want: domain.Distractor},
		{name: "browser neutral site", process: "firefox", title: "Weather forecast", want: domain.Neutral},
		{name: "distractor keyword in process", process: "Discord", title: "general", want: domain.Distractor},
		{name: "game process", process: "minecraft.exe", title: "Minecraft 1.21", want: domain.Distractor},
		{name: "media player", process: "vlc", title: "movie.mkv", want: domain.Distractor},
		{name: "long dwell fallback", process: "unknownapp.exe", title: "Untitled", seconds: 90, want: domain.Distractor},
		{name: "short dwell neutral", process: "unknownapp.exe", title: "Untitled", seconds: 30, want: domain.Neutral},
		{name: "threshold is inclusive", process: "unknownapp.exe", title: "Untitled", seconds: 60, want: domain.Distractor},
		{name: "empty input", want: domain.Neutral},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Classify(tc.process, tc.title, tc.seconds); got != tc.want {
				t.Fatalf("classify(%q, %q, %d) = %s, want %s", tc.process, tc.title, tc.seconds, got, tc.want)
			}
		})
	}
}

func TestClassifyByNameIgnoresDwell(t *testing.T) {
	t.Parallel()
	c := domain.NewDefaultClassifier()
	if got := c.ClassifyByName("unknownapp.exe", "Untitled"); got != domain.Neutral {
		t.Fatalf("expected neutral, got %s", got)
	}
	if got := c.ClassifyByName("chrome", "Netflix"); got != domain.Distractor {
		t.Fatalf("expected distractor, got %s", got)
	}
}

func TestClassifierKeywordEdits(t *testing.T) {
	t.Parallel()
	c := domain.NewClassifier(nil, nil, 60)

	c.AddDistractor("  HackerNews ")
	if got := c.Classify("browserless", "hackernews front page", 0); got != domain.Distractor {
		t.Fatalf("expected added keyword to classify distractor, got %s", got)
	}
	c.AddDistractor("hackernews")
	count := 0
	for _, k := range c.DistractorKeywords() {
		if k == "hackernews" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one normalized keyword, got %d", count)
	}

	c.AddProductive("hackernews")
	if got := c.Classify("x", "hackernews", 0); got != domain.Productive {
		t.Fatalf("expected productive precedence, got %s", got)
	}
	c.RemoveProductive("HACKERNEWS")
	c.RemoveDistractor("hackernews")
	if got := c.Classify("x", "hackernews", 0); got != domain.Neutral {
		t.Fatalf("expected neutral after removal, got %s", got)
	}

	keywords := c.ProductiveKeywords()
	keywords[0] = "mutated"
	if c.ProductiveKeywords()[0] == "mutated" {
		t.Fatalf("keyword accessor must return a copy")
	}
}

func TestClassifierThreshold(t *testing.T) {
	t.Parallel()
	c := domain.NewClassifier([]string{"vim"}, []string{"slack"}, 60)
	c.SetThresholdSeconds(120)
	if got := c.Classify("idle", "idle", 90); got != domain.Neutral {
		t.Fatalf("expected neutral below raised threshold, got %s", got)
	}
	c.SetThresholdSeconds(-5)
	if c.ThresholdSeconds() != 0 {
		t.Fatalf("expected clamped threshold, got %d", c.ThresholdSeconds())
	}
	if got := c.Classify("vim", "main.go", 0); got != domain.Productive {
		t.Fatalf("expected custom productive keyword, got %s", got)
	}
	if got := c.Classify("code", "main.go", 0); got != domain.Distractor {
		t.Fatalf("custom list replaces defaults so dwell fallback applies, got %s", got)
	}
}
