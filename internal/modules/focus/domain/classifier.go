package domain

import (
	"slices"
	"strings"
)

type Classification string

const (
	Productive Classification = "productive"
	Distractor Classification = "distractor"
	Neutral    Classification = "neutral"
)

const DefaultDistractorThresholdSeconds = 60

var (
	DefaultProductiveKeywords = []string{
		"code", "visual studio", "pycharm", "sublime", "vscode", "word", "google docs", "excel", "matlab",
		"jupyter", "notepad", "terminal", "powershell", "spyder",
	}
	DefaultDistractorKeywords = []string{
		"youtube", "facebook", "instagram", "netflix", "tiktok", "discord", "reddit", "twitter", "steam",
	}

	// Browsers carry the site identity only in the window title.
	browserProcesses = []string{"chrome", "firefox", "edge", "opera", "safari", "brave", "browser"}
	distractingSites = []string{
		"youtube", "youtu.be", "netflix", "twitch", "tiktok", "instagram",
		"facebook", "twitter", "x.com", "reddit", "9gag", "whatsapp",
		"telegram", "discord", "spotify", "pinterest", "tumblr",
		"prime video", "hulu", "disney+", "hbomax", "crunchyroll",
	}
	gameProcesses = []string{
		"steam", "steamwebhelper", "epicgameslauncher", "minecraft",
		"roblox", "lol", "league of legends", "valorant", "csgo",
		"overwatch", "fortnite", "game", "launcher",
	}
	mediaPlayers = []string{"vlc", "spotify", "windowsmediaplayer", "itunes", "quicktime"}
)

// Classifier tags windows as productive, distracting or neutral. It is not
// safe for concurrent use; the tracker serializes access.
type Classifier struct {
	productive       []string
	distractors      []string
	thresholdSeconds int
}

// NewClassifier falls back to the default keyword lists when a list is empty.
func NewClassifier(productive, distractors []string, thresholdSeconds int) *Classifier {
	c := &Classifier{thresholdSeconds: thresholdSeconds}
	if len(productive) == 0 {
		productive = DefaultProductiveKeywords
	}
	if len(distractors) == 0 {
		distractors = DefaultDistractorKeywords
	}
	for _, k := range productive {
		c.AddProductive(k)
	}
	for _, k := range distractors {
		c.AddDistractor(k)
	}
	return c
}

func NewDefaultClassifier() *Classifier {
	return NewClassifier(nil, nil, DefaultDistractorThresholdSeconds)
}

// Classify applies the rules in order: productive keywords, distraction by
// name, then long dwell on anything unclassified.
func (c *Classifier) Classify(process, title string, seconds int) Classification {
	if cls := c.ClassifyByName(process, title); cls != Neutral {
		return cls
	}
	if seconds >= c.thresholdSeconds {
		return Distractor
	}
	return Neutral
}

// ClassifyByName is Classify without the dwell fallback.
func (c *Classifier) ClassifyByName(process, title string) Classification {
	lowProc := strings.ToLower(process)
	lowTitle := strings.ToLower(strings.TrimSpace(title))
	if matchesAny(c.productive, lowProc, lowTitle) {
		return Productive
	}
	if c.isDistractorByName(lowProc, lowTitle) {
		return Distractor
	}
	return Neutral
}

func (c *Classifier) isDistractorByName(lowProc, lowTitle string) bool {
	if matchesAny(c.distractors, lowProc, lowTitle) {
		return true
	}
	if containsAny(lowProc, browserProcesses) {
		if strings.Contains(lowTitle, "youtube") || strings.Contains(lowTitle, " - youtube") {
			return true
		}
		if containsAny(lowTitle, distractingSites) {
			return true
		}
	}
	return containsAny(lowProc, gameProcesses) || containsAny(lowProc, mediaPlayers)
}

func (c *Classifier) AddProductive(keyword string) {
	c.productive = addKeyword(c.productive, keyword)
}

func (c *Classifier) RemoveProductive(keyword string) {
	c.productive = removeKeyword(c.productive, keyword)
}

func (c *Classifier) AddDistractor(keyword string) {
	c.distractors = addKeyword(c.distractors, keyword)
}

func (c *Classifier) RemoveDistractor(keyword string) {
	c.distractors = removeKeyword(c.distractors, keyword)
}

func (c *Classifier) ProductiveKeywords() []string {
	return slices.Clone(c.productive)
}

func (c *Classifier) DistractorKeywords() []string {
	return slices.Clone(c.distractors)
}

func (c *Classifier) ThresholdSeconds() int {
	return c.thresholdSeconds
}

func (c *Classifier) SetThresholdSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.thresholdSeconds = seconds
}

// NormalizeKeyword is the form keywords are stored and matched in.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

func addKeyword(list []string, keyword string) []string {
	k := NormalizeKeyword(keyword)
	if k == "" || slices.Contains(list, k) {
		return list
	}
	return append(list, k)
}

func removeKeyword(list []string, keyword string) []string {
	k := NormalizeKeyword(keyword)
	return slices.DeleteFunc(slices.Clone(list), func(s string) bool { return s == k })
}

func matchesAny(keywords []string, lowProc, lowTitle string) bool {
	for _, k := range keywords {
		if strings.Contains(lowProc, k) || strings.Contains(lowTitle, k) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
