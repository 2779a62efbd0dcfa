package components

import (
	"time"

	"focusly/internal/ui/theme"
)

// Banner shows the most recent alert until it expires.
type Banner struct {
	text    string
	expires time.Time
}

func (b *Banner) Show(text string, now time.Time, ttl time.Duration) {
	b.text = text
	b.expires = now.Add(ttl)
}

func (b Banner) Active(now time.Time) bool {
	return b.text != "" && now.Before(b.expires)
}

func (b Banner) View(now time.Time) string {
	if !b.Active(now) {
		return ""
	}
	return theme.Alert.Render(b.text)
}
