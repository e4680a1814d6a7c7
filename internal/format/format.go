// Package format har visningshjelpere delt av web- og terminalvisningen.
package format

import (
	"strings"
	"time"
)

const MaxTopicsPerCard = 4

// MonthYear gir "Jan 2024". Nulltid gir tom streng.
func MonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2006")
}

// Truncate kutter s til maks n tegn og legger til "…" når noe ble kuttet.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n]), " ") + "…"
}

// YearsActive regner hele kalenderår siden kontoen ble opprettet.
func YearsActive(created, now time.Time) int {
	if created.IsZero() || now.Before(created) {
		return 0
	}
	return now.Year() - created.Year()
}

func TopicPreview(topics []string) []string {
	if len(topics) > MaxTopicsPerCard {
		return topics[:MaxTopicsPerCard]
	}
	return topics
}
