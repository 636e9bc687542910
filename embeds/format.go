package embeds

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FormatDuration renders d in words, e.g. "1 minute and 30 seconds".
// Fractions of a second are dropped.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}

	units := []struct {
		name string
		size time.Duration
	}{
		{"day", 24 * time.Hour},
		{"hour", time.Hour},
		{"minute", time.Minute},
		{"second", time.Second},
	}

	parts := make([]string, 0, len(units))

	for _, unit := range units {
		count := d / unit.size
		d -= count * unit.size

		if count == 0 {
			continue
		}

		if count == 1 {
			parts = append(parts, fmt.Sprintf("1 %s", unit.name))
		} else {
			parts = append(parts, fmt.Sprintf("%d %ss", count, unit.name))
		}
	}

	if len(parts) == 1 {
		return parts[0]
	}

	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

// FormatTimestamp renders d as m:ss, or h:mm:ss when it is an hour or longer.
func FormatTimestamp(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// Paginate groups lines into pages of at most perPage lines.
func Paginate(lines []string, perPage int) []string {
	if perPage <= 0 {
		perPage = 10
	}

	pages := make([]string, 0, (len(lines)+perPage-1)/perPage)

	for start := 0; start < len(lines); start += perPage {
		end := min(start+perPage, len(lines))
		pages = append(pages, strings.Join(lines[start:end], "\n"))
	}

	return pages
}

// TruncateString shortens str to at most maxLen runes including suffix, cutting
// at the last whitespace when there is one.
func TruncateString(str string, maxLen int, suffix string) string {
	if utf8.RuneCountInString(str) <= maxLen {
		return str
	}

	keep := max(maxLen-utf8.RuneCountInString(suffix), 0)

	cutIndex := 0
	spaceIndex := -1
	runes := 0

	for i, r := range str {
		if runes == keep {
			cutIndex = i
			break
		}

		if unicode.IsSpace(r) {
			spaceIndex = i
		}

		runes++
	}

	if spaceIndex > 0 {
		cutIndex = spaceIndex
	}

	return str[:cutIndex] + suffix
}
