// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package textutil provides the small text and formatting helpers used when
// rendering blog content: reading-time estimation, truncation, HTML escaping,
// and Turkish-locale number and date formatting.
package textutil

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// wordsPerMinute is the fixed reading speed used for reading-time estimates.
const wordsPerMinute = 200

// turkishMonths holds the long month names for tr-TR date formatting.
var turkishMonths = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// turkishMonthsShort holds the abbreviated month names.
var turkishMonthsShort = [12]string{
	"Oca", "Şub", "Mar", "Nis", "May", "Haz",
	"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
}

// ReadingTime estimates how long the given content takes to read at 200
// words per minute, rounded up to the nearest whole minute, and formats it
// as a Turkish string. The estimate is never below one minute.
//
// Example: 400 words → "2 dakika".
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d dakika", minutes)
}

// Truncate shortens s to at most max runes, appending "..." when anything
// was cut off.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// EscapeHTML escapes special characters so user-supplied text can be
// embedded in HTML without script injection.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// FormatNumber renders n with "." as the thousands separator, the Turkish
// convention. Example: 1234567 → "1.234.567".
func FormatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatDate renders t with the long Turkish month name, e.g. "2 Ocak 2026".
// The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), turkishMonths[t.Month()-1], t.Year())
}

// FormatDateShort renders t with the abbreviated Turkish month name,
// e.g. "2 Oca 2026". The zero time renders as an empty string.
func FormatDateShort(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), turkishMonthsShort[t.Month()-1], t.Year())
}
