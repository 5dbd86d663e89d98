// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// including Turkish titles.
package slug

import (
	"regexp"
	"strings"
)

// turkishFold maps Turkish letters to their ASCII equivalents. Folding runs
// before lowercasing so that dotted capital İ never reaches strings.ToLower,
// which would turn it into "i" plus a combining dot.
var turkishFold = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, whitespace, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "İstanbul Günlüğü" → "istanbul-gunlugu"
//
// Generation is deterministic and idempotent. Uniqueness is not enforced:
// two titles can produce the same slug.
func Generate(s string) string {
	result := turkishFold.Replace(s)
	result = strings.ToLower(strings.TrimSpace(result))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
