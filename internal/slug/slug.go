// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation and validation for
// public storefront addresses.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// wellFormed is the shape a claimable slug must have: lowercase
	// alphanumeric runs separated by single hyphens.
	wellFormed = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// MaxLen is the longest slug a site may claim.
const MaxLen = 80

// reserved lists path segments that can never be claimed as a public
// address because the router owns them.
var reserved = map[string]bool{
	"api":    true,
	"health": true,
	"s":      true,
	"static": true,
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Maya's Cookie Shop" → "mayas-cookie-shop"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Valid reports whether s is a claimable public address: well-formed,
// within length, and not a reserved path segment.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLen || reserved[s] {
		return false
	}
	return wellFormed.MatchString(s)
}
