// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layouts is the closed catalog of section layout variants. Every
// (section, variant) pair a document may reference must be registered here;
// adding a new variant is a registry-only change.
package layouts

import "shopforge/internal/models"

// Variant describes one presentation choice for a section, with copy for
// the editor's layout picker.
type Variant struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// registry maps section name to its ordered variant list. The first entry
// is the variant a fresh document starts with.
var registry = map[string][]Variant{
	models.SectionHero: {
		{Name: "split", Label: "Split", Description: "Image beside the headline and call to action."},
		{Name: "poster", Label: "Poster", Description: "Full-bleed image with overlaid copy."},
		{Name: "minimal", Label: "Minimal", Description: "Copy only, no imagery."},
	},
	models.SectionUSP: {
		{Name: "iconGrid", Label: "Icon grid", Description: "Three-up grid of features with icons."},
		{Name: "checklist", Label: "Checklist", Description: "Vertical list with check marks."},
		{Name: "stripe", Label: "Stripe", Description: "Single horizontal band of short claims."},
	},
	models.SectionSocialProof: {
		{Name: "cards", Label: "Cards", Description: "Review cards with author and star rating."},
		{Name: "quotes", Label: "Quotes", Description: "Large rotating pull quotes."},
		{Name: "marquee", Label: "Marquee", Description: "Continuous scrolling strip of reviews."},
	},
	models.SectionOffer: {
		{Name: "single", Label: "Single", Description: "One product front and center."},
		{Name: "grid", Label: "Grid", Description: "Product grid with prices."},
		{Name: "spotlight", Label: "Spotlight", Description: "Featured product with supporting items."},
	},
}

// sectionOrder fixes the order sections are listed in, matching their order
// on the rendered page.
var sectionOrder = []string{
	models.SectionHero,
	models.SectionUSP,
	models.SectionSocialProof,
	models.SectionOffer,
}

// Sections returns all registered section names in page order.
func Sections() []string {
	return append([]string(nil), sectionOrder...)
}

// IsValidVariant reports whether the (section, variant) pair is registered.
func IsValidVariant(section, variant string) bool {
	for _, v := range registry[section] {
		if v.Name == variant {
			return true
		}
	}
	return false
}

// ListVariants returns the variant descriptors for a section in registry
// order. Unknown sections yield an ErrUnknownSection config error.
func ListVariants(section string) ([]Variant, error) {
	variants, ok := registry[section]
	if !ok {
		return nil, models.NewConfigError(models.ErrUnknownSection, section, "no such section")
	}
	return append([]Variant(nil), variants...), nil
}

// DefaultVariant returns the first registered variant for a section, or ""
// if the section is unknown.
func DefaultVariant(section string) string {
	if len(registry[section]) == 0 {
		return ""
	}
	return registry[section][0].Name
}

// Catalog returns the full registry keyed by section, for the editor UI.
func Catalog() map[string][]Variant {
	out := make(map[string][]Variant, len(registry))
	for section, variants := range registry {
		out[section] = append([]Variant(nil), variants...)
	}
	return out
}
