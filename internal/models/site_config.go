// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// EditorMode controls which mutations the editing UI exposes. Guided mode
// walks the user through a fixed flow; free-edit ("boss mode") allows direct
// manipulation of any field.
type EditorMode string

const (
	ModeGuided   EditorMode = "guided"
	ModeFreeEdit EditorMode = "freeEdit"
)

// Section names the slots of the storefront layout.
const (
	SectionHero        = "hero"
	SectionUSP         = "usp"
	SectionSocialProof = "socialProof"
	SectionOffer       = "offer"
)

// StyleKey identifies one tunable style token on the document.
type StyleKey string

const (
	StylePalette        StyleKey = "palette"
	StyleFontPair       StyleKey = "fontPair"
	StyleCornerRadius   StyleKey = "cornerRadius"
	StyleButtonStyle    StyleKey = "buttonStyle"
	StyleSpacingDensity StyleKey = "spacingDensity"
)

// StyleValues is the closed set of allowed values per style token.
// The first entry of each set is the neutral default.
var StyleValues = map[StyleKey][]string{
	StylePalette:        {"warm", "ocean", "forest", "mono", "candy"},
	StyleFontPair:       {"modernSans", "editorial", "playful", "classic"},
	StyleCornerRadius:   {"soft", "none", "round", "pill"},
	StyleButtonStyle:    {"solid", "outline", "elevated"},
	StyleSpacingDensity: {"cozy", "compact", "airy"},
}

// ValidStyleValue reports whether value is an allowed member of the set for
// the given style key. Unknown keys are invalid by definition.
func ValidStyleValue(key StyleKey, value string) bool {
	for _, v := range StyleValues[key] {
		if v == value {
			return true
		}
	}
	return false
}

// KnownStickers is the closed catalog of badge identifiers a storefront can
// display. The sticker mutations validate against this list.
var KnownStickers = []string{"bestSeller", "newArrival", "limitedEdition", "freeShipping", "handmade"}

// ValidSticker reports whether id is a known badge identifier.
func ValidSticker(id string) bool {
	for _, s := range KnownStickers {
		if s == id {
			return true
		}
	}
	return false
}

// Styles holds the document's style tokens. Every value must be a member of
// the corresponding StyleValues set; the mutation layer rejects anything else.
type Styles struct {
	Palette        string `json:"palette"`
	FontPair       string `json:"fontPair"`
	CornerRadius   string `json:"cornerRadius"`
	ButtonStyle    string `json:"buttonStyle"`
	SpacingDensity string `json:"spacingDensity"`
}

// Review is one customer review in display order.
type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// Product is one item in the offer section. Prices are integer cents;
// OriginalPriceCents, when set, is the pre-discount price and must not be
// lower than PriceCents.
type Product struct {
	Name               string `json:"name"`
	PriceCents         int64  `json:"priceCents"`
	OriginalPriceCents *int64 `json:"originalPriceCents,omitempty"`
}

// Feature is one value-proposition entry.
type Feature struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Content holds the document's editable content: hero copy, trust signals,
// and the product list. Slices are display-ordered; Stickers has set
// semantics enforced by the mutation layer.
type Content struct {
	HeroHeading     string    `json:"heroHeading"`
	HeroSubheading  string    `json:"heroSubheading"`
	HeroImage       string    `json:"heroImage,omitempty"`
	Reviews         []Review  `json:"reviews"`
	Stickers        []string  `json:"stickers"`
	Products        []Product `json:"products"`
	Features        []Feature `json:"features"`
	ScarcityEnabled bool      `json:"scarcityEnabled"`
}

// SiteConfig is the canonical storefront configuration document. It is stored
// verbatim as the jsonb data column of a site record and is the sole input of
// the mutation and coaching layers.
type SiteConfig struct {
	Mode    EditorMode        `json:"mode"`
	Styles  Styles            `json:"styles"`
	Layouts map[string]string `json:"layouts"`
	Content Content           `json:"content"`
}

// DefaultSiteConfig returns a fresh document: guided mode, every style token
// at its neutral value, the default variant for each section, and empty
// content collections.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Mode: ModeGuided,
		Styles: Styles{
			Palette:        StyleValues[StylePalette][0],
			FontPair:       StyleValues[StyleFontPair][0],
			CornerRadius:   StyleValues[StyleCornerRadius][0],
			ButtonStyle:    StyleValues[StyleButtonStyle][0],
			SpacingDensity: StyleValues[StyleSpacingDensity][0],
		},
		Layouts: map[string]string{
			SectionHero:        "split",
			SectionUSP:         "iconGrid",
			SectionSocialProof: "cards",
			SectionOffer:       "single",
		},
		Content: Content{
			Reviews:  []Review{},
			Stickers: []string{},
			Products: []Product{},
			Features: []Feature{},
		},
	}
}

// Clone returns a deep copy of the document. Mutations operate on the copy so
// the caller's document is never modified in place.
func (c SiteConfig) Clone() SiteConfig {
	out := c

	out.Layouts = make(map[string]string, len(c.Layouts))
	for k, v := range c.Layouts {
		out.Layouts[k] = v
	}

	out.Content.Reviews = append([]Review(nil), c.Content.Reviews...)
	out.Content.Stickers = append([]string(nil), c.Content.Stickers...)
	out.Content.Features = append([]Feature(nil), c.Content.Features...)

	out.Content.Products = make([]Product, len(c.Content.Products))
	for i, p := range c.Content.Products {
		if p.OriginalPriceCents != nil {
			op := *p.OriginalPriceCents
			p.OriginalPriceCents = &op
		}
		out.Content.Products[i] = p
	}

	return out
}

// HasSticker reports whether the document already carries the given badge.
func (c SiteConfig) HasSticker(id string) bool {
	for _, s := range c.Content.Stickers {
		if s == id {
			return true
		}
	}
	return false
}
