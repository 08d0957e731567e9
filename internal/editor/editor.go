// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor is the validated mutation layer over a SiteConfig document.
// Every function is pure: it validates its input, deep-copies the document,
// and returns the new value. A failed validation returns the zero document
// and an error; the caller's document is never touched.
package editor

import (
	"shopforge/internal/layouts"
	"shopforge/internal/models"
)

// ContentKey names a scalar content field writable through SetContent.
type ContentKey string

const (
	ContentHeroHeading     ContentKey = "heroHeading"
	ContentHeroSubheading  ContentKey = "heroSubheading"
	ContentHeroImage       ContentKey = "heroImage"
	ContentScarcityEnabled ContentKey = "scarcityEnabled"
)

// SetMode switches the editing mode. Only enum membership is validated.
func SetMode(doc models.SiteConfig, mode models.EditorMode) (models.SiteConfig, error) {
	if mode != models.ModeGuided && mode != models.ModeFreeEdit {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "mode", "unknown mode %q", mode)
	}
	out := doc.Clone()
	out.Mode = mode
	return out, nil
}

// ToggleBossMode flips the document between guided and free-edit mode.
func ToggleBossMode(doc models.SiteConfig) models.SiteConfig {
	out := doc.Clone()
	if out.Mode == models.ModeFreeEdit {
		out.Mode = models.ModeGuided
	} else {
		out.Mode = models.ModeFreeEdit
	}
	return out
}

// SetLayout chooses a variant for a section. The pair must exist in the
// layout registry; the registry is the only authority on valid variants.
func SetLayout(doc models.SiteConfig, section, variant string) (models.SiteConfig, error) {
	variants, err := layouts.ListVariants(section)
	if err != nil {
		return models.SiteConfig{}, err
	}
	valid := false
	for _, v := range variants {
		if v.Name == variant {
			valid = true
			break
		}
	}
	if !valid {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidVariant, section, "variant %q is not registered", variant)
	}
	out := doc.Clone()
	out.Layouts[section] = variant
	return out, nil
}

// SetStyle writes one style token. The value must be a member of the fixed
// set for the key.
func SetStyle(doc models.SiteConfig, key models.StyleKey, value string) (models.SiteConfig, error) {
	if !models.ValidStyleValue(key, value) {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidStyleValue, string(key), "value %q is not allowed", value)
	}
	out := doc.Clone()
	switch key {
	case models.StylePalette:
		out.Styles.Palette = value
	case models.StyleFontPair:
		out.Styles.FontPair = value
	case models.StyleCornerRadius:
		out.Styles.CornerRadius = value
	case models.StyleButtonStyle:
		out.Styles.ButtonStyle = value
	case models.StyleSpacingDensity:
		out.Styles.SpacingDensity = value
	}
	return out, nil
}

// SetContent writes one scalar content field. The dynamic type of value must
// match the field: strings for the hero fields, bool for scarcityEnabled.
func SetContent(doc models.SiteConfig, key ContentKey, value any) (models.SiteConfig, error) {
	out := doc.Clone()
	switch key {
	case ContentHeroHeading, ContentHeroSubheading, ContentHeroImage:
		s, ok := value.(string)
		if !ok {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, string(key), "expected string, got %T", value)
		}
		switch key {
		case ContentHeroHeading:
			out.Content.HeroHeading = s
		case ContentHeroSubheading:
			out.Content.HeroSubheading = s
		case ContentHeroImage:
			out.Content.HeroImage = s
		}
	case ContentScarcityEnabled:
		b, ok := value.(bool)
		if !ok {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, string(key), "expected bool, got %T", value)
		}
		out.Content.ScarcityEnabled = b
	default:
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, string(key), "unknown content key")
	}
	return out, nil
}

// AddSticker adds a badge to the sticker set. Unknown badge ids are rejected;
// adding a badge the document already carries is a no-op.
func AddSticker(doc models.SiteConfig, id string) (models.SiteConfig, error) {
	if !models.ValidSticker(id) {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "stickers", "unknown sticker %q", id)
	}
	out := doc.Clone()
	if !out.HasSticker(id) {
		out.Content.Stickers = append(out.Content.Stickers, id)
	}
	return out, nil
}

// RemoveSticker removes a badge from the sticker set. Removing a badge the
// document does not carry is a no-op.
func RemoveSticker(doc models.SiteConfig, id string) models.SiteConfig {
	out := doc.Clone()
	kept := out.Content.Stickers[:0]
	for _, s := range out.Content.Stickers {
		if s != id {
			kept = append(kept, s)
		}
	}
	out.Content.Stickers = kept
	return out
}
