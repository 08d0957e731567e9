package handlers

import (
	"strings"
	"unicode/utf8"

	"shopforge/internal/layouts"
	"shopforge/internal/models"
)

// Validation limits for editor inputs.
const (
	maxTitleLen      = 120
	maxHeadingLen    = 200
	maxSubheadingLen = 500
	maxReviewTextLen = 1_000
	maxNameLen       = 200
	maxImageURLLen   = 2_000
)

// validateTitle checks the site title and returns the first error found.
func validateTitle(title string) string {
	if utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLen {
		return "Title is too long (max 120 characters)."
	}
	return ""
}

// validateConfig re-checks the document invariants on a full config write:
// layouts must be registered, styles must be members of their sets, stickers
// known, prices non-negative and ordered. Action-based mutations enforce
// these one step at a time; a whole-document PUT must not bypass them.
func validateConfig(cfg models.SiteConfig) error {
	if cfg.Mode != models.ModeGuided && cfg.Mode != models.ModeFreeEdit {
		return models.NewConfigError(models.ErrInvalidContentValue, "mode", "unknown mode %q", cfg.Mode)
	}

	for section, variant := range cfg.Layouts {
		variants, err := layouts.ListVariants(section)
		if err != nil {
			return err
		}
		found := false
		for _, v := range variants {
			if v.Name == variant {
				found = true
				break
			}
		}
		if !found {
			return models.NewConfigError(models.ErrInvalidVariant, section, "variant %q is not registered", variant)
		}
	}

	styleFields := map[models.StyleKey]string{
		models.StylePalette:        cfg.Styles.Palette,
		models.StyleFontPair:       cfg.Styles.FontPair,
		models.StyleCornerRadius:   cfg.Styles.CornerRadius,
		models.StyleButtonStyle:    cfg.Styles.ButtonStyle,
		models.StyleSpacingDensity: cfg.Styles.SpacingDensity,
	}
	for key, value := range styleFields {
		if !models.ValidStyleValue(key, value) {
			return models.NewConfigError(models.ErrInvalidStyleValue, string(key), "value %q is not allowed", value)
		}
	}

	if utf8.RuneCountInString(cfg.Content.HeroHeading) > maxHeadingLen {
		return models.NewConfigError(models.ErrInvalidContentValue, "heroHeading", "too long (max %d characters)", maxHeadingLen)
	}
	if utf8.RuneCountInString(cfg.Content.HeroSubheading) > maxSubheadingLen {
		return models.NewConfigError(models.ErrInvalidContentValue, "heroSubheading", "too long (max %d characters)", maxSubheadingLen)
	}
	if len(cfg.Content.HeroImage) > maxImageURLLen {
		return models.NewConfigError(models.ErrInvalidContentValue, "heroImage", "URL too long (max %d characters)", maxImageURLLen)
	}

	for _, s := range cfg.Content.Stickers {
		if !models.ValidSticker(s) {
			return models.NewConfigError(models.ErrInvalidContentValue, "stickers", "unknown sticker %q", s)
		}
	}

	for i, r := range cfg.Content.Reviews {
		if r.Rating < 1 || r.Rating > 5 {
			return models.NewConfigError(models.ErrInvalidContentValue, "reviews", "review %d: rating %d out of range 1-5", i, r.Rating)
		}
		if utf8.RuneCountInString(r.Text) > maxReviewTextLen {
			return models.NewConfigError(models.ErrInvalidContentValue, "reviews", "review %d: text too long (max %d characters)", i, maxReviewTextLen)
		}
	}

	for i, p := range cfg.Content.Products {
		if utf8.RuneCountInString(p.Name) > maxNameLen {
			return models.NewConfigError(models.ErrInvalidContentValue, "products", "product %d: name too long (max %d characters)", i, maxNameLen)
		}
		if p.PriceCents < 0 {
			return models.NewConfigError(models.ErrInvalidPrice, "products", "product %d: price %d is negative", i, p.PriceCents)
		}
		if p.OriginalPriceCents != nil && *p.OriginalPriceCents < p.PriceCents {
			return models.NewConfigError(models.ErrInvalidPrice, "products", "product %d: original price %d is below price %d", i, *p.OriginalPriceCents, p.PriceCents)
		}
	}

	return nil
}
