package layouts

import (
	"errors"
	"testing"

	"shopforge/internal/models"
)

// TestIsValidVariant checks registered pairs, unregistered variants, and
// unknown sections.
func TestIsValidVariant(t *testing.T) {
	tests := []struct {
		name    string
		section string
		variant string
		want    bool
	}{
		{name: "hero split", section: models.SectionHero, variant: "split", want: true},
		{name: "hero poster", section: models.SectionHero, variant: "poster", want: true},
		{name: "offer grid", section: models.SectionOffer, variant: "grid", want: true},
		{name: "variant from another section", section: models.SectionHero, variant: "cards", want: false},
		{name: "unregistered variant", section: models.SectionHero, variant: "fullscreen", want: false},
		{name: "unknown section", section: "footer", variant: "split", want: false},
		{name: "empty inputs", section: "", variant: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidVariant(tt.section, tt.variant); got != tt.want {
				t.Errorf("IsValidVariant(%q, %q) = %v, want %v", tt.section, tt.variant, got, tt.want)
			}
		})
	}
}

// TestListVariants verifies every variant a section lists round-trips
// through IsValidVariant, and that unknown sections produce the typed error.
func TestListVariants(t *testing.T) {
	for _, section := range Sections() {
		variants, err := ListVariants(section)
		if err != nil {
			t.Fatalf("ListVariants(%q): %v", section, err)
		}
		if len(variants) == 0 {
			t.Fatalf("section %q has no variants", section)
		}
		for _, v := range variants {
			if !IsValidVariant(section, v.Name) {
				t.Errorf("listed variant (%q, %q) not valid", section, v.Name)
			}
			if v.Label == "" || v.Description == "" {
				t.Errorf("variant (%q, %q) missing picker copy", section, v.Name)
			}
		}
	}

	_, err := ListVariants("sidebar")
	var cfgErr *models.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for unknown section, got %v", err)
	}
	if cfgErr.Code != models.ErrUnknownSection {
		t.Errorf("code: got %q, want %q", cfgErr.Code, models.ErrUnknownSection)
	}
}

// TestDefaultDocumentLayoutsRegistered pins the cross-package invariant:
// every (section, variant) pair a fresh document carries must be registered.
func TestDefaultDocumentLayoutsRegistered(t *testing.T) {
	cfg := models.DefaultSiteConfig()
	for section, variant := range cfg.Layouts {
		if !IsValidVariant(section, variant) {
			t.Errorf("default layout (%q, %q) is not registered", section, variant)
		}
	}
	for _, section := range Sections() {
		if _, ok := cfg.Layouts[section]; !ok {
			t.Errorf("default document misses section %q", section)
		}
	}
}

// TestDefaultVariant verifies the first-listed variant is the default.
func TestDefaultVariant(t *testing.T) {
	if got := DefaultVariant(models.SectionHero); got != "split" {
		t.Errorf("hero default: got %q, want %q", got, "split")
	}
	if got := DefaultVariant("nonexistent"); got != "" {
		t.Errorf("unknown section default: got %q, want empty", got)
	}
}

// TestCatalogIsCopy ensures callers cannot mutate the registry through the
// returned catalog.
func TestCatalogIsCopy(t *testing.T) {
	cat := Catalog()
	cat[models.SectionHero][0].Name = "hacked"

	if !IsValidVariant(models.SectionHero, "split") {
		t.Error("registry mutated through catalog copy")
	}
}
