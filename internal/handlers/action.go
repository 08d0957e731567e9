// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"

	"shopforge/internal/editor"
	"shopforge/internal/models"
)

// Action is the wire form of one mutation. Op selects the transition; the
// remaining fields carry its arguments. Unknown ops and mismatched argument
// types surface as config errors, leaving the stored document untouched.
type Action struct {
	Op string `json:"op"`

	Mode    models.EditorMode `json:"mode,omitempty"`
	Section string            `json:"section,omitempty"`
	Variant string            `json:"variant,omitempty"`

	StyleKey   models.StyleKey `json:"styleKey,omitempty"`
	StyleValue string          `json:"styleValue,omitempty"`

	ContentKey   editor.ContentKey `json:"contentKey,omitempty"`
	ContentValue json.RawMessage   `json:"contentValue,omitempty"`

	Index   int    `json:"index,omitempty"`
	Sticker string `json:"sticker,omitempty"`

	Review       *models.Review       `json:"review,omitempty"`
	ReviewPatch  *editor.ReviewPatch  `json:"reviewPatch,omitempty"`
	Feature      *models.Feature      `json:"feature,omitempty"`
	FeaturePatch *editor.FeaturePatch `json:"featurePatch,omitempty"`
	Product      *models.Product      `json:"product,omitempty"`
	ProductPatch *editor.ProductPatch `json:"productPatch,omitempty"`
}

// Apply runs the action against doc through the mutation layer and returns
// the new document.
func (a Action) Apply(doc models.SiteConfig) (models.SiteConfig, error) {
	switch a.Op {
	case "setMode":
		return editor.SetMode(doc, a.Mode)
	case "toggleBossMode":
		return editor.ToggleBossMode(doc), nil
	case "setLayout":
		return editor.SetLayout(doc, a.Section, a.Variant)
	case "setStyle":
		return editor.SetStyle(doc, a.StyleKey, a.StyleValue)
	case "setContent":
		value, err := a.decodeContentValue()
		if err != nil {
			return models.SiteConfig{}, err
		}
		return editor.SetContent(doc, a.ContentKey, value)
	case "addSticker":
		return editor.AddSticker(doc, a.Sticker)
	case "removeSticker":
		return editor.RemoveSticker(doc, a.Sticker), nil

	case "addReview":
		if a.Review == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "review", "missing review payload")
		}
		return editor.AddReview(doc, *a.Review)
	case "updateReview":
		if a.ReviewPatch == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "reviewPatch", "missing review patch")
		}
		return editor.UpdateReview(doc, a.Index, *a.ReviewPatch)
	case "removeReview":
		return editor.RemoveReview(doc, a.Index)

	case "addFeature":
		if a.Feature == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "feature", "missing feature payload")
		}
		return editor.AddFeature(doc, *a.Feature)
	case "updateFeature":
		if a.FeaturePatch == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "featurePatch", "missing feature patch")
		}
		return editor.UpdateFeature(doc, a.Index, *a.FeaturePatch)
	case "removeFeature":
		return editor.RemoveFeature(doc, a.Index)

	case "addProduct":
		if a.Product == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "product", "missing product payload")
		}
		return editor.AddProduct(doc, *a.Product)
	case "updateProduct":
		if a.ProductPatch == nil {
			return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "productPatch", "missing product patch")
		}
		return editor.UpdateProduct(doc, a.Index, *a.ProductPatch)
	case "removeProduct":
		return editor.RemoveProduct(doc, a.Index)
	}

	return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "op", "unknown action %q", a.Op)
}

// decodeContentValue turns the raw JSON value into the dynamic type the
// mutation layer validates per content key.
func (a Action) decodeContentValue() (any, error) {
	var value any
	if len(a.ContentValue) > 0 {
		if err := json.Unmarshal(a.ContentValue, &value); err != nil {
			return nil, models.NewConfigError(models.ErrInvalidContentValue, string(a.ContentKey), "malformed value")
		}
	}
	return value, nil
}
