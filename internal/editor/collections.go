// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// collections.go holds the index-based mutations over the ordered content
// collections (reviews, features, products). All three share the same
// contract: add appends, update applies a partial patch at an index, remove
// deletes and shifts the tail down. An out-of-range index is rejected.
package editor

import "shopforge/internal/models"

// ReviewPatch is a partial update of one review. Nil fields are unchanged.
type ReviewPatch struct {
	Author *string `json:"author,omitempty"`
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// FeaturePatch is a partial update of one feature. Nil fields are unchanged.
type FeaturePatch struct {
	Label       *string `json:"label,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProductPatch is a partial update of one product. Nil fields are unchanged;
// ClearOriginalPrice drops the pre-discount price entirely.
type ProductPatch struct {
	Name               *string `json:"name,omitempty"`
	PriceCents         *int64  `json:"priceCents,omitempty"`
	OriginalPriceCents *int64  `json:"originalPriceCents,omitempty"`
	ClearOriginalPrice bool    `json:"clearOriginalPrice,omitempty"`
}

// indexError builds the shared out-of-range error for a collection.
func indexError(field string, index, length int) *models.ConfigError {
	return models.NewConfigError(models.ErrIndexOutOfRange, field, "index %d out of range (len %d)", index, length)
}

// validRating reports whether a star rating is within 1..5.
func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// AddReview appends a review, preserving display order.
func AddReview(doc models.SiteConfig, r models.Review) (models.SiteConfig, error) {
	if !validRating(r.Rating) {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "reviews", "rating %d out of range 1-5", r.Rating)
	}
	out := doc.Clone()
	out.Content.Reviews = append(out.Content.Reviews, r)
	return out, nil
}

// UpdateReview applies a partial patch to the review at index.
func UpdateReview(doc models.SiteConfig, index int, patch ReviewPatch) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Reviews) {
		return models.SiteConfig{}, indexError("reviews", index, len(doc.Content.Reviews))
	}
	if patch.Rating != nil && !validRating(*patch.Rating) {
		return models.SiteConfig{}, models.NewConfigError(models.ErrInvalidContentValue, "reviews", "rating %d out of range 1-5", *patch.Rating)
	}
	out := doc.Clone()
	r := &out.Content.Reviews[index]
	if patch.Author != nil {
		r.Author = *patch.Author
	}
	if patch.Text != nil {
		r.Text = *patch.Text
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	return out, nil
}

// RemoveReview deletes the review at index; later entries shift down.
func RemoveReview(doc models.SiteConfig, index int) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Reviews) {
		return models.SiteConfig{}, indexError("reviews", index, len(doc.Content.Reviews))
	}
	out := doc.Clone()
	out.Content.Reviews = append(out.Content.Reviews[:index], out.Content.Reviews[index+1:]...)
	return out, nil
}

// AddFeature appends a feature, preserving display order.
func AddFeature(doc models.SiteConfig, f models.Feature) (models.SiteConfig, error) {
	out := doc.Clone()
	out.Content.Features = append(out.Content.Features, f)
	return out, nil
}

// UpdateFeature applies a partial patch to the feature at index.
func UpdateFeature(doc models.SiteConfig, index int, patch FeaturePatch) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Features) {
		return models.SiteConfig{}, indexError("features", index, len(doc.Content.Features))
	}
	out := doc.Clone()
	f := &out.Content.Features[index]
	if patch.Label != nil {
		f.Label = *patch.Label
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	return out, nil
}

// RemoveFeature deletes the feature at index; later entries shift down.
func RemoveFeature(doc models.SiteConfig, index int) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Features) {
		return models.SiteConfig{}, indexError("features", index, len(doc.Content.Features))
	}
	out := doc.Clone()
	out.Content.Features = append(out.Content.Features[:index], out.Content.Features[index+1:]...)
	return out, nil
}

// validPrices checks price non-negativity and the ordering constraint
// originalPrice >= price.
func validPrices(price int64, original *int64) *models.ConfigError {
	if price < 0 {
		return models.NewConfigError(models.ErrInvalidPrice, "products", "price %d is negative", price)
	}
	if original != nil {
		if *original < 0 {
			return models.NewConfigError(models.ErrInvalidPrice, "products", "original price %d is negative", *original)
		}
		if *original < price {
			return models.NewConfigError(models.ErrInvalidPrice, "products", "original price %d is below price %d", *original, price)
		}
	}
	return nil
}

// AddProduct appends a product, preserving display order. Prices must be
// non-negative and the original price, if given, must not undercut the
// current price.
func AddProduct(doc models.SiteConfig, p models.Product) (models.SiteConfig, error) {
	if err := validPrices(p.PriceCents, p.OriginalPriceCents); err != nil {
		return models.SiteConfig{}, err
	}
	out := doc.Clone()
	if p.OriginalPriceCents != nil {
		op := *p.OriginalPriceCents
		p.OriginalPriceCents = &op
	}
	out.Content.Products = append(out.Content.Products, p)
	return out, nil
}

// UpdateProduct applies a partial patch to the product at index and
// re-validates the price constraints on the patched result.
func UpdateProduct(doc models.SiteConfig, index int, patch ProductPatch) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Products) {
		return models.SiteConfig{}, indexError("products", index, len(doc.Content.Products))
	}
	out := doc.Clone()
	p := &out.Content.Products[index]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.PriceCents != nil {
		p.PriceCents = *patch.PriceCents
	}
	if patch.ClearOriginalPrice {
		p.OriginalPriceCents = nil
	} else if patch.OriginalPriceCents != nil {
		op := *patch.OriginalPriceCents
		p.OriginalPriceCents = &op
	}
	if err := validPrices(p.PriceCents, p.OriginalPriceCents); err != nil {
		return models.SiteConfig{}, err
	}
	return out, nil
}

// RemoveProduct deletes the product at index; later entries shift down.
func RemoveProduct(doc models.SiteConfig, index int) (models.SiteConfig, error) {
	if index < 0 || index >= len(doc.Content.Products) {
		return models.SiteConfig{}, indexError("products", index, len(doc.Content.Products))
	}
	out := doc.Clone()
	out.Content.Products = append(out.Content.Products[:index], out.Content.Products[index+1:]...)
	return out, nil
}
