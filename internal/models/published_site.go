// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PublishedSite is the persisted storefront record. Each owner has at most
// one record; its SiteConfig snapshot lives in the jsonb data column.
// URLSlug is non-nil iff the site has claimed a public address at some point;
// only records with IsPublished true are reachable through public lookup.
type PublishedSite struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Title       string     `json:"title"`
	Config      SiteConfig `json:"config"`
	IsPublished bool       `json:"is_published"`
	URLSlug     *string    `json:"url_slug,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Live returns true if the site is currently reachable under its public slug.
func (s *PublishedSite) Live() bool {
	return s.IsPublished && s.URLSlug != nil
}

// Slug returns the stored slug, or "" if none was ever claimed.
func (s *PublishedSite) Slug() string {
	if s.URLSlug == nil {
		return ""
	}
	return *s.URLSlug
}
