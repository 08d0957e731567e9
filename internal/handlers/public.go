// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopforge/internal/cache"
	"shopforge/internal/markdown"
	"shopforge/internal/models"
	"shopforge/internal/publish"
)

// Public serves published storefronts by slug. It checks the Valkey payload
// cache before hitting the store, and fills it on miss. The payload carries
// the config plus pre-rendered HTML for the markdown-capable copy fields, so
// the renderer consuming it does no text processing of its own.
type Public struct {
	service   *publish.Service
	siteCache *cache.SiteCache // may be nil when Valkey is not configured
}

// NewPublic creates the public handler group. siteCache may be nil.
func NewPublic(service *publish.Service, siteCache *cache.SiteCache) *Public {
	return &Public{service: service, siteCache: siteCache}
}

// publicFeature is one feature entry with its description rendered to HTML.
type publicFeature struct {
	Label           string `json:"label"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"descriptionHtml"`
}

// publicPayload is the wire shape of a published storefront.
type publicPayload struct {
	Title              string            `json:"title"`
	Slug               string            `json:"slug"`
	PublishedAt        *time.Time        `json:"published_at,omitempty"`
	Styles             models.Styles     `json:"styles"`
	Layouts            map[string]string `json:"layouts"`
	Content            models.Content    `json:"content"`
	HeroSubheadingHTML string            `json:"heroSubheadingHtml"`
	Features           []publicFeature   `json:"features"`
}

// Site serves a published storefront payload by its public slug. Unpublished
// or unknown slugs are both 404 — a draft must never leak through a guessed
// or previously-used address.
func (p *Public) Site(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if p.siteCache != nil {
		if cached, ok := p.siteCache.Get(ctx, slugParam); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	site, err := p.service.GetBySlug(slugParam)
	if err != nil {
		slog.Error("find site by slug failed", "error", err, "slug", slugParam)
		writeError(w, err)
		return
	}
	if site == nil {
		http.NotFound(w, r)
		return
	}

	payload := buildPublicPayload(site)
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("encode public payload failed", "error", err, "slug", slugParam)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	if p.siteCache != nil {
		p.siteCache.Set(ctx, slugParam, body)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// buildPublicPayload renders the markdown-capable fields and assembles the
// public wire shape from a live record.
func buildPublicPayload(site *models.PublishedSite) publicPayload {
	payload := publicPayload{
		Title:       site.Title,
		Slug:        site.Slug(),
		PublishedAt: site.PublishedAt,
		Styles:      site.Config.Styles,
		Layouts:     site.Config.Layouts,
		Content:     site.Config.Content,
		Features:    make([]publicFeature, 0, len(site.Config.Content.Features)),
	}

	if html, err := markdown.ToHTML(site.Config.Content.HeroSubheading); err == nil {
		payload.HeroSubheadingHTML = html
	} else {
		slog.Warn("render subheading failed", "error", err)
	}

	for _, f := range site.Config.Content.Features {
		pf := publicFeature{Label: f.Label, Description: f.Description}
		if html, err := markdown.ToHTML(f.Description); err == nil {
			pf.DescriptionHTML = html
		}
		payload.Features = append(payload.Features, pf)
	}

	return payload
}
