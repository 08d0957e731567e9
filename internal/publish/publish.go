// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publish orchestrates storefront persistence: the save upsert,
// claiming and releasing public slugs, and lookups for the editor and the
// public renderer. It is the only component that touches shared state; the
// document and scoring layers stay pure.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopforge/internal/cache"
	"shopforge/internal/models"
	"shopforge/internal/slug"
	"shopforge/internal/store"
)

// ErrorCode classifies publishing failures.
type ErrorCode string

const (
	// CodeSlugTaken means another site already holds the requested slug.
	// User-facing: "choose another address".
	CodeSlugTaken ErrorCode = "slug_taken"
	// CodeInvalidSlug means the requested slug is malformed or reserved.
	CodeInvalidSlug ErrorCode = "invalid_slug"
	// CodeNotFound means the site id does not exist.
	CodeNotFound ErrorCode = "not_found"
	// CodeStoreUnavailable wraps a failure from the persistent store;
	// callers may retry.
	CodeStoreUnavailable ErrorCode = "store_unavailable"
)

// Error is the workflow's failure type.
type Error struct {
	Code ErrorCode
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

// storeErr wraps a store failure as a retryable error.
func storeErr(msg string, err error) *Error {
	return &Error{Code: CodeStoreUnavailable, Msg: msg, err: err}
}

// Store is the persistence collaborator the workflow drives. *store.SiteStore
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	FindByOwner(ownerID uuid.UUID) (*models.PublishedSite, error)
	FindByID(id uuid.UUID) (*models.PublishedSite, error)
	FindBySlug(slug string) (*models.PublishedSite, error)
	FindBySlugExcluding(slug string, excludeID uuid.UUID) (*models.PublishedSite, error)
	Insert(ownerID uuid.UUID, title string, cfg models.SiteConfig) (*models.PublishedSite, error)
	UpdateConfig(id uuid.UUID, title string, cfg models.SiteConfig) (*models.PublishedSite, error)
	SetPublished(id uuid.UUID, slug string, publishedAt time.Time) (*models.PublishedSite, error)
	SetUnpublished(id uuid.UUID) (*models.PublishedSite, error)
}

// Service runs the publishing workflow over a Store, invalidating the public
// payload cache whenever a live site changes.
type Service struct {
	store Store
	cache *cache.SiteCache // may be nil when Valkey is not configured
}

// NewService creates a publishing workflow service. cache may be nil.
func NewService(st Store, sc *cache.SiteCache) *Service {
	return &Service{store: st, cache: sc}
}

// Save is the single idempotent upsert entry point: it creates the owner's
// record on first call and updates config/title in place afterwards,
// preserving publish state and slug. Callers never choose create vs update.
func (s *Service) Save(ctx context.Context, ownerID uuid.UUID, title string, cfg models.SiteConfig) (*models.PublishedSite, error) {
	existing, err := s.store.FindByOwner(ownerID)
	if err != nil {
		return nil, storeErr("look up site by owner", err)
	}

	if existing == nil {
		site, err := s.store.Insert(ownerID, title, cfg)
		if err != nil {
			return nil, storeErr("create site", err)
		}
		slog.Info("site created", "site_id", site.ID, "owner_id", ownerID)
		return site, nil
	}

	site, err := s.store.UpdateConfig(existing.ID, title, cfg)
	if err != nil {
		return nil, storeErr("update site", err)
	}
	if site == nil {
		// The record vanished between lookup and update (deletion is an
		// external concern); recreate it so save stays an upsert.
		site, err = s.store.Insert(ownerID, title, cfg)
		if err != nil {
			return nil, storeErr("recreate site", err)
		}
		slog.Info("site recreated", "site_id", site.ID, "owner_id", ownerID)
		return site, nil
	}

	// A live site's public payload just changed under its slug.
	if site.Live() {
		s.invalidate(ctx, site.Slug())
	}
	return site, nil
}

// Publish claims slug for the site and takes it live. The slug is normalized
// before the claim. Another record already holding the slug — or winning the
// race to the unique index — fails with CodeSlugTaken and writes nothing.
func (s *Service) Publish(ctx context.Context, siteID uuid.UUID, rawSlug string) (*models.PublishedSite, error) {
	cleaned := slug.Generate(strings.TrimSpace(rawSlug))
	if !slug.Valid(cleaned) {
		return nil, &Error{Code: CodeInvalidSlug, Msg: fmt.Sprintf("%q is not a usable address", rawSlug)}
	}

	site, err := s.store.FindByID(siteID)
	if err != nil {
		return nil, storeErr("look up site", err)
	}
	if site == nil {
		return nil, &Error{Code: CodeNotFound, Msg: "no such site"}
	}

	holder, err := s.store.FindBySlugExcluding(cleaned, siteID)
	if err != nil {
		return nil, storeErr("check slug availability", err)
	}
	if holder != nil {
		return nil, &Error{Code: CodeSlugTaken, Msg: fmt.Sprintf("address %q is already taken", cleaned)}
	}

	oldSlug := site.Slug()

	published, err := s.store.SetPublished(siteID, cleaned, time.Now())
	if err != nil {
		// The unique index catches publishers that raced past the
		// pre-check; first writer wins, this caller picks a new slug.
		if errors.Is(err, store.ErrSlugConflict) {
			return nil, &Error{Code: CodeSlugTaken, Msg: fmt.Sprintf("address %q is already taken", cleaned)}
		}
		return nil, storeErr("publish site", err)
	}
	if published == nil {
		return nil, &Error{Code: CodeNotFound, Msg: "no such site"}
	}

	s.invalidate(ctx, cleaned)
	if oldSlug != "" && oldSlug != cleaned {
		s.invalidate(ctx, oldSlug)
	}

	slog.Info("site published", "site_id", siteID, "slug", cleaned)
	return published, nil
}

// Unpublish takes the site offline. The stored slug is retained so a
// re-publish can reuse it, but public lookups stop resolving immediately.
func (s *Service) Unpublish(ctx context.Context, siteID uuid.UUID) (*models.PublishedSite, error) {
	site, err := s.store.FindByID(siteID)
	if err != nil {
		return nil, storeErr("look up site", err)
	}
	if site == nil {
		return nil, &Error{Code: CodeNotFound, Msg: "no such site"}
	}

	unpublished, err := s.store.SetUnpublished(siteID)
	if err != nil {
		return nil, storeErr("unpublish site", err)
	}
	if unpublished == nil {
		return nil, &Error{Code: CodeNotFound, Msg: "no such site"}
	}

	if old := site.Slug(); old != "" {
		s.invalidate(ctx, old)
	}

	slog.Info("site unpublished", "site_id", siteID)
	return unpublished, nil
}

// GetByOwner returns the owner's record regardless of publish state, for
// editor reload. Returns nil if the owner has no site.
func (s *Service) GetByOwner(ownerID uuid.UUID) (*models.PublishedSite, error) {
	site, err := s.store.FindByOwner(ownerID)
	if err != nil {
		return nil, storeErr("look up site by owner", err)
	}
	return site, nil
}

// GetBySlug returns the record only if it is currently published. An
// unpublished record still holding the slug is indistinguishable from
// "not found".
func (s *Service) GetBySlug(slugName string) (*models.PublishedSite, error) {
	site, err := s.store.FindBySlug(slugName)
	if err != nil {
		return nil, storeErr("look up site by slug", err)
	}
	return site, nil
}

func (s *Service) invalidate(ctx context.Context, slugName string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, slugName)
	}
}
