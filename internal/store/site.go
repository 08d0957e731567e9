// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access for storefront records. SiteStore
// wraps a *sql.DB and exposes typed query methods; the SiteConfig document
// travels as the jsonb data column.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"shopforge/internal/models"
)

// ErrSlugConflict is returned when a write trips the unique index on
// url_slug, i.e. another site claimed the slug first.
var ErrSlugConflict = errors.New("url slug already taken")

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits.
const pgUniqueViolation = "23505"

// SiteStore handles all site-related database operations.
type SiteStore struct {
	db *sql.DB
}

// NewSiteStore creates a new SiteStore with the given database connection.
func NewSiteStore(db *sql.DB) *SiteStore {
	return &SiteStore{db: db}
}

const siteColumns = `id, owner_id, title, data, is_published, url_slug, published_at, created_at, updated_at`

// scanSite reads one site row, decoding the jsonb config document.
func scanSite(row interface{ Scan(...any) error }) (*models.PublishedSite, error) {
	s := &models.PublishedSite{}
	var data []byte
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &data, &s.IsPublished,
		&s.URLSlug, &s.PublishedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.Config); err != nil {
		return nil, fmt.Errorf("decode site config: %w", err)
	}
	return s, nil
}

// FindByOwner retrieves the owner's site record regardless of publish state.
// Returns nil if the owner has no site yet.
func (s *SiteStore) FindByOwner(ownerID uuid.UUID) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		SELECT `+siteColumns+` FROM sites WHERE owner_id = $1
	`, ownerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by owner: %w", err)
	}
	return site, nil
}

// FindByID retrieves a site by its UUID. Returns nil if not found.
func (s *SiteStore) FindByID(id uuid.UUID) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		SELECT `+siteColumns+` FROM sites WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by id: %w", err)
	}
	return site, nil
}

// FindBySlug retrieves a live site by its public slug. Unpublished records
// that still hold the slug are treated as not found so draft content never
// leaks through a guessed address.
func (s *SiteStore) FindBySlug(slug string) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		SELECT `+siteColumns+` FROM sites
		WHERE url_slug = $1 AND is_published = TRUE
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by slug: %w", err)
	}
	return site, nil
}

// FindBySlugExcluding retrieves any record holding the slug — published or
// not — other than the given site. Used for the pre-claim uniqueness check.
func (s *SiteStore) FindBySlugExcluding(slug string, excludeID uuid.UUID) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		SELECT `+siteColumns+` FROM sites
		WHERE url_slug = $1 AND id != $2
	`, slug, excludeID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by slug excluding: %w", err)
	}
	return site, nil
}

// Insert creates the owner's site record and returns it with generated
// fields filled in.
func (s *SiteStore) Insert(ownerID uuid.UUID, title string, cfg models.SiteConfig) (*models.PublishedSite, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode site config: %w", err)
	}
	site, err := scanSite(s.db.QueryRow(`
		INSERT INTO sites (owner_id, title, data)
		VALUES ($1, $2, $3)
		RETURNING `+siteColumns+`
	`, ownerID, title, data))
	if err != nil {
		return nil, fmt.Errorf("insert site: %w", err)
	}
	return site, nil
}

// UpdateConfig overwrites the config document and title of an existing
// record, bumping updated_at. Publish state and slug are untouched.
func (s *SiteStore) UpdateConfig(id uuid.UUID, title string, cfg models.SiteConfig) (*models.PublishedSite, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode site config: %w", err)
	}
	site, err := scanSite(s.db.QueryRow(`
		UPDATE sites SET title = $1, data = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+siteColumns+`
	`, title, data, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update site config: %w", err)
	}
	return site, nil
}

// SetPublished claims the slug for the site and marks it live. The partial
// unique index on url_slug is the last line of defense against two
// publishers racing for the same slug; a violation maps to ErrSlugConflict.
func (s *SiteStore) SetPublished(id uuid.UUID, slug string, publishedAt time.Time) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		UPDATE sites SET is_published = TRUE, url_slug = $1, published_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+siteColumns+`
	`, slug, publishedAt, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrSlugConflict
		}
		return nil, fmt.Errorf("set site published: %w", err)
	}
	return site, nil
}

// SetUnpublished takes the site offline. The slug is retained so a
// re-publish can reuse it; public lookups filter on is_published.
func (s *SiteStore) SetUnpublished(id uuid.UUID) (*models.PublishedSite, error) {
	site, err := scanSite(s.db.QueryRow(`
		UPDATE sites SET is_published = FALSE, updated_at = NOW()
		WHERE id = $1
		RETURNING `+siteColumns+`
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set site unpublished: %w", err)
	}
	return site, nil
}
