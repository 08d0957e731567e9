// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"shopforge/internal/layouts"
	"shopforge/internal/middleware"
	"shopforge/internal/models"
	"shopforge/internal/publish"
	"shopforge/internal/storage"
)

// defaultTitle names a storefront the owner has not titled yet.
const defaultTitle = "My Shop"

// Editor groups the authenticated JSON API for the storefront editor.
// Requests carry the owner id in their context via middleware.RequireOwner.
type Editor struct {
	service *publish.Service
	storage *storage.Client // may be nil when S3 is not configured
}

// NewEditor creates the editor handler group. storageClient may be nil.
func NewEditor(service *publish.Service, storageClient *storage.Client) *Editor {
	return &Editor{service: service, storage: storageClient}
}

// GetSite returns the owner's record for editor reload. Owners without a
// record get a nil site plus the coaching report of a default document, so
// the editor can render the guided flow from scratch.
func (e *Editor) GetSite(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope(site))
}

// saveRequest is the body of PUT /api/site.
type saveRequest struct {
	Title  string            `json:"title"`
	Config models.SiteConfig `json:"config"`
}

// SaveSite upserts the owner's record with a full config document. The
// document is validated as a whole — free-edit clients write whole configs,
// so the layout, style, and price invariants are re-checked here rather than
// trusted from the wire.
func (e *Editor) SaveSite(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	if msg := validateTitle(req.Title); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: msg, Field: "title"})
		return
	}
	if req.Title == "" {
		req.Title = defaultTitle
	}
	if err := validateConfig(req.Config); err != nil {
		writeError(w, err)
		return
	}

	site, err := e.service.Save(r.Context(), ownerID, req.Title, req.Config)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope(site))
}

// ApplyAction decodes one mutation action, applies it to the owner's current
// document through the mutation layer, persists the result, and returns the
// new record with a fresh coaching report. Owners without a record start
// from the default document.
func (e *Editor) ApplyAction(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var action Action
	if err := decodeBody(r, &action); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	title := defaultTitle
	cfg := models.DefaultSiteConfig()
	if site != nil {
		title = site.Title
		cfg = site.Config
	}

	next, err := action.Apply(cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	saved, err := e.service.Save(r.Context(), ownerID, title, next)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope(saved))
}

// Coach returns the coaching report for the owner's current document.
func (e *Editor) Coach(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope(site).Coach)
}

// Layouts returns the full registry catalog for the editor's layout pickers.
func (e *Editor) Layouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sections": layouts.Sections(),
		"variants": layouts.Catalog(),
	})
}

// publishRequest is the body of POST /api/site/publish.
type publishRequest struct {
	Slug string `json:"slug"`
}

// Publish claims a public slug for the owner's site and takes it live.
func (e *Editor) Publish(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req publishRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if site == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "save your site before publishing", Code: string(publish.CodeNotFound)})
		return
	}

	published, err := e.service.Publish(r.Context(), site.ID, req.Slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope(published))
}

// Unpublish takes the owner's site offline. The slug is retained for a
// later re-publish.
func (e *Editor) Unpublish(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if site == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no site to unpublish", Code: string(publish.CodeNotFound)})
		return
	}

	unpublished, err := e.service.Unpublish(r.Context(), site.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope(unpublished))
}
