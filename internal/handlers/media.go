// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"shopforge/internal/editor"
	"shopforge/internal/middleware"
	"shopforge/internal/models"
	"shopforge/internal/storage"
)

// maxHeroImageBytes caps hero image uploads at 5 MB.
const maxHeroImageBytes = 5 << 20

// HeroImage accepts a multipart hero image upload, stores it in object
// storage, and writes the resulting public URL into the owner's document.
// Returns 503 when object storage is not configured.
func (e *Editor) HeroImage(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromCtx(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if e.storage == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "image uploads are not configured"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxHeroImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing or oversized image upload", Field: "image"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !storage.AllowedImageType(contentType) {
		writeJSON(w, http.StatusUnsupportedMediaType, errorBody{Error: "unsupported image type", Field: "image"})
		return
	}

	site, err := e.service.GetByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	title := defaultTitle
	cfg := models.DefaultSiteConfig()
	// The object key is grouped per site; before first save the owner id
	// stands in since no site id exists yet.
	keyID := ownerID
	if site != nil {
		title = site.Title
		cfg = site.Config
		keyID = site.ID
	}

	oldURL := cfg.Content.HeroImage

	url, err := e.storage.UploadHeroImage(r.Context(), keyID, contentType, file, header.Size)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "image upload failed"})
		return
	}

	next, err := editor.SetContent(cfg, editor.ContentHeroImage, url)
	if err != nil {
		writeError(w, err)
		return
	}

	saved, err := e.service.Save(r.Context(), ownerID, title, next)
	if err != nil {
		writeError(w, err)
		return
	}

	// The replaced image is orphaned once the new URL is persisted. Removal
	// is best effort; a leaked object only costs bucket space.
	if oldURL != "" && oldURL != url {
		if key, ok := e.storage.ExtractKey(oldURL); ok {
			if err := e.storage.Delete(r.Context(), key); err != nil {
				slog.Warn("delete replaced hero image failed", "key", key, "error", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, struct {
		siteEnvelope
		URL string `json:"url"`
	}{envelope(saved), url})
}
