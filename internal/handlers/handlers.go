// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes the site configuration and publishing engine over
// a thin JSON API: the authenticated editor surface and the public
// storefront lookup. All document logic lives in the editor, coach, and
// publish packages; handlers decode, dispatch, and encode.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shopforge/internal/coach"
	"shopforge/internal/models"
	"shopforge/internal/publish"
)

// siteEnvelope is the response body of every editor endpoint: the persisted
// record (nil until first save) and a fresh coaching report for the config
// the caller now sees.
type siteEnvelope struct {
	Site  *models.PublishedSite `json:"site"`
	Coach coach.Report          `json:"coach"`
}

// envelope builds a siteEnvelope, scoring the default document when the
// owner has no record yet.
func envelope(site *models.PublishedSite) siteEnvelope {
	cfg := models.DefaultSiteConfig()
	if site != nil {
		cfg = site.Config
	}
	return siteEnvelope{Site: site, Coach: coach.Score(cfg)}
}

// errorBody is the uniform JSON error shape.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError maps engine errors onto HTTP statuses: config errors are the
// caller's input (422), slug conflicts are 409, missing sites 404, and store
// failures 503 (retryable).
func writeError(w http.ResponseWriter, err error) {
	var cfgErr *models.ConfigError
	if errors.As(err, &cfgErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{
			Error: cfgErr.Msg, Code: string(cfgErr.Code), Field: cfgErr.Field,
		})
		return
	}

	var pubErr *publish.Error
	if errors.As(err, &pubErr) {
		status := http.StatusInternalServerError
		switch pubErr.Code {
		case publish.CodeSlugTaken:
			status = http.StatusConflict
		case publish.CodeInvalidSlug:
			status = http.StatusUnprocessableEntity
		case publish.CodeNotFound:
			status = http.StatusNotFound
		case publish.CodeStoreUnavailable:
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorBody{Error: pubErr.Msg, Code: string(pubErr.Code)})
		return
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

// decodeBody parses a JSON request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
