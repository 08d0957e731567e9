// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// ownerKey is the context key for the authenticated owner id.
	ownerKey contextKey = "owner"

	// OwnerHeader carries the verified owner id set by the upstream gateway.
	OwnerHeader = "X-Owner-ID"
)

// RequireOwner extracts the owner identity from the X-Owner-ID header and
// stores it in the request context. Authentication itself happens upstream;
// the gateway strips any client-supplied value and sets the header from the
// verified session. A missing or malformed id is rejected with 401.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(OwnerHeader)
		if raw == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ownerID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ownerKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerFromCtx returns the owner id stored by RequireOwner. The second
// return is false when the middleware did not run on this request.
func OwnerFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerKey).(uuid.UUID)
	return id, ok
}
