// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		accessKey string
		secretKey string
	}{
		{name: "no endpoint", endpoint: "", accessKey: "k", secretKey: "s"},
		{name: "no access key", endpoint: "https://s3.example.com", accessKey: "", secretKey: "s"},
		{name: "no secret key", endpoint: "https://s3.example.com", accessKey: "k", secretKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint, "us-east-1", tt.accessKey, tt.secretKey, "bucket", "")
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if c != nil {
				t.Error("expected nil client when storage is unconfigured")
			}
		})
	}
}

func TestAllowedImageType(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png", "image/webp"}
	for _, ct := range allowed {
		if !AllowedImageType(ct) {
			t.Errorf("AllowedImageType(%q) = false, want true", ct)
		}
	}

	denied := []string{"image/gif", "image/svg+xml", "text/html", "application/pdf", ""}
	for _, ct := range denied {
		if AllowedImageType(ct) {
			t.Errorf("AllowedImageType(%q) = true, want false", ct)
		}
	}
}

func TestFileURL(t *testing.T) {
	withCDN, err := New("https://s3.example.com/", "us-east-1", "k", "s", "shopforge-public", "https://cdn.example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := withCDN.FileURL("hero/abc/def.webp"); got != "https://cdn.example.com/hero/abc/def.webp" {
		t.Errorf("cdn url: %q", got)
	}

	pathStyle, err := New("https://s3.example.com", "us-east-1", "k", "s", "shopforge-public", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := pathStyle.FileURL("hero/abc/def.webp"); got != "https://s3.example.com/shopforge-public/hero/abc/def.webp" {
		t.Errorf("path-style url: %q", got)
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.example.com", "us-east-1", "k", "s", "shopforge-public", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name   string
		url    string
		key    string
		wantOK bool
	}{
		{name: "cdn url", url: "https://cdn.example.com/hero/a/b.webp", key: "hero/a/b.webp", wantOK: true},
		{name: "path-style url", url: "https://s3.example.com/shopforge-public/hero/a/b.webp", key: "hero/a/b.webp", wantOK: true},
		{name: "foreign url", url: "https://elsewhere.example.com/hero/a/b.webp", wantOK: false},
		{name: "other bucket", url: "https://s3.example.com/other-bucket/hero/a/b.webp", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && key != tt.key {
				t.Errorf("key: got %q, want %q", key, tt.key)
			}
		})
	}
}
