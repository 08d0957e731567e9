// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// ConfigErrorCode classifies rejected mutations. All config errors are
// caller-input errors: the mutation is refused and the prior document is
// left untouched.
type ConfigErrorCode string

const (
	ErrUnknownSection      ConfigErrorCode = "unknown_section"
	ErrInvalidVariant      ConfigErrorCode = "invalid_variant"
	ErrInvalidStyleValue   ConfigErrorCode = "invalid_style_value"
	ErrIndexOutOfRange     ConfigErrorCode = "index_out_of_range"
	ErrInvalidContentValue ConfigErrorCode = "invalid_content_value"
	ErrInvalidPrice        ConfigErrorCode = "invalid_price"
)

// ConfigError is returned by the layout registry and the mutation layer when
// an input fails validation. Field names the offending input where useful.
type ConfigError struct {
	Code  ConfigErrorCode
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(code ConfigErrorCode, field, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Field: field, Msg: fmt.Sprintf(format, args...)}
}
