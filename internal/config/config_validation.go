// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Tag rules are checked by go-playground/validator; rules spanning
// several fields are checked by hand.
//
// An unknown RunningOn value is not an error: it falls back to the local
// backend at resolution time.
func (cfg *StructuredConfig) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, validationErrs)
		}
		return fmt.Errorf("error validating config: %w", err)
	}

	if cfg.Backend.RunningOn == RunningOnCloud && cfg.Backend.URLCloud == "" {
		return ErrMissingCloudBackendURL
	}

	return nil
}
