// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleNotBlank = "not_blank"
	RuleURL      = "url"
)

// ValidatorFunc checks a raw value and returns its normalized form, or a
// *ValidationError. Validators must be pure.
type ValidatorFunc func(value any) (any, error)

// validate caches parsed tags and is safe for concurrent use.
var validate = validator.New()

// NotBlankValidator rejects strings that are empty once trimmed.
func NotBlankValidator(value any) (any, error) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, &ValidationError{Rule: RuleNotBlank, Value: value}
	}
	return s, nil
}

// URLValidator accepts absolute URLs with both a scheme and a host and
// returns their normalized string form.
func URLValidator(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, &ValidationError{Rule: RuleURL, Value: value}
	}
	s = strings.TrimSpace(s)
	if err := validate.Var(s, "required,url"); err != nil {
		return nil, &ValidationError{Rule: RuleURL, Value: value}
	}
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, &ValidationError{Rule: RuleURL, Value: value}
	}
	return u.String(), nil
}

// Chain combines validators into one, feeding each the value normalized by the previous.
func Chain(validators ...ValidatorFunc) ValidatorFunc {
	return func(value any) (any, error) {
		v := value
		for _, fn := range validators {
			out, err := fn(v)
			if err != nil {
				return nil, err
			}
			v = out
		}
		return v, nil
	}
}
