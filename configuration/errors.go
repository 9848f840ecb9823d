// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import "fmt"

// MissingRequiredAttributeError reports a required attribute that has neither a value nor a default.
type MissingRequiredAttributeError struct {
	Field string
}

func (e *MissingRequiredAttributeError) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Field)
}

// TypeMismatchError reports a value whose shape disagrees with the declared attribute type.
type TypeMismatchError struct {
	Field    string
	Expected ValueType
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// ValidationError reports a value rejected by a validator.
// Validators leave Field empty; the owning schema fills it in.
type ValidationError struct {
	Field string
	Rule  string
	Value any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("value %q violates rule %s", fmt.Sprint(e.Value), e.Rule)
	}
	return fmt.Sprintf("attribute %q: value %q violates rule %s", e.Field, fmt.Sprint(e.Value), e.Rule)
}

// UnknownAttributeError reports a document key that matches no declared attribute.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Name)
}

// InvalidAttributeError reports a descriptor that breaks its own invariants
// (for example a required attribute declaring a default).
type InvalidAttributeError struct {
	Field  string
	Reason string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("invalid attribute declaration %q: %s", e.Field, e.Reason)
}
