// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Schema is the ordered, immutable attribute set shared by every
// configuration of one kind. Build it once at package initialization.
type Schema struct {
	name       string
	attributes []Attribute
	index      map[string]int
}

// NewSchema assembles attributes into a schema, checking each descriptor.
func NewSchema(name string, attrs ...Attribute) (*Schema, error) {
	s := &Schema{
		name:  name,
		index: make(map[string]int, len(attrs)),
	}
	var errs []error
	for _, a := range attrs {
		if _, dup := s.index[a.Name]; dup {
			errs = append(errs, &InvalidAttributeError{Field: a.Name, Reason: "declared twice"})
			continue
		}
		if err := a.check(); err != nil {
			errs = append(errs, err)
			continue
		}
		s.index[a.Name] = len(s.attributes)
		s.attributes = append(s.attributes, a)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("schema %s: %w", name, errors.Join(errs...))
	}
	return s, nil
}

// MustSchema is NewSchema for package-level declarations; it panics on an invalid descriptor.
func MustSchema(name string, attrs ...Attribute) *Schema {
	s, err := NewSchema(name, attrs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend derives a schema holding the parent attributes followed by attrs.
// An attribute named like a parent one replaces it in place.
func (s *Schema) Extend(name string, attrs ...Attribute) (*Schema, error) {
	merged := slices.Clone(s.attributes)
	for _, a := range attrs {
		if i, ok := s.index[a.Name]; ok {
			merged[i] = a
			continue
		}
		merged = append(merged, a)
	}
	return NewSchema(name, merged...)
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Attributes returns the attributes in declaration order.
func (s *Schema) Attributes() []Attribute {
	out := slices.Clone(s.attributes)
	for i := range out {
		out[i].Choices = slices.Clone(out[i].Choices)
	}
	return out
}

// Attribute looks up an attribute by name.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	a := s.attributes[i]
	a.Choices = slices.Clone(a.Choices)
	return a, true
}

// SecretNames returns the names of secret attributes in declaration order.
func (s *Schema) SecretNames() []string {
	var names []string
	for _, a := range s.attributes {
		if a.Secret {
			names = append(names, a.Name)
		}
	}
	return names
}

// New builds a validated configuration from raw values. All failures are
// returned joined; no configuration is returned unless every check passes.
func (s *Schema) New(values map[string]any) (*Configuration, error) {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if _, ok := s.index[key]; !ok {
			errs = append(errs, &UnknownAttributeError{Name: key})
		}
	}

	resolved := make(map[string]any, len(s.attributes))
	for _, a := range s.attributes {
		raw := values[a.Name]
		if raw == nil {
			raw = a.Default
		}
		if raw == nil {
			if a.Required {
				errs = append(errs, &MissingRequiredAttributeError{Field: a.Name})
			}
			continue
		}
		v, err := a.resolve(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		resolved[a.Name] = v
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Configuration{schema: s, values: resolved}, nil
}
