// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/devops-wiz/ywh2bt/configuration"
)

// Configuration is implemented by every tracker configuration.
type Configuration interface {
	Schema() *configuration.Schema
	Get(name string) (any, bool)
	ToMap(redactSecrets bool) map[string]any
}

// Factory builds a typed tracker configuration from raw document values.
type Factory func(values map[string]any) (Configuration, error)

// Subtype binds a tracker type name to its schema and factory.
type Subtype struct {
	Name   string
	Schema *configuration.Schema
	New    Factory
}

// UnknownSubtypeError reports a tracker type with no registered configuration.
type UnknownSubtypeError struct {
	Name string
}

func (e *UnknownSubtypeError) Error() string {
	return fmt.Sprintf("unknown tracker type %q", e.Name)
}

// DuplicateSubtypeError reports two different schemas claiming one type name.
type DuplicateSubtypeError struct {
	Name string
}

func (e *DuplicateSubtypeError) Error() string {
	return fmt.Sprintf("tracker type %q is already registered with a different configuration", e.Name)
}

// Registry maps tracker type names to configuration subtypes.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	subtypes map[string]Subtype
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{subtypes: make(map[string]Subtype)}
}

// Register binds name to schema. Registering the same schema again is a no-op;
// binding a different schema to a taken name fails with DuplicateSubtypeError.
func (r *Registry) Register(name string, schema *configuration.Schema, factory Factory) error {
	if name == "" || schema == nil || factory == nil {
		return fmt.Errorf("register tracker type %q: name, schema and factory are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.subtypes[name]; ok {
		if existing.Schema == schema {
			return nil
		}
		return &DuplicateSubtypeError{Name: name}
	}
	r.subtypes[name] = Subtype{Name: name, Schema: schema, New: factory}
	return nil
}

// Lookup returns the subtype registered under name.
func (r *Registry) Lookup(name string) (Subtype, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.subtypes[name]
	if !ok {
		return Subtype{}, &UnknownSubtypeError{Name: name}
	}
	return st, nil
}

// New builds the configuration of tracker type name from values.
func (r *Registry) New(name string, values map[string]any) (Configuration, error) {
	st, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return st.New(values)
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.subtypes))
}

// TypeOf returns the registered type name of c's schema. When one schema is
// registered under several names, the first name in sorted order wins.
func (r *Registry) TypeOf(c Configuration) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range slices.Sorted(maps.Keys(r.subtypes)) {
		if r.subtypes[name].Schema == c.Schema() {
			return name, true
		}
	}
	return "", false
}
