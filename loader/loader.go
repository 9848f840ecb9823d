// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"gopkg.in/yaml.v3"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
	"github.com/devops-wiz/ywh2bt/tracker"
	"github.com/devops-wiz/ywh2bt/yeswehack"
)

// Document sections and the key selecting a tracker type.
const (
	SectionBugtrackers = "bugtrackers"
	SectionYesWeHack   = "yeswehack"
	KeyType            = "type"
)

// Loader turns configuration documents into validated configurations.
type Loader struct {
	registry *tracker.Registry
}

// New returns a loader dispatching tracker blocks through registry.
// A nil registry means the built-in trackers.
func New(registry *tracker.Registry) *Loader {
	if registry == nil {
		registry = tracker.NewDefaultRegistry()
	}
	return &Loader{registry: registry}
}

// LoadFile reads and loads the document at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	ctx = tflog.SetField(ctx, "path", path)
	return l.Parse(ctx, data)
}

// Load reads a whole document from r.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	return l.Parse(ctx, data)
}

// Parse loads a YAML or JSON document.
func (l *Loader) Parse(ctx context.Context, data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return l.FromMap(ctx, raw)
}

// FromMap loads an already decoded document. Every block is validated and
// all failures are returned together; no partial document is returned.
func (l *Loader) FromMap(ctx context.Context, raw map[string]any) (*Document, error) {
	doc := newDocument()
	var errs []error

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if key != SectionBugtrackers && key != SectionYesWeHack {
			errs = append(errs, &cfg.UnknownAttributeError{Name: key})
		}
	}

	trackers, err := section(raw, SectionBugtrackers)
	if err != nil {
		errs = append(errs, err)
	}
	for _, name := range slices.Sorted(maps.Keys(trackers)) {
		typ, c, err := l.loadTracker(trackers[name])
		if err != nil {
			tflog.Warn(ctx, "tracker configuration rejected", map[string]interface{}{"tracker": name, "error": err.Error()})
			errs = append(errs, &BlockError{Section: SectionBugtrackers, Name: name, Err: err})
			continue
		}
		tflog.Debug(ctx, "tracker configuration loaded", map[string]interface{}{
			"tracker":       name,
			"type":          typ,
			"configuration": c.ToMap(true),
		})
		doc.trackers[name] = c
		doc.types[name] = typ
	}

	platforms, err := section(raw, SectionYesWeHack)
	if err != nil {
		errs = append(errs, err)
	}
	for _, name := range slices.Sorted(maps.Keys(platforms)) {
		c, err := loadPlatform(platforms[name])
		if err != nil {
			tflog.Warn(ctx, "yeswehack configuration rejected", map[string]interface{}{"yeswehack": name, "error": err.Error()})
			errs = append(errs, &BlockError{Section: SectionYesWeHack, Name: name, Err: err})
			continue
		}
		tflog.Debug(ctx, "yeswehack configuration loaded", map[string]interface{}{
			"yeswehack":     name,
			"configuration": c.ToMap(true),
		})
		for _, ref := range c.Bugtrackers() {
			// a tracker that failed validation is already reported
			if _, declared := trackers[ref]; !declared {
				errs = append(errs, &UnknownReferenceError{Section: SectionYesWeHack, Name: name, Reference: ref})
			}
		}
		doc.platforms[name] = c
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return doc, nil
}

func (l *Loader) loadTracker(block any) (string, tracker.Configuration, error) {
	values, err := asMapping(block)
	if err != nil {
		return "", nil, err
	}
	rawType, ok := values[KeyType]
	if !ok || rawType == nil {
		return "", nil, &cfg.MissingRequiredAttributeError{Field: KeyType}
	}
	typ, ok := rawType.(string)
	if !ok {
		return "", nil, &cfg.TypeMismatchError{Field: KeyType, Expected: cfg.TypeString, Actual: fmt.Sprintf("%T", rawType)}
	}
	fields := maps.Clone(values)
	delete(fields, KeyType)
	c, err := l.registry.New(typ, fields)
	if err != nil {
		return "", nil, err
	}
	return typ, c, nil
}

func loadPlatform(block any) (*yeswehack.Configuration, error) {
	values, err := asMapping(block)
	if err != nil {
		return nil, err
	}
	return yeswehack.New(values)
}

// section returns the named blocks of a document section.
func section(raw map[string]any, name string) (map[string]any, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return nil, nil
	}
	m, err := asMapping(v)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", name, err)
	}
	return m, nil
}

func asMapping(v any) (map[string]any, error) {
	switch m := v.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, &ShapeError{Expected: "mapping with string keys", Actual: fmt.Sprintf("key %v", k)}
			}
			out[s] = val
		}
		return out, nil
	case nil:
		return map[string]any{}, nil
	}
	return nil, &ShapeError{Expected: "mapping", Actual: fmt.Sprintf("%T", v)}
}
