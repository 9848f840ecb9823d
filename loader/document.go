// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/devops-wiz/ywh2bt/tracker"
	"github.com/devops-wiz/ywh2bt/yeswehack"
)

// Document is a fully validated configuration document.
type Document struct {
	trackers  map[string]tracker.Configuration
	types     map[string]string
	platforms map[string]*yeswehack.Configuration
}

func newDocument() *Document {
	return &Document{
		trackers:  map[string]tracker.Configuration{},
		types:     map[string]string{},
		platforms: map[string]*yeswehack.Configuration{},
	}
}

// TrackerNames returns the tracker block names, sorted.
func (d *Document) TrackerNames() []string {
	return slices.Sorted(maps.Keys(d.trackers))
}

// Tracker returns the tracker configuration named name.
func (d *Document) Tracker(name string) (tracker.Configuration, bool) {
	c, ok := d.trackers[name]
	return c, ok
}

// TrackerType returns the type name the tracker block was declared with.
func (d *Document) TrackerType(name string) string {
	return d.types[name]
}

// PlatformNames returns the yeswehack block names, sorted.
func (d *Document) PlatformNames() []string {
	return slices.Sorted(maps.Keys(d.platforms))
}

// Platform returns the yeswehack configuration named name.
func (d *Document) Platform(name string) (*yeswehack.Configuration, bool) {
	c, ok := d.platforms[name]
	return c, ok
}

// PlatformTrackers returns the tracker configurations a yeswehack block synchronizes into.
func (d *Document) PlatformTrackers(name string) []tracker.Configuration {
	p, ok := d.platforms[name]
	if !ok {
		return nil
	}
	var out []tracker.Configuration
	for _, ref := range p.Bugtrackers() {
		if c, ok := d.trackers[ref]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ToMap exports the document in its on-disk shape. Secrets are replaced by
// the redaction placeholder when redactSecrets is set.
func (d *Document) ToMap(redactSecrets bool) map[string]any {
	out := map[string]any{}
	if len(d.trackers) > 0 {
		blocks := make(map[string]any, len(d.trackers))
		for name, c := range d.trackers {
			m := c.ToMap(redactSecrets)
			m[KeyType] = d.types[name]
			blocks[name] = m
		}
		out[SectionBugtrackers] = blocks
	}
	if len(d.platforms) > 0 {
		blocks := make(map[string]any, len(d.platforms))
		for name, c := range d.platforms {
			blocks[name] = c.ToMap(redactSecrets)
		}
		out[SectionYesWeHack] = blocks
	}
	return out
}

// Dump renders the document as YAML.
func Dump(d *Document, redactSecrets bool) ([]byte, error) {
	out, err := yaml.Marshal(d.ToMap(redactSecrets))
	if err != nil {
		return nil, fmt.Errorf("dump configuration: %w", err)
	}
	return out, nil
}
