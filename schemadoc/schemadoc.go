// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package schemadoc describes configuration documents as JSON Schema
// (draft 2020-12) for editors and documentation tooling.
package schemadoc

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
	"github.com/devops-wiz/ywh2bt/loader"
	"github.com/devops-wiz/ywh2bt/tracker"
	"github.com/devops-wiz/ywh2bt/yeswehack"
)

// ID is the identifier of the generated document schema.
const ID = "ywh2bt.schema.json"

// Document describes a whole configuration document. Tracker blocks accept
// any subtype registered in registry.
func Document(registry *tracker.Registry) (*jsonschema.Schema, error) {
	var trackers []*jsonschema.Schema
	for _, name := range registry.Names() {
		sub, err := registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, trackerBlock(name, sub.Schema))
	}

	props := jsonschema.NewProperties()
	props.Set(loader.SectionBugtrackers, &jsonschema.Schema{
		Type:                 "object",
		Description:          "Bug trackers receiving the reports, by name",
		AdditionalProperties: &jsonschema.Schema{OneOf: trackers},
	})
	props.Set(loader.SectionYesWeHack, &jsonschema.Schema{
		Type:                 "object",
		Description:          "YesWeHack platforms to synchronize, by name",
		AdditionalProperties: Block(yeswehack.Schema),
	})
	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(ID),
		Title:                "ywh2bt configuration",
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}, nil
}

// Marshal renders the document schema as indented JSON.
func Marshal(registry *tracker.Registry) ([]byte, error) {
	schema, err := Document(registry)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return out, nil
}

// Block describes a single configuration block of schema s.
func Block(s *cfg.Schema) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	var required []string
	for _, a := range s.Attributes() {
		props.Set(a.Name, property(a))
		if a.Required {
			required = append(required, a.Name)
		}
	}
	return &jsonschema.Schema{
		Title:                s.Name(),
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func trackerBlock(name string, s *cfg.Schema) *jsonschema.Schema {
	block := Block(s)
	block.Title = name
	props := jsonschema.NewProperties()
	props.Set(loader.KeyType, &jsonschema.Schema{Type: "string", Const: name})
	for pair := block.Properties.Oldest(); pair != nil; pair = pair.Next() {
		props.Set(pair.Key, pair.Value)
	}
	block.Properties = props
	block.Required = append([]string{loader.KeyType}, block.Required...)
	return block
}

func property(a cfg.Attribute) *jsonschema.Schema {
	p := &jsonschema.Schema{
		Title:       a.ShortDescription,
		Description: a.Description,
		Default:     a.Default,
		WriteOnly:   a.Secret,
	}
	switch a.Type {
	case cfg.TypeString:
		p.Type = "string"
	case cfg.TypeBool:
		p.Type = "boolean"
	case cfg.TypeInt:
		p.Type = "integer"
	case cfg.TypeList:
		p.Type = "array"
		p.Items = &jsonschema.Schema{Type: "string"}
	case cfg.TypeEnum:
		p.Type = "string"
		for _, c := range a.Choices {
			p.Enum = append(p.Enum, c)
		}
	}
	return p
}
