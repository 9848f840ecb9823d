// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package tfschema exposes configuration schemas as Terraform provider
// schemas so a provider can accept tracker blocks with the same checks.
package tfschema

import (
	"fmt"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

// Provider returns a provider schema declaring every attribute of s.
func Provider(s *cfg.Schema) schema.Schema {
	return schema.Schema{
		MarkdownDescription: fmt.Sprintf("Configuration of a `%s` block.", s.Name()),
		Attributes:          Attributes(s),
	}
}

// Attributes maps every attribute of s to a provider schema attribute.
// Provider schemas carry no defaults; they are documented instead.
func Attributes(s *cfg.Schema) map[string]schema.Attribute {
	out := make(map[string]schema.Attribute, len(s.Attributes()))
	for _, a := range s.Attributes() {
		out[a.Name] = attribute(a)
	}
	return out
}

func attribute(a cfg.Attribute) schema.Attribute {
	desc := markdownDescription(a)
	switch a.Type {
	case cfg.TypeBool:
		return schema.BoolAttribute{
			MarkdownDescription: desc,
			Required:            a.Required,
			Optional:            !a.Required,
			Sensitive:           a.Secret,
		}
	case cfg.TypeInt:
		attr := schema.Int64Attribute{
			MarkdownDescription: desc,
			Required:            a.Required,
			Optional:            !a.Required,
			Sensitive:           a.Secret,
		}
		if a.Validator != nil {
			attr.Validators = []validator.Int64{Int64Validator(a)}
		}
		return attr
	case cfg.TypeList:
		attr := schema.ListAttribute{
			MarkdownDescription: desc,
			ElementType:         types.StringType,
			Required:            a.Required,
			Optional:            !a.Required,
			Sensitive:           a.Secret,
		}
		if a.Validator != nil {
			attr.Validators = []validator.List{ListValidator(a)}
		}
		return attr
	}

	attr := schema.StringAttribute{
		MarkdownDescription: desc,
		Required:            a.Required,
		Optional:            !a.Required,
		Sensitive:           a.Secret,
	}
	if a.Type == cfg.TypeEnum {
		attr.Validators = append(attr.Validators, stringvalidator.OneOf(a.Choices...))
	}
	if a.Validator != nil {
		attr.Validators = append(attr.Validators, StringValidator(a))
	}
	return attr
}

func markdownDescription(a cfg.Attribute) string {
	desc := a.Description
	if desc == "" {
		desc = a.ShortDescription
	}
	if !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	if a.Type == cfg.TypeEnum {
		choices := make([]string, 0, len(a.Choices))
		for _, c := range a.Choices {
			choices = append(choices, "`"+c+"`")
		}
		desc += " Accepts values " + strings.Join(choices, ", ") + "."
	}
	if a.Default != nil && !a.Secret {
		desc += fmt.Sprintf(" Defaults to `%v`.", a.Default)
	}
	return desc
}
