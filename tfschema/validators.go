// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tfschema

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

var (
	_ validator.String = attributeValidator{}
	_ validator.List   = attributeValidator{}
	_ validator.Int64  = attributeValidator{}
)

// attributeValidator runs an attribute's own checks on a known config value.
type attributeValidator struct {
	attr cfg.Attribute
}

// StringValidator adapts the checks of a to a provider string attribute.
func StringValidator(a cfg.Attribute) validator.String { return attributeValidator{attr: a} }

// ListValidator adapts the checks of a to a provider list attribute.
func ListValidator(a cfg.Attribute) validator.List { return attributeValidator{attr: a} }

// Int64Validator adapts the checks of a to a provider number attribute.
func Int64Validator(a cfg.Attribute) validator.Int64 { return attributeValidator{attr: a} }

func (v attributeValidator) Description(_ context.Context) string {
	return fmt.Sprintf("value must be a valid %s", v.attr.Name)
}

func (v attributeValidator) MarkdownDescription(ctx context.Context) string {
	return v.Description(ctx)
}

func (v attributeValidator) ValidateString(_ context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}
	v.check(req.Path, req.ConfigValue.ValueString(), &resp.Diagnostics)
}

func (v attributeValidator) ValidateList(ctx context.Context, req validator.ListRequest, resp *validator.ListResponse) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}
	var items []string
	resp.Diagnostics.Append(req.ConfigValue.ElementsAs(ctx, &items, false)...)
	if resp.Diagnostics.HasError() {
		return
	}
	v.check(req.Path, items, &resp.Diagnostics)
}

func (v attributeValidator) ValidateInt64(_ context.Context, req validator.Int64Request, resp *validator.Int64Response) {
	if req.ConfigValue.IsNull() || req.ConfigValue.IsUnknown() {
		return
	}
	v.check(req.Path, int(req.ConfigValue.ValueInt64()), &resp.Diagnostics)
}

func (v attributeValidator) check(p path.Path, value any, diags *diag.Diagnostics) {
	if _, err := v.attr.Validate(value); err != nil {
		// attribute errors never carry secret values
		title := v.attr.ShortDescription
		if title == "" {
			title = v.attr.Name
		}
		diags.AddAttributeError(p, "Invalid "+title, err.Error())
	}
}
