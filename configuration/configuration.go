// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeTag is the struct tag read by Configuration.Decode.
const DecodeTag = "attr"

// Configuration is a validated, immutable set of attribute values.
// Format it only through ToMap(true) or String, which redact secrets.
type Configuration struct {
	schema *Schema
	values map[string]any
}

// Schema returns the schema the configuration was built from.
func (c *Configuration) Schema() *Schema { return c.schema }

// Get returns the value of an attribute and whether it is set.
func (c *Configuration) Get(name string) (any, bool) {
	v, ok := c.values[name]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Has reports whether the attribute holds a value.
func (c *Configuration) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// GetString returns a string attribute, or "" when unset.
func (c *Configuration) GetString(name string) string {
	s, _ := c.values[name].(string)
	return s
}

// GetBool returns a bool attribute, or false when unset.
func (c *Configuration) GetBool(name string) bool {
	b, _ := c.values[name].(bool)
	return b
}

// GetInt returns an int attribute, or 0 when unset.
func (c *Configuration) GetInt(name string) int {
	n, _ := c.values[name].(int)
	return n
}

// GetStrings returns a copy of a list attribute, or nil when unset.
func (c *Configuration) GetStrings(name string) []string {
	l, _ := c.values[name].([]string)
	return slices.Clone(l)
}

// ToMap returns the set attribute values keyed by name. With redactSecrets,
// every secret value is replaced by RedactedPlaceholder. This is the only
// supported way to export or log a configuration.
func (c *Configuration) ToMap(redactSecrets bool) map[string]any {
	out := make(map[string]any, len(c.values))
	for _, a := range c.schema.attributes {
		v, ok := c.values[a.Name]
		if !ok {
			continue
		}
		if redactSecrets && a.Secret {
			out[a.Name] = redactSecretValue(v)
			continue
		}
		out[a.Name] = copyValue(v)
	}
	return out
}

// Decode copies the unredacted values into out, a pointer to a struct whose
// fields are tagged `attr:"<name>"`.
func (c *Configuration) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: DecodeTag,
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("configuration %s: %w", c.schema.name, err)
	}
	if err := dec.Decode(c.ToMap(false)); err != nil {
		return fmt.Errorf("configuration %s: %w", c.schema.name, err)
	}
	return nil
}

// String renders the redacted values in declaration order.
func (c *Configuration) String() string {
	redacted := c.ToMap(true)
	parts := make([]string, 0, len(redacted))
	for _, a := range c.schema.attributes {
		if v, ok := redacted[a.Name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%v", a.Name, v))
		}
	}
	return c.schema.name + "{" + strings.Join(parts, " ") + "}"
}

// GoString keeps %#v from dumping raw field storage.
func (c *Configuration) GoString() string { return c.String() }

func copyValue(v any) any {
	if l, ok := v.([]string); ok {
		return slices.Clone(l)
	}
	return v
}
