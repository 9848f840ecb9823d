// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ValueType constrains the runtime shape accepted by an attribute.
type ValueType int

const (
	TypeString ValueType = iota
	TypeBool
	TypeInt
	TypeList
	TypeEnum
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeList:
		return "list of strings"
	case TypeEnum:
		return "enum"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Attribute describes a single configuration field.
type Attribute struct {
	Name             string
	Type             ValueType
	Required         bool
	Default          any
	Secret           bool
	ShortDescription string
	Description      string
	Validator        ValidatorFunc
	// Choices lists the accepted values of an enum attribute.
	Choices []string
}

// AttributeOption customizes an Attribute built by NewAttribute.
type AttributeOption func(*Attribute)

// Required marks the attribute as mandatory.
func Required() AttributeOption {
	return func(a *Attribute) { a.Required = true }
}

// WithDefault sets the value used when a document omits the attribute.
func WithDefault(v any) AttributeOption {
	return func(a *Attribute) { a.Default = v }
}

// Secret marks the attribute for redaction in exports and logs.
func Secret() AttributeOption {
	return func(a *Attribute) { a.Secret = true }
}

// WithValidator attaches a validator run on every non-null value.
func WithValidator(fn ValidatorFunc) AttributeOption {
	return func(a *Attribute) { a.Validator = fn }
}

// WithChoices sets the accepted values of an enum attribute.
func WithChoices(values ...string) AttributeOption {
	return func(a *Attribute) { a.Choices = slices.Clone(values) }
}

// NewAttribute creates an attribute descriptor. Invariants are checked when
// the attribute is assembled into a Schema.
func NewAttribute(name string, valueType ValueType, shortDescription, description string, opts ...AttributeOption) Attribute {
	a := Attribute{
		Name:             name,
		Type:             valueType,
		ShortDescription: shortDescription,
		Description:      description,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// check verifies the descriptor invariants, including that a default
// satisfies both the type and the validator.
func (a Attribute) check() error {
	if a.Name == "" {
		return &InvalidAttributeError{Field: a.Name, Reason: "name must not be empty"}
	}
	if a.Type < TypeString || a.Type > TypeEnum {
		return &InvalidAttributeError{Field: a.Name, Reason: fmt.Sprintf("unsupported value type %s", a.Type)}
	}
	if a.Type == TypeEnum && len(a.Choices) == 0 {
		return &InvalidAttributeError{Field: a.Name, Reason: "enum attribute declares no choices"}
	}
	if a.Default == nil {
		return nil
	}
	if a.Required {
		return &InvalidAttributeError{Field: a.Name, Reason: "required attribute must not declare a default"}
	}
	if _, err := a.resolve(a.Default); err != nil {
		return &InvalidAttributeError{Field: a.Name, Reason: fmt.Sprintf("default is invalid: %v", err)}
	}
	return nil
}

// Validate checks a single value against the attribute and returns its
// normalized form. Errors never carry a secret value.
func (a Attribute) Validate(value any) (any, error) {
	if value == nil {
		if a.Required {
			return nil, &MissingRequiredAttributeError{Field: a.Name}
		}
		return nil, nil
	}
	return a.resolve(value)
}

// resolve runs the type check then the validator on a non-null value.
func (a Attribute) resolve(raw any) (any, error) {
	v, err := a.normalize(raw)
	if err != nil {
		return nil, err
	}
	if a.Validator == nil {
		return v, nil
	}
	out, err := a.Validator(v)
	if err != nil {
		return nil, a.tagValidationError(err)
	}
	return out, nil
}

func (a Attribute) tagValidationError(err error) error {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Field: a.Name, Rule: err.Error(), Value: a.displayValue(nil)}
	}
	tagged := *ve
	tagged.Field = a.Name
	tagged.Value = a.displayValue(ve.Value)
	return &tagged
}

// displayValue keeps secret values out of error messages.
func (a Attribute) displayValue(v any) any {
	if a.Secret {
		return RedactedPlaceholder
	}
	return v
}

func (a Attribute) normalize(raw any) (any, error) {
	mismatch := &TypeMismatchError{Field: a.Name, Expected: a.Type, Actual: shapeOf(raw)}
	switch a.Type {
	case TypeString:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch
		}
		return s, nil
	case TypeBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, mismatch
		}
		return b, nil
	case TypeInt:
		n, ok := toInt(raw)
		if !ok {
			return nil, mismatch
		}
		return n, nil
	case TypeList:
		l, ok := toStrings(raw)
		if !ok {
			return nil, mismatch
		}
		return l, nil
	case TypeEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch
		}
		if !slices.Contains(a.Choices, s) {
			return nil, &ValidationError{Field: a.Name, Rule: fmt.Sprintf("one_of%v", a.Choices), Value: a.displayValue(s)}
		}
		return s, nil
	}
	return nil, mismatch
}

func toInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		// JSON numbers decode as float64.
		return floatToInt(n)
	}
	return 0, false
}

// floatToInt accepts whole numbers inside the int64 range.
func floatToInt(n float64) (int, bool) {
	const limit = 1 << 63
	if n != math.Trunc(n) || n >= limit || n < -limit {
		return 0, false
	}
	return int(n), true
}

func toStrings(raw any) ([]string, bool) {
	switch l := raw.(type) {
	case []string:
		return slices.Clone(l), true
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func shapeOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case []any, []string:
		return "list"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
