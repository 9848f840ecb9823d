// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package configuration implements typed, validated, self-describing
// configuration attributes.
//
// A Schema is declared once from Attribute descriptors (type, requiredness,
// default, secrecy, descriptions and an optional validator). Schema.New turns
// a raw key/value document into an immutable Configuration, or fails with
// every problem found:
//   - MissingRequiredAttributeError: required attribute absent, no default.
//   - TypeMismatchError: value shape disagrees with the declared type.
//   - ValidationError: a validator rejected the value.
//   - UnknownAttributeError: the document names an undeclared attribute.
//
// Secret attribute values never leave a Configuration unredacted except
// through ToMap(false) and Decode; String, GoString, error messages and
// ToMap(true) use RedactedPlaceholder instead.
package configuration
