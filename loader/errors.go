// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package loader

import "fmt"

// BlockError ties a validation failure to the document block it came from.
type BlockError struct {
	Section string
	Name    string
	Err     error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Name, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// UnknownReferenceError reports a yeswehack block naming an undeclared tracker.
type UnknownReferenceError struct {
	Section   string
	Name      string
	Reference string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("%s.%s: unknown bug tracker %q", e.Section, e.Name, e.Reference)
}

// ShapeError reports a document node of the wrong kind, e.g. a list where a mapping is expected.
type ShapeError struct {
	Expected string
	Actual   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}
