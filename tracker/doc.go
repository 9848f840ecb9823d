// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package tracker declares the issue tracker configurations and the registry
// dispatching a document's tracker "type" to the matching one.
//
// Adding a tracker takes one schema, one typed wrapper and one Register call:
//
//	r := tracker.NewRegistry()
//	if err := tracker.RegisterBuiltins(r); err != nil { ... }
//	if err := r.Register("bitbucket", BitbucketSchema, newBitbucket); err != nil { ... }
//
// Nothing registers itself on import.
package tracker
