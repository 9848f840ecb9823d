// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

import "errors"

// RegisterBuiltins registers the Jira, GitLab and GitHub configurations.
// Call it once at startup; calling it again is harmless.
func RegisterBuiltins(r *Registry) error {
	return errors.Join(
		r.Register(TypeJira, JiraSchema, newJira),
		r.Register(TypeGitLab, GitLabSchema, newGitLab),
		r.Register(TypeGitHub, GitHubSchema, newGitHub),
	)
}

// NewDefaultRegistry returns a registry holding the built-in trackers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		// only reachable if a built-in name is registered twice with different schemas
		panic(err)
	}
	return r
}
