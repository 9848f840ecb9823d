// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package testhelpers provides shared testing utilities: fixture blocks for
// every tracker type, temp-file writers and secret leak assertions.
//
// Conventions:
//   - Fixtures are returned fresh on every call so tests may mutate them.
//   - Secret fixture values are distinctive so leak assertions cannot match by accident.
//
// This package is for test code and is not part of the public API.
package testhelpers
