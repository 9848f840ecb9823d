// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package client turns validated tracker configurations into API clients
// sharing one retry and timeout policy. Constructing a client issues no
// request.
package client
