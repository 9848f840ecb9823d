// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package loader reads ywh2bt configuration documents (YAML or JSON):
//
//	bugtrackers:
//	  my-jira:
//	    type: jira
//	    url: https://jira.example.com
//	    login: bot
//	    password: ...
//	    project: SEC
//	yeswehack:
//	  my-platform:
//	    pat: ...
//	    programs: [my-program]
//	    bugtrackers: [my-jira]
//
// Each tracker block is dispatched on its "type" through a tracker.Registry.
// Loading logs through tflog and only ever logs redacted values.
package loader
