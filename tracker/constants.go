// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

// Tracker type names used in configuration documents.
const (
	TypeJira   = "jira"
	TypeGitLab = "gitlab"
	TypeGitHub = "github"
)

// Centralized attribute names shared by tracker schemas.
const (
	AttrURL               = "url"
	AttrLogin             = "login"
	AttrPassword          = "password"
	AttrProject           = "project"
	AttrVerify            = "verify"
	AttrIssueType         = "issuetype"
	AttrIssueClosedStatus = "issue_closed_status"
	AttrParentKey         = "parent_key"
	AttrLabels            = "labels"
	AttrReporter          = "reporter"
	AttrAssignee          = "assignee"
	AttrEnvironment       = "environment"
	AttrPAT               = "pat"
	AttrToken             = "token"
	AttrConfidential      = "confidential"
	AttrGitHubCDNOn       = "github_cdn_on"
)

// Centralized tracker defaults
const (
	defaultVerify            = true
	defaultIssueType         = "Task"
	defaultIssueClosedStatus = "Closed"
	defaultGitLabURL         = "https://gitlab.com"
	defaultGitHubURL         = "https://api.github.com"
	defaultConfidential      = false
	defaultGitHubCDNOn       = false
)
