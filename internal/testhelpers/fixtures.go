// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

// Secret values used by the fixtures.
const (
	JiraPassword  = "jira-s3cret-password"
	JiraPAT       = "jira-s3cret-pat"
	GitLabToken   = "glpat-s3cret-token"
	GitHubToken   = "ghp_s3cretToken"
	YesWeHackPAT  = "ywh-s3cret-pat"
	SampleTracker = "my-jira"
)

// JiraValues returns a valid jira block without its type key.
func JiraValues() map[string]any {
	return map[string]any{
		"url":      "https://jira.example.com",
		"login":    "bot",
		"password": JiraPassword,
		"project":  "SEC",
	}
}

// GitLabValues returns a valid gitlab block without its type key.
func GitLabValues() map[string]any {
	return map[string]any{
		"token":   GitLabToken,
		"project": "group/project",
	}
}

// GitHubValues returns a valid github block without its type key.
func GitHubValues() map[string]any {
	return map[string]any{
		"token":   GitHubToken,
		"project": "octo/repo",
	}
}

// YesWeHackValues returns a valid yeswehack block synchronizing into trackers.
func YesWeHackValues(trackers ...string) map[string]any {
	refs := make([]any, 0, len(trackers))
	for _, t := range trackers {
		refs = append(refs, t)
	}
	return map[string]any{
		"pat":         YesWeHackPAT,
		"programs":    []any{"my-program"},
		"bugtrackers": refs,
	}
}

// SampleDocument is a valid document declaring one tracker of each type.
const SampleDocument = `
bugtrackers:
  my-jira:
    type: jira
    url: https://jira.example.com
    login: bot
    password: ` + JiraPassword + `
    pat: ` + JiraPAT + `
    project: SEC
    labels: [ywh, security]
  my-gitlab:
    type: gitlab
    token: ` + GitLabToken + `
    project: group/project
    confidential: true
  my-github:
    type: github
    token: ` + GitHubToken + `
    project: octo/repo
yeswehack:
  my-platform:
    pat: ` + YesWeHackPAT + `
    programs: [my-program]
    bugtrackers: [my-jira, my-gitlab]
`

// Secrets lists every secret value the fixtures carry.
func Secrets() []string {
	return []string{JiraPassword, JiraPAT, GitLabToken, GitHubToken, YesWeHackPAT}
}
