// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

import (
	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

// JiraSchema declares the attributes of a Jira tracker.
var JiraSchema = cfg.MustSchema(TypeJira,
	cfg.NewAttribute(AttrURL, cfg.TypeString, "API URL", "Base URL of the Jira server",
		cfg.Required(), cfg.WithValidator(cfg.URLValidator)),
	cfg.NewAttribute(AttrLogin, cfg.TypeString, "Login", "User login for the Jira server",
		cfg.Required(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrPassword, cfg.TypeString, "Password", "User password or API token for the Jira server",
		cfg.Required(), cfg.Secret(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrProject, cfg.TypeString, "Project slug", "Jira slug",
		cfg.Required(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrVerify, cfg.TypeBool, "Verify SSL", "Verify SSL certs",
		cfg.WithDefault(defaultVerify)),
	cfg.NewAttribute(AttrIssueType, cfg.TypeString, "Issue type", "Issue type (sensitive to account language)",
		cfg.WithDefault(defaultIssueType)),
	cfg.NewAttribute(AttrIssueClosedStatus, cfg.TypeString, "Issue closed status", "Issue closed status (sensitive to account language)",
		cfg.WithDefault(defaultIssueClosedStatus)),
	cfg.NewAttribute(AttrParentKey, cfg.TypeString, "Epic Link", "Epic Link ID to associate the issue with an Epic",
		cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrLabels, cfg.TypeList, "Labels", "List of labels to be applied to the issue"),
	cfg.NewAttribute(AttrReporter, cfg.TypeString, "Reporter", "The reporter of the issue",
		cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrAssignee, cfg.TypeString, "Assignee", "The assignee of the issue",
		cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrEnvironment, cfg.TypeString, "Environment", "Environment for the issue"),
	cfg.NewAttribute(AttrPAT, cfg.TypeString, "Personal Access Token", "Personal Access Token for the Jira server, used instead of login and password",
		cfg.Secret(), cfg.WithValidator(cfg.NotBlankValidator)),
)

// JiraConfiguration is a validated Jira tracker configuration.
type JiraConfiguration struct {
	*cfg.Configuration
}

// NewJiraConfiguration validates values against JiraSchema.
func NewJiraConfiguration(values map[string]any) (*JiraConfiguration, error) {
	c, err := JiraSchema.New(values)
	if err != nil {
		return nil, err
	}
	return &JiraConfiguration{Configuration: c}, nil
}

func newJira(values map[string]any) (Configuration, error) {
	c, err := NewJiraConfiguration(values)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *JiraConfiguration) URL() string               { return c.GetString(AttrURL) }
func (c *JiraConfiguration) Login() string             { return c.GetString(AttrLogin) }
func (c *JiraConfiguration) Password() string          { return c.GetString(AttrPassword) }
func (c *JiraConfiguration) Project() string           { return c.GetString(AttrProject) }
func (c *JiraConfiguration) Verify() bool              { return c.GetBool(AttrVerify) }
func (c *JiraConfiguration) IssueType() string         { return c.GetString(AttrIssueType) }
func (c *JiraConfiguration) IssueClosedStatus() string { return c.GetString(AttrIssueClosedStatus) }
func (c *JiraConfiguration) ParentKey() string         { return c.GetString(AttrParentKey) }
func (c *JiraConfiguration) Labels() []string          { return c.GetStrings(AttrLabels) }
func (c *JiraConfiguration) Reporter() string          { return c.GetString(AttrReporter) }
func (c *JiraConfiguration) Assignee() string          { return c.GetString(AttrAssignee) }
func (c *JiraConfiguration) Environment() string       { return c.GetString(AttrEnvironment) }
func (c *JiraConfiguration) PAT() string               { return c.GetString(AttrPAT) }
