// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

import (
	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

// repositorySchema holds the attributes shared by token-authenticated
// repository trackers. GitLab and GitHub extend it.
var repositorySchema = cfg.MustSchema("repository",
	cfg.NewAttribute(AttrURL, cfg.TypeString, "API URL", "Base URL of the tracker API",
		cfg.WithValidator(cfg.URLValidator)),
	cfg.NewAttribute(AttrToken, cfg.TypeString, "API token", "Token used to authenticate against the tracker API",
		cfg.Required(), cfg.Secret(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrProject, cfg.TypeString, "Project path", "Path of the project receiving the issues",
		cfg.Required(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrVerify, cfg.TypeBool, "Verify TLS", "Verify TLS certificates",
		cfg.WithDefault(defaultVerify)),
	cfg.NewAttribute(AttrLabels, cfg.TypeList, "Labels", "List of labels to be applied to the issue"),
)

// GitLabSchema declares the attributes of a GitLab tracker.
var GitLabSchema = mustExtend(repositorySchema, TypeGitLab,
	cfg.NewAttribute(AttrURL, cfg.TypeString, "API URL", "Base URL of the GitLab server",
		cfg.WithDefault(defaultGitLabURL), cfg.WithValidator(cfg.URLValidator)),
	cfg.NewAttribute(AttrProject, cfg.TypeString, "Project path", "GitLab project path (group/project)",
		cfg.Required(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrConfidential, cfg.TypeBool, "Confidential issues", "Mark created issues as confidential",
		cfg.WithDefault(defaultConfidential)),
)

// GitLabConfiguration is a validated GitLab tracker configuration.
type GitLabConfiguration struct {
	*cfg.Configuration
}

// NewGitLabConfiguration validates values against GitLabSchema.
func NewGitLabConfiguration(values map[string]any) (*GitLabConfiguration, error) {
	c, err := GitLabSchema.New(values)
	if err != nil {
		return nil, err
	}
	return &GitLabConfiguration{Configuration: c}, nil
}

func newGitLab(values map[string]any) (Configuration, error) {
	c, err := NewGitLabConfiguration(values)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GitLabConfiguration) URL() string        { return c.GetString(AttrURL) }
func (c *GitLabConfiguration) Token() string      { return c.GetString(AttrToken) }
func (c *GitLabConfiguration) Project() string    { return c.GetString(AttrProject) }
func (c *GitLabConfiguration) Verify() bool       { return c.GetBool(AttrVerify) }
func (c *GitLabConfiguration) Confidential() bool { return c.GetBool(AttrConfidential) }
func (c *GitLabConfiguration) Labels() []string   { return c.GetStrings(AttrLabels) }

func mustExtend(parent *cfg.Schema, name string, attrs ...cfg.Attribute) *cfg.Schema {
	s, err := parent.Extend(name, attrs...)
	if err != nil {
		panic(err)
	}
	return s
}
