// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package tracker

import (
	"strings"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

// RuleRepositoryPath is reported when a GitHub project is not "owner/repo".
const RuleRepositoryPath = "owner/repo"

// GitHubSchema declares the attributes of a GitHub tracker.
var GitHubSchema = mustExtend(repositorySchema, TypeGitHub,
	cfg.NewAttribute(AttrURL, cfg.TypeString, "API URL", "Base URL of the GitHub API",
		cfg.WithDefault(defaultGitHubURL), cfg.WithValidator(cfg.URLValidator)),
	cfg.NewAttribute(AttrProject, cfg.TypeString, "Repository", "GitHub repository (owner/repo)",
		cfg.Required(), cfg.WithValidator(cfg.Chain(cfg.NotBlankValidator, repositoryPathValidator))),
	cfg.NewAttribute(AttrGitHubCDNOn, cfg.TypeBool, "Use CDN", "Upload report attachments through the GitHub CDN",
		cfg.WithDefault(defaultGitHubCDNOn)),
)

func repositoryPathValidator(value any) (any, error) {
	s, _ := value.(string)
	owner, repo, ok := strings.Cut(strings.Trim(s, "/"), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return nil, &cfg.ValidationError{Rule: RuleRepositoryPath, Value: value}
	}
	return owner + "/" + repo, nil
}

// GitHubConfiguration is a validated GitHub tracker configuration.
type GitHubConfiguration struct {
	*cfg.Configuration
}

// NewGitHubConfiguration validates values against GitHubSchema.
func NewGitHubConfiguration(values map[string]any) (*GitHubConfiguration, error) {
	c, err := GitHubSchema.New(values)
	if err != nil {
		return nil, err
	}
	return &GitHubConfiguration{Configuration: c}, nil
}

func newGitHub(values map[string]any) (Configuration, error) {
	c, err := NewGitHubConfiguration(values)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *GitHubConfiguration) URL() string      { return c.GetString(AttrURL) }
func (c *GitHubConfiguration) Token() string    { return c.GetString(AttrToken) }
func (c *GitHubConfiguration) Project() string  { return c.GetString(AttrProject) }
func (c *GitHubConfiguration) Verify() bool     { return c.GetBool(AttrVerify) }
func (c *GitHubConfiguration) CDNOn() bool      { return c.GetBool(AttrGitHubCDNOn) }
func (c *GitHubConfiguration) Labels() []string { return c.GetStrings(AttrLabels) }

// Owner returns the repository owner.
func (c *GitHubConfiguration) Owner() string {
	owner, _, _ := strings.Cut(c.Project(), "/")
	return owner
}

// Repository returns the repository name.
func (c *GitHubConfiguration) Repository() string {
	_, repo, _ := strings.Cut(c.Project(), "/")
	return repo
}
