// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package client

import (
	"context"
	"fmt"
	"strings"

	jira "github.com/ctreminiom/go-atlassian/v2/jira/v3"
	"github.com/google/go-github/v74/github"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	gitlab "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/oauth2"

	cfg "github.com/devops-wiz/ywh2bt/configuration"
	"github.com/devops-wiz/ywh2bt/tracker"
)

const githubPublicAPI = "https://api.github.com"

// NewJiraClient creates the Jira client, sets authentication and user agent.
// A personal access token takes precedence over login and password.
func NewJiraClient(ctx context.Context, c *tracker.JiraConfiguration, opts HTTPOptions) (*jira.Client, error) {
	httpClient, err := NewHTTPClient(opts, c.Verify())
	if err != nil {
		return nil, err
	}
	client, err := jira.New(httpClient, c.URL())
	if err != nil {
		return nil, sanitizeError("create jira client", err, c.Configuration)
	}

	auth := "basic"
	if pat := c.PAT(); pat != "" {
		auth = "bearer"
		client.Auth.SetBearerToken(pat)
	} else {
		client.Auth.SetBasicAuth(c.Login(), c.Password())
	}
	client.Auth.SetUserAgent(opts.withDefaults().UserAgent)

	tflog.Debug(ctx, "jira client configured", map[string]interface{}{
		"url":    c.URL(),
		"auth":   auth,
		"verify": c.Verify(),
	})
	return client, nil
}

// NewGitLabClient creates a GitLab client authenticated with the configured token.
func NewGitLabClient(ctx context.Context, c *tracker.GitLabConfiguration, opts HTTPOptions) (*gitlab.Client, error) {
	httpClient, err := NewHTTPClient(opts, c.Verify())
	if err != nil {
		return nil, err
	}
	client, err := gitlab.NewClient(c.Token(), gitlab.WithBaseURL(c.URL()), gitlab.WithHTTPClient(httpClient))
	if err != nil {
		return nil, sanitizeError("create gitlab client", err, c.Configuration)
	}
	client.UserAgent = opts.withDefaults().UserAgent

	tflog.Debug(ctx, "gitlab client configured", map[string]interface{}{
		"url":     client.BaseURL().String(),
		"project": c.Project(),
		"verify":  c.Verify(),
	})
	return client, nil
}

// NewGitHubClient creates a GitHub client authenticated with the configured
// token. A URL other than the public API selects GitHub Enterprise.
func NewGitHubClient(ctx context.Context, c *tracker.GitHubConfiguration, opts HTTPOptions) (*github.Client, error) {
	httpClient, err := NewHTTPClient(opts, c.Verify())
	if err != nil {
		return nil, err
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token()})
	tc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, httpClient), ts)
	tc.Timeout = httpClient.Timeout
	client := github.NewClient(tc)
	client.UserAgent = opts.withDefaults().UserAgent

	if baseURL := strings.TrimSuffix(c.URL(), "/"); baseURL != githubPublicAPI {
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, sanitizeError("set github enterprise URL", err, c.Configuration)
		}
	}

	tflog.Debug(ctx, "github client configured", map[string]interface{}{
		"url":        client.BaseURL.String(),
		"repository": c.Project(),
		"verify":     c.Verify(),
	})
	return client, nil
}

// sanitizeError flattens err into a message with the secrets of c redacted.
// The cause is not wrapped since library errors may echo credentials.
func sanitizeError(op string, err error, c *cfg.Configuration) error {
	return fmt.Errorf("%s: %s", op, cfg.Sanitize(err.Error(), c))
}
