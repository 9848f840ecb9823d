// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package yeswehack declares the platform-side configuration: how to reach
// the YesWeHack API, which programs to synchronize and into which trackers.
package yeswehack

import (
	cfg "github.com/devops-wiz/ywh2bt/configuration"
)

// Attribute names.
const (
	AttrAPIURL      = "api_url"
	AttrPAT         = "pat"
	AttrVerify      = "verify"
	AttrPrograms    = "programs"
	AttrBugtrackers = "bugtrackers"
	AttrSyncState   = "sync_state"
)

// Report states selecting which reports are synchronized.
const (
	SyncAll      = "all"
	SyncAccepted = "accepted"
)

const defaultAPIURL = "https://api.yeswehack.com"

// Schema declares the attributes of a YesWeHack platform block.
var Schema = cfg.MustSchema("yeswehack",
	cfg.NewAttribute(AttrAPIURL, cfg.TypeString, "API URL", "Base URL of the YesWeHack API",
		cfg.WithDefault(defaultAPIURL), cfg.WithValidator(cfg.URLValidator)),
	cfg.NewAttribute(AttrPAT, cfg.TypeString, "Personal Access Token", "Personal Access Token for YesWeHack",
		cfg.Required(), cfg.Secret(), cfg.WithValidator(cfg.NotBlankValidator)),
	cfg.NewAttribute(AttrVerify, cfg.TypeBool, "Verify TLS", "Verify TLS certificates",
		cfg.WithDefault(true)),
	cfg.NewAttribute(AttrPrograms, cfg.TypeList, "Programs", "Slugs of the programs to synchronize",
		cfg.Required(), cfg.WithValidator(nonEmptyListValidator)),
	cfg.NewAttribute(AttrBugtrackers, cfg.TypeList, "Bug trackers", "Names of the bug trackers receiving the reports",
		cfg.Required(), cfg.WithValidator(nonEmptyListValidator)),
	cfg.NewAttribute(AttrSyncState, cfg.TypeEnum, "Synchronized reports", "Which reports are synchronized",
		cfg.WithChoices(SyncAccepted, SyncAll), cfg.WithDefault(SyncAccepted)),
)

// RuleNonEmptyList is reported for an empty list or a blank list item.
const RuleNonEmptyList = "non_empty_list"

func nonEmptyListValidator(value any) (any, error) {
	l, _ := value.([]string)
	if len(l) == 0 {
		return nil, &cfg.ValidationError{Rule: RuleNonEmptyList, Value: value}
	}
	for _, item := range l {
		if _, err := cfg.NotBlankValidator(item); err != nil {
			return nil, &cfg.ValidationError{Rule: RuleNonEmptyList, Value: value}
		}
	}
	return l, nil
}

// Configuration is a validated YesWeHack platform configuration.
type Configuration struct {
	*cfg.Configuration
}

// New validates values against Schema.
func New(values map[string]any) (*Configuration, error) {
	c, err := Schema.New(values)
	if err != nil {
		return nil, err
	}
	return &Configuration{Configuration: c}, nil
}

func (c *Configuration) APIURL() string        { return c.GetString(AttrAPIURL) }
func (c *Configuration) PAT() string           { return c.GetString(AttrPAT) }
func (c *Configuration) Verify() bool          { return c.GetBool(AttrVerify) }
func (c *Configuration) Programs() []string    { return c.GetStrings(AttrPrograms) }
func (c *Configuration) Bugtrackers() []string { return c.GetStrings(AttrBugtrackers) }
func (c *Configuration) SyncState() string     { return c.GetString(AttrSyncState) }
