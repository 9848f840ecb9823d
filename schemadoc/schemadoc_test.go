// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package schemadoc

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops-wiz/ywh2bt/tracker"
)

func decode(t *testing.T) map[string]any {
	t.Helper()
	raw, err := Marshal(tracker.NewDefaultRegistry())
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func path(t *testing.T, m map[string]any, keys ...string) map[string]any {
	t.Helper()
	for _, k := range keys {
		next, ok := m[k].(map[string]any)
		require.True(t, ok, "missing %q", k)
		m = next
	}
	return m
}

func TestDocument_root(t *testing.T) {
	doc := decode(t)
	assert.Equal(t, jsonschema.Version, doc["$schema"])
	assert.Equal(t, ID, doc["$id"])
	assert.Equal(t, false, doc["additionalProperties"])
	path(t, doc, "properties", "bugtrackers")
	path(t, doc, "properties", "yeswehack", "additionalProperties")
}

func TestDocument_trackers(t *testing.T) {
	doc := decode(t)
	oneOf, ok := path(t, doc, "properties", "bugtrackers", "additionalProperties")["oneOf"].([]any)
	require.True(t, ok)
	require.Len(t, oneOf, 3)

	byType := map[string]map[string]any{}
	for _, s := range oneOf {
		block := s.(map[string]any)
		typ := path(t, block, "properties", "type")["const"].(string)
		byType[typ] = block
	}
	require.Contains(t, byType, tracker.TypeJira)
	require.Contains(t, byType, tracker.TypeGitLab)
	require.Contains(t, byType, tracker.TypeGitHub)

	jira := byType[tracker.TypeJira]
	assert.Equal(t, []any{"type", "url", "login", "password", "project"}, jira["required"])
	assert.Equal(t, false, jira["additionalProperties"])

	password := path(t, jira, "properties", "password")
	assert.Equal(t, true, password["writeOnly"])
	assert.Equal(t, "string", password["type"])

	issueType := path(t, jira, "properties", "issuetype")
	assert.Equal(t, "Task", issueType["default"])
	assert.Nil(t, issueType["writeOnly"])

	labels := path(t, jira, "properties", "labels")
	assert.Equal(t, "array", labels["type"])
	assert.Equal(t, "string", path(t, labels, "items")["type"])

	verify := path(t, byType[tracker.TypeGitLab], "properties", "verify")
	assert.Equal(t, "boolean", verify["type"])
	assert.Equal(t, true, verify["default"])

	token := path(t, byType[tracker.TypeGitHub], "properties", "token")
	assert.Equal(t, true, token["writeOnly"])
}

func TestDocument_yeswehack(t *testing.T) {
	block := path(t, decode(t), "properties", "yeswehack", "additionalProperties")
	assert.Equal(t, []any{"pat", "programs", "bugtrackers"}, block["required"])
	syncState := path(t, block, "properties", "sync_state")
	assert.Equal(t, []any{"accepted", "all"}, syncState["enum"])
	assert.Equal(t, "accepted", syncState["default"])
}

func TestDocument_customRegistry(t *testing.T) {
	schema, err := Document(tracker.NewRegistry())
	require.NoError(t, err)
	bugtrackers, ok := schema.Properties.Get("bugtrackers")
	require.True(t, ok)
	assert.Empty(t, bugtrackers.AdditionalProperties.OneOf)
}
