// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotBlankValidator(t *testing.T) {
	for _, in := range []any{"", "   ", "\t\n", 42, nil} {
		_, err := NotBlankValidator(in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "input %#v", in)
		assert.Equal(t, RuleNotBlank, ve.Rule)
		assert.Empty(t, ve.Field, "validators must not guess the field name")
	}

	out, err := NotBlankValidator("x")
	require.NoError(t, err)
	assert.Equal(t, "x", out)

	// surrounding spaces are kept; only blankness is checked
	out, err = NotBlankValidator(" x ")
	require.NoError(t, err)
	assert.Equal(t, " x ", out)
}

func TestURLValidator(t *testing.T) {
	t.Run("rejects non absolute URLs", func(t *testing.T) {
		for _, in := range []any{"not a url", "", "example.com", "/relative/path", "https://", "mailto:", 3} {
			_, err := URLValidator(in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve, "input %#v", in)
			assert.Equal(t, RuleURL, ve.Rule)
			assert.Equal(t, in, ve.Value)
		}
	})

	t.Run("returns normalized string", func(t *testing.T) {
		out, err := URLValidator("https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", out)

		out, err = URLValidator("  https://jira.example.com/base  ")
		require.NoError(t, err)
		assert.Equal(t, "https://jira.example.com/base", out)
	})
}

func TestChain(t *testing.T) {
	upper := func(v any) (any, error) { return v.(string) + "!", nil }
	fail := func(v any) (any, error) { return nil, &ValidationError{Rule: "never", Value: v} }

	out, err := Chain(NotBlankValidator, upper, upper)("go")
	require.NoError(t, err)
	assert.Equal(t, "go!!", out)

	_, err = Chain(NotBlankValidator, upper)(" ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, RuleNotBlank, ve.Rule)

	_, err = Chain(upper, fail)("go")
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "never", ve.Rule)
	assert.Equal(t, "go!", ve.Value, "later validators see the normalized value")

	out, err = Chain()("unchanged")
	require.NoError(t, err)
	assert.Equal(t, "unchanged", out)
}
