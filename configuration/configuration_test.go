// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = MustSchema("test",
	NewAttribute("url", TypeString, "URL", "Server URL", Required(), WithValidator(URLValidator)),
	NewAttribute("login", TypeString, "Login", "User login", Required(), WithValidator(NotBlankValidator)),
	NewAttribute("password", TypeString, "Password", "User password", Required(), Secret(), WithValidator(NotBlankValidator)),
	NewAttribute("verify", TypeBool, "Verify", "Verify TLS", WithDefault(true)),
	NewAttribute("retries", TypeInt, "Retries", "Retry count", WithDefault(3)),
	NewAttribute("labels", TypeList, "Labels", "Labels to apply"),
	NewAttribute("mode", TypeEnum, "Mode", "Sync mode", WithChoices("all", "accepted"), WithDefault("accepted")),
	NewAttribute("token", TypeString, "Token", "Optional token", Secret()),
)

func validValues() map[string]any {
	return map[string]any{
		"url":      "https://j.example.com",
		"login":    "bob",
		"password": "hunter2-secret",
	}
}

func TestSchemaNew_defaults(t *testing.T) {
	c, err := testSchema.New(validValues())
	require.NoError(t, err)

	assert.Equal(t, "https://j.example.com", c.GetString("url"))
	assert.True(t, c.GetBool("verify"))
	assert.Equal(t, 3, c.GetInt("retries"))
	assert.Equal(t, "accepted", c.GetString("mode"))
	assert.False(t, c.Has("labels"))
	assert.Nil(t, c.GetStrings("labels"))
	_, ok := c.Get("token")
	assert.False(t, ok)
	assert.Same(t, testSchema, c.Schema())
}

func TestSchemaNew_nilCountsAsAbsent(t *testing.T) {
	values := validValues()
	values["verify"] = nil
	values["token"] = nil
	c, err := testSchema.New(values)
	require.NoError(t, err)
	assert.True(t, c.GetBool("verify"))
	assert.False(t, c.Has("token"))
}

func TestSchemaNew_missingRequired(t *testing.T) {
	for _, field := range []string{"url", "login", "password"} {
		t.Run(field, func(t *testing.T) {
			values := validValues()
			delete(values, field)
			c, err := testSchema.New(values)
			require.Nil(t, c)
			var me *MissingRequiredAttributeError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, field, me.Field)
		})
	}
}

func TestSchemaNew_typeMismatch(t *testing.T) {
	for _, tt := range []struct {
		field    string
		value    any
		expected ValueType
		actual   string
	}{
		{"login", 12, TypeString, "number"},
		{"verify", "yes", TypeBool, "string"},
		{"retries", 1.5, TypeInt, "number"},
		{"retries", 1e30, TypeInt, "number"},
		{"retries", -1e19, TypeInt, "number"},
		{"retries", math.Inf(1), TypeInt, "number"},
		{"retries", math.NaN(), TypeInt, "number"},
		{"retries", float32(2.5), TypeInt, "number"},
		{"retries", "3", TypeInt, "string"},
		{"labels", "one", TypeList, "string"},
		{"labels", []any{"ok", 2}, TypeList, "list"},
		{"mode", true, TypeEnum, "bool"},
		{"url", map[string]any{"a": 1}, TypeString, "mapping"},
	} {
		t.Run(fmt.Sprintf("%s=%v", tt.field, tt.value), func(t *testing.T) {
			values := validValues()
			values[tt.field] = tt.value
			_, err := testSchema.New(values)
			var te *TypeMismatchError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.field, te.Field)
			assert.Equal(t, tt.expected, te.Expected)
			assert.Equal(t, tt.actual, te.Actual)
		})
	}
}

func TestSchemaNew_normalization(t *testing.T) {
	values := validValues()
	values["retries"] = float64(5) // as decoded from JSON
	values["labels"] = []any{"security", "ywh"}
	values["url"] = " https://j.example.com "
	c, err := testSchema.New(values)
	require.NoError(t, err)
	assert.Equal(t, 5, c.GetInt("retries"))

	values["retries"] = float32(7)
	c, err = testSchema.New(values)
	require.NoError(t, err)
	assert.Equal(t, 7, c.GetInt("retries"))
	assert.Equal(t, []string{"security", "ywh"}, c.GetStrings("labels"))
	assert.Equal(t, "https://j.example.com", c.GetString("url"))
}

func TestSchemaNew_validationError(t *testing.T) {
	values := validValues()
	values["url"] = "not a url"
	_, err := testSchema.New(values)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "url", ve.Field)
	assert.Equal(t, RuleURL, ve.Rule)
	assert.Equal(t, "not a url", ve.Value)

	values = validValues()
	values["mode"] = "some"
	_, err = testSchema.New(values)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "mode", ve.Field)
}

func TestSchemaNew_secretNeverInErrors(t *testing.T) {
	values := validValues()
	values["password"] = "   "
	values["token"] = 1234
	_, err := testSchema.New(values)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
	assert.Equal(t, RedactedPlaceholder, ve.Value)
	assert.NotContains(t, err.Error(), "1234")
}

func TestSchemaNew_unknownAttribute(t *testing.T) {
	values := validValues()
	values["foo"] = "bar"
	c, err := testSchema.New(values)
	require.Nil(t, c)
	var ue *UnknownAttributeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "foo", ue.Name)
}

func TestSchemaNew_collectsEveryFailure(t *testing.T) {
	_, err := testSchema.New(map[string]any{"zzz": 1, "aaa": 2, "verify": "no"})
	require.Error(t, err)

	var unknown, missing, mismatch int
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ue *UnknownAttributeError
		var me *MissingRequiredAttributeError
		var te *TypeMismatchError
		switch {
		case errors.As(e, &ue):
			unknown++
		case errors.As(e, &me):
			missing++
		case errors.As(e, &te):
			mismatch++
		}
	}
	assert.Equal(t, 2, unknown)
	assert.Equal(t, 3, missing)
	assert.Equal(t, 1, mismatch)
	assert.True(t, strings.Index(err.Error(), `"aaa"`) < strings.Index(err.Error(), `"zzz"`), "unknown keys are reported sorted")
}

func TestConfiguration_ToMap(t *testing.T) {
	values := validValues()
	values["token"] = "tok-123456"
	values["labels"] = []string{"a"}
	c, err := testSchema.New(values)
	require.NoError(t, err)

	redacted := c.ToMap(true)
	assert.Equal(t, RedactedPlaceholder, redacted["password"])
	assert.Equal(t, RedactedPlaceholder, redacted["token"])
	assert.Equal(t, "bob", redacted["login"])
	for _, v := range redacted {
		assert.NotEqual(t, "hunter2-secret", v)
		assert.NotEqual(t, "tok-123456", v)
	}

	plain := c.ToMap(false)
	assert.Equal(t, "hunter2-secret", plain["password"])
	assert.Equal(t, "tok-123456", plain["token"])
	assert.Equal(t, map[string]any{
		"url":      "https://j.example.com",
		"login":    "bob",
		"password": "hunter2-secret",
		"verify":   true,
		"retries":  3,
		"labels":   []string{"a"},
		"mode":     "accepted",
		"token":    "tok-123456",
	}, plain)
}

func TestConfiguration_roundTrip(t *testing.T) {
	values := validValues()
	values["labels"] = []any{"x", "y"}
	values["verify"] = false
	values["token"] = "t0k3n"
	c, err := testSchema.New(values)
	require.NoError(t, err)

	again, err := testSchema.New(c.ToMap(false))
	require.NoError(t, err)
	assert.Equal(t, c.ToMap(false), again.ToMap(false))
	assert.Equal(t, c, again)
}

func TestConfiguration_immutable(t *testing.T) {
	values := validValues()
	values["labels"] = []string{"a", "b"}
	c, err := testSchema.New(values)
	require.NoError(t, err)

	values["labels"].([]string)[0] = "changed-in-input"
	c.GetStrings("labels")[0] = "changed-via-getter"
	v, _ := c.Get("labels")
	v.([]string)[1] = "changed-via-get"
	c.ToMap(false)["labels"].([]string)[0] = "changed-via-map"

	assert.Equal(t, []string{"a", "b"}, c.GetStrings("labels"))
}

func TestConfiguration_formattingRedacts(t *testing.T) {
	c, err := testSchema.New(validValues())
	require.NoError(t, err)

	for _, s := range []string{c.String(), fmt.Sprintf("%v", c), fmt.Sprintf("%+v", c), fmt.Sprintf("%#v", c), fmt.Sprint(c)} {
		assert.NotContains(t, s, "hunter2-secret")
		assert.Contains(t, s, RedactedPlaceholder)
	}
	assert.True(t, strings.HasPrefix(c.String(), "test{url=https://j.example.com login=bob"))
}

func TestConfiguration_Decode(t *testing.T) {
	type settings struct {
		URL      string   `attr:"url"`
		Password string   `attr:"password"`
		Verify   bool     `attr:"verify"`
		Retries  int      `attr:"retries"`
		Labels   []string `attr:"labels"`
	}
	values := validValues()
	values["labels"] = []string{"l1"}
	c, err := testSchema.New(values)
	require.NoError(t, err)

	var s settings
	require.NoError(t, c.Decode(&s))
	assert.Equal(t, settings{
		URL:      "https://j.example.com",
		Password: "hunter2-secret",
		Verify:   true,
		Retries:  3,
		Labels:   []string{"l1"},
	}, s)

	assert.Error(t, c.Decode(s), "decoding into a non-pointer fails")
}

func TestSanitize(t *testing.T) {
	values := validValues()
	values["token"] = "tok-abcdef"
	c, err := testSchema.New(values)
	require.NoError(t, err)

	msg := "401 for bob using hunter2-secret and tok-abcdef"
	assert.Equal(t, "401 for bob using [REDACTED] and [REDACTED]", Sanitize(msg, c))
	assert.Equal(t, "", Sanitize("", c))
	assert.Equal(t, msg, Sanitize(msg, nil))
}

func TestConfiguration_ToMapRedactsEmptySecret(t *testing.T) {
	s := MustSchema("blank-secret",
		NewAttribute("token", TypeString, "Token", "", Secret()),
		NewAttribute("user", TypeString, "User", ""),
	)
	c, err := s.New(map[string]any{"token": "", "user": ""})
	require.NoError(t, err)

	redacted := c.ToMap(true)
	assert.Equal(t, RedactedPlaceholder, redacted["token"])
	assert.Equal(t, "", redacted["user"])
	assert.Equal(t, "", c.ToMap(false)["token"])
	assert.Equal(t, "blank-secret{token=[REDACTED] user=}", c.String())
}
