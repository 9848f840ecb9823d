// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

import "strings"

// RedactedPlaceholder replaces secret values in exports, logs and error messages.
const RedactedPlaceholder = "[REDACTED]"

// redactSecretValue replaces a present secret with the placeholder, including
// an empty one, so exports never reveal whether a secret is blank.
func redactSecretValue(_ any) any {
	return RedactedPlaceholder
}

// Sanitize replaces every secret value held by c that occurs in text.
// Use it on messages built outside this package, e.g. API error bodies.
func Sanitize(text string, c *Configuration) string {
	if c == nil || text == "" {
		return text
	}
	for _, a := range c.schema.attributes {
		if !a.Secret {
			continue
		}
		s, ok := c.values[a.Name].(string)
		if !ok || s == "" {
			continue
		}
		text = strings.ReplaceAll(text, s, RedactedPlaceholder)
	}
	return text
}
