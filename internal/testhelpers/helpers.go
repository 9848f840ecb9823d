// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustCopy copies from r to a temp file and returns its path.
func MustCopy(t *testing.T, name string, r io.Reader) string {
	t.Helper()
	tmp := t.TempDir()
	dst := filepath.Join(tmp, name)
	f, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	err = f.Close()
	if err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return dst
}

// MustWriteDocument writes a configuration document to a temp file.
func MustWriteDocument(t *testing.T, content string) string {
	t.Helper()
	return MustCopy(t, "ywh2bt.yml", strings.NewReader(content))
}

// AssertNoSecrets fails the test when text contains any of secrets.
func AssertNoSecrets(t *testing.T, text string, secrets ...string) {
	t.Helper()
	if len(secrets) == 0 {
		secrets = Secrets()
	}
	for _, s := range secrets {
		if s != "" && strings.Contains(text, s) {
			t.Errorf("secret %q leaked in:\n%s", s, text)
		}
	}
}
