// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TODO_TODO":   "from-env",
		"TODO_SILENT": "true",
		"TODO_SYSLOG": "local0",
		"TODO_CONFIG": "/etc/todo.json",
	})

	// Act
	src := &Source{}
	err := parseEnv(src)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Source{
		TODO:   "from-env",
		Silent: boolPtr(true),
		Syslog: "local0",
		Config: "/etc/todo.json",
	}, *src)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TODO_SYSLOG": "daemon",
	})

	// Act
	src := &Source{}
	err := parseEnv(src)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "daemon", src.Syslog)
	assert.Empty(t, src.TODO)
	assert.Nil(t, src.Silent)
	assert.Empty(t, src.Config)
}

// TestParseEnv_IgnoresUnprefixed verifies that only TODO_-prefixed variables
// are read.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/unprefixed.json",
		"SILENT": "true",
	})

	src := &Source{}
	require.NoError(t, parseEnv(src))
	assert.Equal(t, Source{}, *src)
}

// TestParseEnv_ExplicitFalse verifies that TODO_SILENT=false is kept apart
// from an unset variable.
func TestParseEnv_ExplicitFalse(t *testing.T) {
	setEnvVars(t, map[string]string{"TODO_SILENT": "false"})

	src := &Source{}
	require.NoError(t, parseEnv(src))
	require.NotNil(t, src.Silent)
	assert.False(t, *src.Silent)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	src := &Source{}
	require.NoError(t, parseEnv(src))
	assert.Equal(t, Source{}, *src)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"TODO_SILENT": "sometimes",
	})

	// Act
	err := parseEnv(&Source{})

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

// Helpers

var envKeys = []string{
	"TODO_TODO",
	"TODO_SILENT",
	"TODO_SYSLOG",
	"TODO_CONFIG",
	"CONFIG",
	"SILENT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
