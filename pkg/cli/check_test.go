/*
Copyright © 2025 Symceil Authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureColors(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{mode: "always", want: false},
		{mode: "yes", want: false},
		{mode: "on", want: false},
		{mode: "never", want: true},
		{mode: "no", want: true},
		{mode: "off", want: true},
		{mode: "sometimes", wantErr: true},
		{mode: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			err := configureColors(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, color.NoColor)
		})
	}
}

func TestConfigureColorsAutoLeavesDetection(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = true
	require.NoError(t, configureColors("auto"))
	assert.True(t, color.NoColor)

	color.NoColor = false
	require.NoError(t, configureColors("auto"))
	assert.False(t, color.NoColor)
}

func TestNewRootCommand(t *testing.T) {
	cmd := New()
	assert.Equal(t, "symceil", cmd.Name)

	names := make([]string, 0, len(cmd.Commands))
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.Contains(t, names, "check")
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := checkCmd()
	require.Equal(t, "check", cmd.Name)

	var flagNames []string
	for _, f := range cmd.Flags {
		flagNames = append(flagNames, f.Names()...)
	}
	assert.Contains(t, flagNames, "max-version")
	assert.Contains(t, flagNames, "m")
	assert.Contains(t, flagNames, "color")
	assert.Contains(t, flagNames, "demangle")
	assert.Contains(t, flagNames, "format")
	assert.Contains(t, flagNames, "output")
	assert.Contains(t, flagNames, "concurrency")
}
