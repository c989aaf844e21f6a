package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

func TestDescriptorDefaults(t *testing.T) {
	t.Parallel()

	opts := config.DefaultFormatOptions()
	for _, desc := range config.Descriptors() {
		probe := config.FormatOptions{}
		require.NoError(t, desc.Set(&probe, desc.Default), "default of %s", desc.Name)
		assert.Equal(t, desc.Default, desc.Get(&opts), "round trip of %s", desc.Name)
	}

	assert.Equal(t, "    ", opts.Indent)
	assert.Equal(t, "\n", opts.Linebreak)
	assert.Equal(t, []string{"ID", "URL", "UUID"}, opts.Acronyms)
	assert.Empty(t, opts.NoSpaceOperators)
}

func TestDescriptorsSorted(t *testing.T) {
	t.Parallel()

	descs := config.Descriptors()
	for idx := 1; idx < len(descs); idx++ {
		assert.Less(t, descs[idx-1].Name, descs[idx].Name)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	desc, ok := config.Lookup("--MaxWidth")
	require.True(t, ok)
	assert.Equal(t, "maxwidth", desc.Name)

	_, ok = config.Lookup("flavor")
	assert.False(t, ok)
}

func TestDescriptorSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		option  string
		value   string
		wantErr bool
		check   func(t *testing.T, opts config.FormatOptions)
	}{
		{name: "indent tab", option: "indent", value: "tab", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, "\t", opts.Indent)
		}},
		{name: "indent width", option: "indent", value: "2", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, "  ", opts.Indent)
		}},
		{name: "indent zero", option: "indent", value: "0", wantErr: true},
		{name: "maxwidth number", option: "maxwidth", value: "120", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, 120, opts.MaxWidth)
		}},
		{name: "maxwidth malformed", option: "maxwidth", value: "wide", wantErr: true},
		{name: "commas enum", option: "commas", value: "INLINE", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, "inline", opts.Commas)
		}},
		{name: "commas outside set", option: "commas", value: "sometimes", wantErr: true},
		{name: "linebreak crlf", option: "linebreaks", value: "crlf", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, "\r\n", opts.Linebreak)
		}},
		{name: "list duplicate", option: "acronyms", value: "ID,URL,ID", wantErr: true},
		{name: "list trims", option: "nospaceoperators", value: "..., ..<", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, []string{"...", "..<"}, opts.NoSpaceOperators)
		}},
		{name: "swift version", option: "swiftversion", value: "5.9", check: func(t *testing.T, opts config.FormatOptions) {
			assert.Equal(t, "5.9", opts.SwiftVersion)
		}},
		{name: "swift version malformed", option: "swiftversion", value: "five", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			desc, ok := config.Lookup(testCase.option)
			require.True(t, ok)

			opts := config.DefaultFormatOptions()
			err := desc.Set(&opts, testCase.value)
			if testCase.wantErr {
				var optErr *config.OptionError
				require.True(t, errors.As(err, &optErr))
				assert.Equal(t, testCase.option, optErr.Option)
				return
			}
			require.NoError(t, err)
			testCase.check(t, opts)
		})
	}
}

func TestFormatOptionsCloneAndEqual(t *testing.T) {
	t.Parallel()

	opts := config.DefaultFormatOptions()
	clone := opts.Clone()
	assert.True(t, opts.Equal(clone))

	clone.Acronyms[0] = "XML"
	assert.Equal(t, "ID", opts.Acronyms[0])
	assert.False(t, opts.Equal(clone))
}
