package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/supporttools/qa/pkg/version"
)

func TestRender(t *testing.T) {
	info := version.VersionInfo{Version: "0.1.0", GitCommit: "abc1234", BuildTime: "2026-10-18T00:00:00Z"}

	t.Run("Text", func(t *testing.T) {
		out, err := Render(info, "text")
		require.NoError(t, err)
		assert.Equal(t, "Version: 0.1.0\nGitCommit: abc1234\nBuildTime: 2026-10-18T00:00:00Z", out)
	})

	t.Run("Empty format defaults to text", func(t *testing.T) {
		out, err := Render(info, "")
		require.NoError(t, err)
		assert.Equal(t, info.String(), out)
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := Render(info, "JSON")
		require.NoError(t, err)

		var got version.VersionInfo
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, info, got)
		assert.Contains(t, out, `"version": "0.1.0"`)
	})

	t.Run("YAML", func(t *testing.T) {
		out, err := Render(info, "yaml")
		require.NoError(t, err)

		var got version.VersionInfo
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, info, got)
		assert.Contains(t, out, "version: 0.1.0")
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := Render(info, "xml")
		assert.Error(t, err)
	})
}
