package main

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/supporttools/qa/pkg/config"
	"github.com/supporttools/qa/pkg/version"
)

// Render formats info as text, json or yaml
func Render(info version.VersionInfo, format string) (string, error) {
	switch strings.ToLower(format) {
	case config.FormatText, "":
		return info.String(), nil
	case config.FormatJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal version as json")
		}
		return string(data), nil
	case config.FormatYAML:
		data, err := yaml.Marshal(info)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal version as yaml")
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", errors.Errorf("unsupported output format %q", format)
	}
}
