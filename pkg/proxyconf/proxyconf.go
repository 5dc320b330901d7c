// Package proxyconf owns the model-alias mapping consumed by the external
// OpenAI-compatible proxy. The proxy process itself is unmodified
// third-party software; this repo only authors and validates its mapping.
package proxyconf

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the mapping file: user-facing aliases to backend model
// identifiers, plus passthrough proxy settings.
type Document struct {
	ModelList []ModelEntry           `yaml:"model_list"`
	Settings  map[string]interface{} `yaml:"litellm_settings,omitempty"`
}

// ModelEntry binds one alias to its backend invocation parameters.
type ModelEntry struct {
	ModelName string       `yaml:"model_name"`
	Params    InvokeParams `yaml:"litellm_params"`
}

// InvokeParams is the backend side of a mapping entry. Model carries a
// provider prefix, e.g. "bedrock/anthropic.claude-3-5-sonnet-20241022-v2:0".
type InvokeParams struct {
	Model      string `yaml:"model"`
	RegionName string `yaml:"aws_region_name,omitempty"`
	APIBase    string `yaml:"api_base,omitempty"`
}

// Load reads and parses a mapping file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read proxy config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a mapping document from YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse proxy config: %w", err)
	}
	return &doc, nil
}

// Validate checks the invariants the external proxy relies on: at least one
// entry, non-empty names, unique aliases, provider-prefixed backend IDs.
func (d *Document) Validate() error {
	if len(d.ModelList) == 0 {
		return fmt.Errorf("proxy config has no model_list entries")
	}

	seen := make(map[string]bool, len(d.ModelList))
	for i, entry := range d.ModelList {
		if entry.ModelName == "" {
			return fmt.Errorf("model_list[%d]: empty model_name", i)
		}
		if seen[entry.ModelName] {
			return fmt.Errorf("model_list[%d]: duplicate alias %q", i, entry.ModelName)
		}
		seen[entry.ModelName] = true

		if entry.Params.Model == "" {
			return fmt.Errorf("model_list[%d] (%s): empty backend model", i, entry.ModelName)
		}
		if !strings.Contains(entry.Params.Model, "/") {
			return fmt.Errorf("model_list[%d] (%s): backend model %q lacks a provider prefix", i, entry.ModelName, entry.Params.Model)
		}
	}
	return nil
}

// Aliases returns the alias to backend-model table, for display.
func (d *Document) Aliases() map[string]string {
	out := make(map[string]string, len(d.ModelList))
	for _, entry := range d.ModelList {
		out[entry.ModelName] = entry.Params.Model
	}
	return out
}

// SortedAliases returns alias names in stable order.
func (d *Document) SortedAliases() []string {
	names := make([]string, 0, len(d.ModelList))
	for _, entry := range d.ModelList {
		names = append(names, entry.ModelName)
	}
	sort.Strings(names)
	return names
}

// Render serializes the document back to YAML.
func (d *Document) Render() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("render proxy config: %w", err)
	}
	return data, nil
}
