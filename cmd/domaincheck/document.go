package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/domainkit"
)

// result is what every command prints.
type result struct {
	Valid     bool                       `json:"valid" yaml:"valid"`
	Lifecycle string                     `json:"lifecycle,omitempty" yaml:"lifecycle,omitempty"`
	Person    map[string]any             `json:"person,omitempty" yaml:"person,omitempty"`
	Errors    domainkit.ValidationErrors `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// readDocument decodes a YAML or JSON file into v. A path of "-" reads
// standard input.
func readDocument(path string, stdin io.Reader, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	// JSON documents are valid YAML.
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeResult(w io.Writer, format outputFormat, r result) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return nil
	}
}
