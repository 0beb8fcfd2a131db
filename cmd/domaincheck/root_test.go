package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/domainkit/pkg/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command and returns stdout and the log output.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	a := &app{
		settings: Settings{Output: "json"},
		log:      slog.New(slog.NewJSONHandler(&logs, nil)),
		out:      &out,
		in:       strings.NewReader(stdin),
	}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), logs.String(), err
}

const validPerson = `
id: p-1
name: Ada Lovelace
email: ada@example.com
tags: [admin, member]
home:
  label: home
  city: London
  postcode: sw1a 1aa
`

func TestCreateCommand(t *testing.T) {
	t.Run("valid yaml document", func(t *testing.T) {
		path := writeFile(t, "person.yaml", validPerson)

		out, logs, err := run(t, "", "create", path)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, true, got["valid"])
		assert.Equal(t, "created", got["lifecycle"])

		person := got["person"].(map[string]any)
		assert.Equal(t, "Ada Lovelace", person["name"])
		assert.Equal(t, []any{"admin", "member"}, person["tags"])
		assert.Nil(t, person["phone"])
		assert.Equal(t, "SW1A1AA", person["home"].(map[string]any)["postcode"])
		assert.Contains(t, logs, "person is valid")
	})

	t.Run("invalid json document prints the error map", func(t *testing.T) {
		path := writeFile(t, "person.json", `{"name": "", "tags": ["admin", "bogus"]}`)

		out, logs, err := run(t, "", "create", path)
		require.ErrorIs(t, err, errInvalidDocument)

		var got result
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.False(t, got.Valid)
		assert.Equal(t, []string{"field is required"}, got.Errors.Get("name"))
		assert.Equal(t, []string{"undefined flag: bogus"}, got.Errors.Get("tags[1]"))
		assert.Len(t, got.Errors, 2)
		assert.Contains(t, logs, "person is invalid")
		assert.Contains(t, logs, `"validation"`)
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, _, err := run(t, validPerson, "create", "-")
		require.NoError(t, err)
		assert.Contains(t, out, `"valid": true`)
	})

	t.Run("yaml output", func(t *testing.T) {
		path := writeFile(t, "person.yaml", validPerson)

		out, _, err := run(t, "", "create", path, "-o", "yaml")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, true, got["valid"])
		assert.Equal(t, "p-1", got["person"].(map[string]any)["id"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "create", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidDocument)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeFile(t, "person.yaml", "name: [unclosed")
		_, _, err := run(t, "", "create", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("unknown output format", func(t *testing.T) {
		path := writeFile(t, "person.yaml", validPerson)
		_, _, err := run(t, "", "create", path, "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("requires one argument", func(t *testing.T) {
		_, _, err := run(t, "", "create")
		require.Error(t, err)
	})
}

func TestUpdateCommand(t *testing.T) {
	base := writeFile(t, "person.yaml", validPerson)

	t.Run("applies the patch", func(t *testing.T) {
		patch := writeFile(t, "patch.yaml", "nickname: Ada\ntags: [guest]\n")

		out, _, err := run(t, "", "update", base, patch)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "updated", got["lifecycle"])

		person := got["person"].(map[string]any)
		assert.Equal(t, "Ada", person["nickname"])
		assert.Equal(t, "Ada Lovelace", person["name"])
		assert.Equal(t, []any{"guest"}, person["tags"])
	})

	t.Run("stdin for both documents", func(t *testing.T) {
		out, _, err := run(t, validPerson, "update", "-", "-")
		require.ErrorIs(t, err, errStdinTwice)
		assert.Empty(t, out)
	})

	t.Run("stdin for one document", func(t *testing.T) {
		out, _, err := run(t, "nickname: Ada\n", "update", base, "-")
		require.NoError(t, err)
		assert.Contains(t, out, `"nickname": "Ada"`)
	})

	t.Run("invalid patch", func(t *testing.T) {
		patch := writeFile(t, "patch.json", `{"addresses": [{"label": "office", "city": "", "postcode": "CB2 1TN"}]}`)

		out, _, err := run(t, "", "update", base, patch)
		require.ErrorIs(t, err, errInvalidDocument)

		var got result
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []string{"field is required"}, got.Errors.Get("addresses[0].city"))
	})
}

func TestSettings(t *testing.T) {
	t.Setenv("DOMAINCHECK_ENV", "prod")
	t.Setenv("DOMAINCHECK_LOG_LEVEL", "warn")
	t.Setenv("DOMAINCHECK_OUTPUT", "yaml")

	s, err := config.Parse[Settings](config.WithPrefix(envPrefix), config.WithEnvFiles())
	require.NoError(t, err)
	assert.Equal(t, Settings{Env: "prod", LogLevel: "warn", Output: "yaml"}, s)
}

func TestNewLogger(t *testing.T) {
	t.Run("explicit settings override the environment preset", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(Settings{Env: "development", LogLevel: "warn", LogFormat: "json"}, &buf)
		require.NoError(t, err)

		log.Info("hidden")
		log.Warn("shown")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
		assert.Equal(t, "shown", rec["msg"])
		assert.Equal(t, serviceName, rec["service"])
		assert.Equal(t, "development", rec["env"])
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := newLogger(Settings{LogLevel: "loud"}, io.Discard)
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := newLogger(Settings{LogFormat: "xml"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]outputFormat{
		"json": outputJSON,
		"YAML": outputYAML,
		"yml":  outputYAML,
	} {
		got, err := parseOutputFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := parseOutputFormat("toml")
	assert.Error(t, err)
}
