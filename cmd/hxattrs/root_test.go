package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonSource = `package widgets

import "github.com/pthm/hxattrs"

type ButtonProps struct {
	hxattrs.Element ` + "`hxattrs:\"omit=class\"`" + `
}
`

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "hxattrs", cmd.Use)
	assert.Contains(t, cmd.Long, "SpreadAttrs")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"generate", "clean", "element", "vocab", "render", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "hxattrs.yaml", configFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "info", levelFlag.DefValue)
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	genCmd, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	assert.NotNil(t, genCmd.Flags().Lookup("dry-run"))
	watchFlag := genCmd.Flags().Lookup("watch")
	require.NotNil(t, watchFlag)
	assert.Equal(t, "w", watchFlag.Shorthand)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hxattrs version "+version+" (vocabulary v2)\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := runCLI(t, "", "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, _, err := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "version")
	assert.Error(t, err)
}

func TestConfigPackagesAreDefaultPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "button.go", buttonSource)
	config := writeFile(t, t.TempDir(), "hxattrs.yaml", "packages: ["+dir+"]\nlog_level: debug\n")

	_, stderr, err := runCLI(t, "", "--config", config, "generate")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "button_attrs.go"))
	assert.Contains(t, stderr, "level=INFO")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "button.go", buttonSource)

	t.Run("dry run", func(t *testing.T) {
		_, stderr, err := runCLI(t, "", "generate", "--dry-run", dir)
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "button_attrs.go"))
		assert.Contains(t, stderr, "button_attrs.go")
	})

	t.Run("write", func(t *testing.T) {
		_, _, err := runCLI(t, "", "generate", dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "button_attrs.go"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `hxattrs.MustOmit("class")`)
	})

	t.Run("clean", func(t *testing.T) {
		_, _, err := runCLI(t, "", "clean", dir)
		require.NoError(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "button_attrs.go"))
	})
}

func TestGenerateCommandRejectsUnknownName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "card.go", strings.Replace(buttonSource, "omit=class", "omit=colour", 1))

	_, _, err := runCLI(t, "", "generate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot omit "colour"`)
	assert.Contains(t, err.Error(), "card.go:6")
}
