package manpager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDecl(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeDecl(t, `
program: mytool
description: does tool things
arguments:
  - name: --config
    aliases: [-c, --config]
    value: true
    default: mytool.conf
    help: configuration file
  - name: target
    positional: true
    required: true
    help: what to operate on
commands:
  - program: clean
    description: remove build artifacts
`)
	decl, err := LoadFile(path)
	require.NoError(t, err)
	spec, err := Introspect(decl)
	require.NoError(t, err)

	assert.Equal(t, "mytool", spec.Name)
	assert.Equal(t, "does tool things", spec.Short)
	require.Len(t, spec.Args, 2)
	assert.Equal(t, []string{"-c", "--config"}, spec.Args[0].Aliases)
	assert.Equal(t, "mytool.conf", spec.Args[0].Default)
	assert.True(t, spec.Args[1].Positional)
	assert.True(t, spec.Args[1].Required)
	require.Len(t, spec.Commands, 1)
	assert.Equal(t, "clean", spec.Commands[0].Name)
}

func TestLoadFileRemarks(t *testing.T) {
	path := writeDecl(t, `
program: mytool
description: does tool things
remarks: Report bugs upstream.
`)
	decl, err := LoadFile(path)
	require.NoError(t, err)
	spec, err := Introspect(decl)
	require.NoError(t, err)
	assert.Equal(t, "Report bugs upstream.", spec.Epilog)
}

func TestLoadFileValueInference(t *testing.T) {
	path := writeDecl(t, `
program: mytool
arguments:
  - name: --level
    metavar: LEVEL
  - name: --cache
    default: /tmp/cache
  - name: --quiet
`)
	decl, err := LoadFile(path)
	require.NoError(t, err)
	args := decl.Arguments()
	require.Len(t, args, 3)
	assert.True(t, args[0].TakesValue, "metavar implies a value")
	assert.True(t, args[1].TakesValue, "default implies a value")
	assert.False(t, args[2].TakesValue)
	assert.Equal(t, []string{"--quiet"}, args[2].Aliases, "aliases default to the name")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	var notFound *ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeDecl(t, "program: [unclosed")
	_, err := LoadFile(path)
	var unsupported *UnsupportedDeclarationError
	require.ErrorAs(t, err, &unsupported)
}

func TestLoadFileUnknownField(t *testing.T) {
	path := writeDecl(t, "program: mytool\nbanner: nope\n")
	_, err := LoadFile(path)
	var unsupported *UnsupportedDeclarationError
	require.ErrorAs(t, err, &unsupported)
}

func TestLoadFileMissingProgramName(t *testing.T) {
	path := writeDecl(t, "description: nameless\n")
	_, err := LoadFile(path)
	var unsupported *UnsupportedDeclarationError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, unsupported.Reason, "program name")
}
