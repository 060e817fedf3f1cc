package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSuccessJS(t *testing.T) {
	dir := t.TempDir()
	src := writeSchema(t, dir, "source.json", `{"type": "string"}`)
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	var stdout, stderr bytes.Buffer
	err := run(cfg, src, dst, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "function(input)")
	assert.Contains(t, stdout.String(), "parseInt(input)")
}

func TestRunSuccessGo(t *testing.T) {
	dir := t.TempDir()
	src := writeSchema(t, dir, "source.json", `{"type": "string"}`)
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	cfg.target = "go"
	var stdout, stderr bytes.Buffer
	err := run(cfg, src, dst, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "func Transform(input any) any")
}

func TestRunNoPathExitsThree(t *testing.T) {
	dir := t.TempDir()
	src := writeSchema(t, dir, "source.json", `{"type": "array", "items": {"type": "number"}}`)
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	var stdout, stderr bytes.Buffer
	err := run(cfg, src, dst, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, exitNoPathError, exitCodeFor(err))
}

func TestRunInvalidSchemaExitsTwo(t *testing.T) {
	dir := t.TempDir()
	src := writeSchema(t, dir, "source.json", `{"type": "array"}`) // no items
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	var stdout, stderr bytes.Buffer
	err := run(cfg, src, dst, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, exitParseError, exitCodeFor(err))
}

func TestRunMissingFileExitsOne(t *testing.T) {
	dir := t.TempDir()
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	var stdout, stderr bytes.Buffer
	err := run(cfg, filepath.Join(dir, "missing.json"), dst, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, exitIOError, exitCodeFor(err))
}

func TestRunUnknownTargetExitsOne(t *testing.T) {
	dir := t.TempDir()
	src := writeSchema(t, dir, "source.json", `{"type": "string"}`)
	dst := writeSchema(t, dir, "target.json", `{"type": "number"}`)

	cfg := newRunConfig()
	cfg.target = "rust"
	var stdout, stderr bytes.Buffer
	err := run(cfg, src, dst, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, exitIOError, exitCodeFor(err))
}
