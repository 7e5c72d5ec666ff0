package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientcmd "github.com/donaldgifford/rental-upsell/cmd/upsell/cmd"
)

func TestGenMarkdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "upsell")

	require.NoError(t, genMarkdown(clientcmd.Root(), dir))

	for _, name := range []string{"upsell.md", "upsell_recommend.md", "upsell_personas_list.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestWriteSpec(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeSpec(dir))

	data, err := os.ReadFile(filepath.Join(dir, "openapi.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/api/v1/recommendations")
	assert.FileExists(t, filepath.Join(dir, "openapi.yaml"))
}
