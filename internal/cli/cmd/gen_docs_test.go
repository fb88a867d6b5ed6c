package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/script"
)

func TestGenDocs_MarkdownIncludesScriptReference(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "gen-docs", "--format", "markdown", "--output", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "tiler_layout.md"))
	assert.FileExists(t, filepath.Join(dir, "tiler_preview.md"))

	ref, err := os.ReadFile(filepath.Join(dir, "tiler-script.md"))
	require.NoError(t, err)
	for _, v := range script.Verbs() {
		assert.Contains(t, string(ref), v.Usage())
	}
	assert.Contains(t, string(ref), "split Logs v")
}

func TestGenDocs_ManWritesSectionFivePage(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "gen-docs", "--output", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "tiler-layout.1"))
	page, err := os.ReadFile(filepath.Join(dir, "tiler-script.5"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "ratio")
	assert.Contains(t, string(page), "toggle")
}

func TestGenDocs_RejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "gen-docs", "--format", "pdf", "--output", t.TempDir())
	assert.ErrorContains(t, err, "unsupported format")
}
