package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar_RendersDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf, "Uploading")

	p.Start("payroll.csv", 3*64*1024)
	p.Advance(64 * 1024)
	p.Advance(64 * 1024)
	p.Advance(64 * 1024)
	p.Done()

	assert.Contains(t, buf.String(), "Uploading payroll.csv")
	assert.Nil(t, p.bar)
}

func TestProgressBar_AdvanceBeforeStartIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf, "Downloading")

	p.Advance(10)
	p.Done()
	assert.Empty(t, buf.String())
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
