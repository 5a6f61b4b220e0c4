package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_MatchesChecksum(t *testing.T) {
	data := []byte(strings.Repeat("salary;", 1000))

	d := NewDigest()
	_, err := d.Write(data[:100])
	require.NoError(t, err)
	_, err = d.Write(data[100:])
	require.NoError(t, err)

	assert.Equal(t, Checksum(data), d.Sum())
	assert.Len(t, d.Sum(), 64)
}

func TestChecksum_Empty(t *testing.T) {
	// BLAKE2b-256 of the empty string.
	assert.Equal(t, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8", Checksum(nil))
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.csv")
	data := []byte("id;name;salary\n1;Ada;1000\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	sum, err := FileChecksum(path)
	require.NoError(t, err)
	assert.Equal(t, Checksum(data), sum)

	_, err = FileChecksum(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
