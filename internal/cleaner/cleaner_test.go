package cleaner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/kbtool-cli/internal/cleaner"
)

func TestStrip(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		changed int
	}{
		{"single gutter", "   1→package main\n", "package main\n", 1},
		{"keeps indentation", "  10→\treturn nil\n  11→    x := 1\n", "\treturn nil\n    x := 1\n", 2},
		{"double gutter", "     1→     1→const a = 1;\n", "const a = 1;\n", 1},
		{"untouched lines", "    indented\nplain\n", "    indented\nplain\n", 0},
		{"crlf", "   1→a\r\n   2→b\r\n", "a\r\nb\r\n", 2},
		{"arrow mid line", "x = 1→2\n", "x = 1→2\n", 0},
		{"empty", "", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, n := cleaner.Strip(c.in)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.changed, n)
		})
	}
}

func TestCleanFileInPlace(t *testing.T) {
	p := filepath.Join(t.TempDir(), "content.js")
	require.NoError(t, os.WriteFile(p, []byte("   1→function a() {\n   2→  return 1;\n   3→}\n"), 0o600))

	res, err := cleaner.CleanFile(p, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Changed)
	assert.False(t, res.Written)
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "→", "dry run must not modify the file")

	res, err = cleaner.CleanFile(p, false)
	require.NoError(t, err)
	assert.True(t, res.Written)
	b, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "function a() {\n  return 1;\n}\n", string(b))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCleanFileMissing(t *testing.T) {
	_, err := cleaner.CleanFile(filepath.Join(t.TempDir(), "nope.txt"), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
