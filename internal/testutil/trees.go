package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// ParseTree decodes an inline tree document and fails the test on error.
func ParseTree(t testing.TB, src string) *syntax.Tree {
	t.Helper()
	tree, err := syntax.Decode([]byte(src))
	require.NoError(t, err)
	return tree
}

// WriteTree writes src to dir/name, creating parent directories, and
// returns the full path.
func WriteTree(t testing.TB, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}
