package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("# cats\ncat1.png\n\n  cat2.png  \n#dogs\ndog.png"), 0644))

	lines, err := ReadAllLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat1.png", "cat2.png", "dog.png"}, lines)

	_, err = ReadAllLines(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
