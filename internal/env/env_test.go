package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromList(t *testing.T) {
	vars := FromList([]string{"A=1", "B=x=y", "EMPTY=", "broken", "=nokey"})

	assert.Equal(t, Vars{"A": "1", "B": "x=y", "EMPTY": ""}, vars)
}

func TestMerge_LaterWins(t *testing.T) {
	merged := Merge(Vars{"A": "1", "B": "1"}, nil, Vars{"B": "2", "C": "3"})

	assert.Equal(t, Vars{"A": "1", "B": "2", "C": "3"}, merged)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nRESTY_SCHEMA=api/schema.yaml\nRESTY_LOG_LEVEL=\"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	vars, err := LoadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, Vars{"RESTY_SCHEMA": "api/schema.yaml", "RESTY_LOG_LEVEL": "debug"}, vars)
}

func TestLoadOptionalEnvFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		vars, err := LoadOptionalEnvFile("")
		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("missing file", func(t *testing.T) {
		vars, err := LoadOptionalEnvFile(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("directory is an error", func(t *testing.T) {
		_, err := LoadOptionalEnvFile(t.TempDir())
		assert.Error(t, err)
	})
}
