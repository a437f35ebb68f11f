package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrixctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadProfile_Defaults(t *testing.T) {
	p, err := loadProfile("")
	require.NoError(t, err)
	require.Equal(t, DefaultProfile(), p)
}

func TestLoadProfile_PartialFileKeepsDefaults(t *testing.T) {
	p, err := loadProfile(writeProfile(t, "rows = 5\norder = \"m\"\nreverse = true\n"))
	require.NoError(t, err)
	require.Equal(t, 5, p.Rows)
	require.Equal(t, DefaultProfile().Cols, p.Cols)
	require.Equal(t, orderM, p.Order)
	require.True(t, p.Reverse)
	require.Equal(t, DefaultProfile().Slack, p.Slack)
}

func TestLoadProfile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "rows = 2\ncolumns = 3\n", "unknown keys: columns"},
		{"bad order", "order = \"x\"\n", "unknown order"},
		{"null shape", "cols = 0\n", "shape"},
		{"bad slack", "slack = 150\n", "slack 150"},
		{"syntax", "rows = \n", "load profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadProfile(writeProfile(t, tt.body))
			require.ErrorContains(t, err, tt.want)
		})
	}

	_, err := loadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
