package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDir_ReadDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "students.csv", "\xEF\xBB\xBFCODIGO_ESTUDIANTE,LOGIN\n1,a\n")

	text, err := NewDir(dir).ReadDataset(context.Background(), "students.csv")
	require.NoError(t, err)
	assert.Equal(t, "CODIGO_ESTUDIANTE,LOGIN\n1,a\n", text)
}

func TestDir_ReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "latin1.csv", "PROGRAMA_1\nEconom\xEDa\n")

	text, err := NewDir(dir).ReadDataset(context.Background(), "latin1.csv")
	require.NoError(t, err)
	assert.Equal(t, "PROGRAMA_1\nEconom?a\n", text)
}

func TestDir_Missing(t *testing.T) {
	_, err := NewDir(t.TempDir()).ReadDataset(context.Background(), "absent.csv")

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrSourceNotFound))
	assert.Contains(t, err.Error(), "absent.csv")
}

func TestDir_RejectsPathEscape(t *testing.T) {
	for _, name := range []string{"../secret.csv", "sub/file.csv", ".."} {
		t.Run(name, func(t *testing.T) {
			_, err := NewDir(t.TempDir()).ReadDataset(context.Background(), name)
			require.Error(t, err)
			assert.False(t, errors.Is(err, core.ErrSourceNotFound))
		})
	}
}

func TestDir_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "students.csv", "A\n1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDir(dir).ReadDataset(ctx, "students.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
