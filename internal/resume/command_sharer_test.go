package resume

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("share helper scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "share.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestNewCommandSharerBlank(t *testing.T) {
	assert.Nil(t, NewCommandSharer("   "))
	assert.False(t, NewCommandSharer("").Available())
}

func TestCommandSharerPassesTemporaryCopy(t *testing.T) {
	record := filepath.Join(t.TempDir(), "record")
	script := writeScript(t, `echo "$2" > "`+record+`"; cp "$2" "`+record+`.pdf"`)

	sharer := NewCommandSharer(script + " --title")
	require.True(t, sharer.Available())
	require.NoError(t, sharer.Share(context.Background(), pdfAsset()))

	copied, err := os.ReadFile(record + ".pdf")
	require.NoError(t, err)
	assert.Equal(t, samplePDF, copied)

	raw, err := os.ReadFile(record)
	require.NoError(t, err)
	staged := strings.TrimSpace(string(raw))
	assert.Equal(t, "Gunvanth_Madabattula_Resume.pdf", filepath.Base(staged))
	_, statErr := os.Stat(staged)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "staged copy must be removed after sharing")
}

func TestCommandSharerInterruptedMeansCancelled(t *testing.T) {
	sharer := NewCommandSharer(writeScript(t, "exit 130"))

	err := sharer.Share(context.Background(), pdfAsset())
	assert.ErrorIs(t, err, ErrShareCancelled)
}

func TestCommandSharerFailure(t *testing.T) {
	sharer := NewCommandSharer(writeScript(t, "echo 'no share targets' >&2; exit 1"))

	err := sharer.Share(context.Background(), pdfAsset())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrShareCancelled)
	assert.Contains(t, err.Error(), "no share targets")
}

func TestCommandSharerMissingBinary(t *testing.T) {
	sharer := NewCommandSharer("definitely-not-a-share-helper-xyz")
	assert.False(t, sharer.Available())
	assert.Error(t, sharer.Share(context.Background(), pdfAsset()))
}
