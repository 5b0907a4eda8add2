package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherSignalsOnAssetWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, MapFile), NewMap().Serialize(), 0o644))

	select {
	case <-w.C():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after asset write")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	select {
	case <-w.C():
		t.Fatal("unexpected signal for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
