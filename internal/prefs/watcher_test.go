package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_RehydratesOnExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.jsonl")

	p, err := NewJSONLPersistence(path)
	require.NoError(t, err)

	s := NewStore(Defaults(), p)
	defer s.Close()

	fw, err := NewFileWatcher(s, path)
	require.NoError(t, err)
	require.NoError(t, fw.Start())
	defer fw.Stop()

	ch := s.Subscribe()

	// Append a record the way a second process would
	line, err := json.Marshal(NewRecord(KeyFontSize, "25"))
	require.NoError(t, err)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.Write(append(line, '\n'))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	deadline := time.After(3 * time.Second)
	for {
		select {
		case event := <-ch:
			if event.Reason == ChangeHydrate {
				assert.Equal(t, "25", s.Get(KeyFontSize))
				return
			}
		case <-deadline:
			t.Fatal("timeout waiting for rehydration")
		}
	}
}

func TestFileWatcher_StopWithoutStart(t *testing.T) {
	s := NewStore(Defaults(), nil)
	defer s.Close()

	fw, err := NewFileWatcher(s, filepath.Join(t.TempDir(), "prefs.jsonl"))
	require.NoError(t, err)
	require.NoError(t, fw.Stop())
}
