package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 5 * time.Second

func TestFileWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elements: []\n"), 0644))

	fw, err := NewFileWatcher(50 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("elements: []\n"), 0644))
	}

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(waitFor):
		t.Fatal("no change reported")
	}

	// the burst collapses into one callback
	select {
	case <-changed:
		t.Fatal("burst reported more than once")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	fw, err := NewFileWatcher(20 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 1)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case p := <-changed:
		t.Fatalf("unexpected callback for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchSceneReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elements:\n  - shape: box\n"), 0644))

	loaded := make(chan *scene.Description, 4)
	failed := make(chan error, 4)
	fw, err := WatchScene(path, func(d *scene.Description) { loaded <- d }, func(err error) { failed <- err })
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"title": "NEW", "elements": [{"shape": "gear"}, {"shape": "cone"}]}`), 0644))

	select {
	case d := <-loaded:
		assert.Equal(t, "NEW", d.Title)
		assert.Len(t, d.Elements, 2)
	case err := <-failed:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(waitFor):
		t.Fatal("scene was not reloaded")
	}

	require.NoError(t, os.WriteFile(path, []byte("elements: [unterminated"), 0644))

	select {
	case err := <-failed:
		assert.Error(t, err)
	case d := <-loaded:
		t.Fatalf("invalid scene loaded: %+v", d)
	case <-time.After(waitFor):
		t.Fatal("parse error was not reported")
	}
}

func TestWatchSceneMissingDirectory(t *testing.T) {
	_, err := WatchScene(filepath.Join(t.TempDir(), "missing", "scene.yaml"), func(*scene.Description) {}, nil)
	assert.Error(t, err)
}

func TestRemoveAllRetargetsWatcher(t *testing.T) {
	first := filepath.Join(t.TempDir(), "first.yaml")
	second := filepath.Join(t.TempDir(), "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("elements: []\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("elements: []\n"), 0644))

	loaded := make(chan *scene.Description, 4)
	fw, err := WatchScene(first, func(d *scene.Description) { loaded <- d }, nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.RemoveAll())
	require.NoError(t, fw.WatchScene(second, func(d *scene.Description) { loaded <- d }, nil))

	require.NoError(t, os.WriteFile(first, []byte("title: OLD\nelements: []\n"), 0644))
	select {
	case d := <-loaded:
		t.Fatalf("removed file reloaded: %q", d.Title)
	case <-time.After(400 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(second, []byte("title: SECOND\nelements: []\n"), 0644))
	select {
	case d := <-loaded:
		assert.Equal(t, "SECOND", d.Title)
	case <-time.After(waitFor):
		t.Fatal("retargeted file was not reloaded")
	}
}
