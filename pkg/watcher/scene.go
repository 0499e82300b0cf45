package watcher

import (
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/scene"
	"go.uber.org/zap"
)

// WatchScene reparses the scene file at path every time it changes and
// hands the result to onLoad. Parse failures go to onError and leave the
// previous scene in place. Callbacks run on a timer goroutine; GUI hosts
// must hop back to their own thread.
func WatchScene(path string, onLoad func(*scene.Description), onError func(error)) (*FileWatcher, error) {
	fw, err := NewFileWatcher(DefaultDebounce)
	if err != nil {
		return nil, err
	}
	if err := fw.WatchScene(path, onLoad, onError); err != nil {
		_ = fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}

// WatchScene adds a scene file to a running watcher. Hosts switching scenes
// call RemoveAll first so only the new file reloads.
func (fw *FileWatcher) WatchScene(path string, onLoad func(*scene.Description), onError func(error)) error {
	return fw.Watch([]string{path}, func(changed string) {
		desc, err := scene.LoadFile(changed)
		if err != nil {
			logger.Warn("scene reload failed", zap.String("file", changed), zap.Error(err))
			if onError != nil {
				onError(err)
			}
			return
		}
		logger.Info("scene reloaded", zap.String("file", changed), zap.Int("elements", len(desc.Elements)))
		onLoad(desc)
	})
}
