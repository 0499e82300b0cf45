package app

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/scene"
	"github.com/philipparndt/goholo/pkg/watcher"
	"go.uber.org/zap"
)

// loadDescription reads the scene at path, or the built-in demo when path
// is empty
func loadDescription(path string) (*scene.Description, error) {
	if path == "" {
		return scene.Demo(), nil
	}
	return scene.LoadFile(path)
}

// windowTitle names the window after the scene
func windowTitle(desc *scene.Description, path string) string {
	switch {
	case desc.Title != "":
		return "goholo - " + desc.Title
	case path != "":
		return "goholo - " + filepath.Base(path)
	default:
		return "goholo"
	}
}

// openScene loads a scene file into the engine and watches it for changes
func (app *App) openScene(path string) error {
	desc, err := loadDescription(path)
	if err != nil {
		return fmt.Errorf("failed to open scene: %w", err)
	}

	app.applyScene(desc, path)
	app.FileWatch.scenePath = path

	if err := app.setupFileWatcher(); err != nil {
		logger.Warn("scene will not reload on change", zap.String("file", path), zap.Error(err))
	}
	return nil
}

// applyScene swaps the engine's scene (must be called on the main goroutine)
func (app *App) applyScene(desc *scene.Description, path string) {
	app.engine.Load(desc)
	app.window.SetTitle(windowTitle(desc, path))
	if app.view != nil {
		app.view.Redraw()
		app.updateInfo()
		app.updateStatus()
	}
}

// setupFileWatcher points the watcher at the current scene file, reusing
// the running watcher when there is one
func (app *App) setupFileWatcher() error {
	path := app.FileWatch.scenePath
	if path == "" {
		app.closeFileWatcher()
		return nil
	}

	onLoad := func(desc *scene.Description) {
		fyne.Do(func() {
			app.applyScene(desc, path)
		})
	}
	onError := func(err error) {
		fyne.Do(func() {
			if app.UI.status != nil {
				app.UI.status.SetText("Reload failed: " + err.Error())
			}
		})
	}

	if fw := app.FileWatch.fileWatcher; fw != nil {
		if err := fw.RemoveAll(); err != nil {
			logger.Debug("clearing watched files", zap.Error(err))
		}
		if err := fw.WatchScene(path, onLoad, onError); err != nil {
			app.closeFileWatcher()
			return err
		}
		logger.Info("watching scene for changes", zap.String("file", path))
		return nil
	}

	fw, err := watcher.WatchScene(path, onLoad, onError)
	if err != nil {
		return err
	}

	logger.Info("watching scene for changes", zap.String("file", path))
	app.FileWatch.fileWatcher = fw
	return nil
}

func (app *App) closeFileWatcher() {
	if app.FileWatch.fileWatcher == nil {
		return
	}
	if err := app.FileWatch.fileWatcher.Close(); err != nil {
		logger.Debug("closing watcher", zap.Error(err))
	}
	app.FileWatch.fileWatcher = nil
}
