// Package app is the desktop viewer built on fyne.
package app

import (
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/philipparndt/goholo/internal/config"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/viewer"
	"go.uber.org/zap"
)

// ID is the fyne application identifier used for preferences storage
const ID = "io.github.philipparndt.goholo"

// sidePanelWidth is reserved next to the scene when sizing the window
const sidePanelWidth = 260

// New creates a viewer for the scene at scenePath; an empty path shows
// the built-in demo.
func New(a fyne.App, cfg *config.Config, scenePath string) (*App, error) {
	app := &App{
		cfg:    cfg,
		window: a.NewWindow("goholo"),
		engine: viewer.NewEngine(cfg.EngineOptions()),
		stop:   make(chan struct{}),
	}

	if err := app.openScene(scenePath); err != nil {
		app.window.Close()
		return nil, err
	}
	app.setupUI()
	app.bindKeys()

	app.window.SetOnClosed(app.shutdown)
	app.window.Resize(fyne.NewSize(float32(cfg.Render.Width)+sidePanelWidth, float32(cfg.Render.Height)))
	return app, nil
}

// Run opens the viewer window and blocks until it is closed
func Run(cfg *config.Config, scenePath string) error {
	a := fyneapp.NewWithID(ID)
	app, err := New(a, cfg, scenePath)
	if err != nil {
		return err
	}

	app.startTicker()
	app.window.ShowAndRun()
	return nil
}

// startTicker advances the simulation at the configured frame rate
func (app *App) startTicker() {
	fps := app.cfg.Render.FPS
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		last := time.Now()

		for {
			select {
			case <-app.stop:
				return
			case now := <-ticker.C:
				dt := now.Sub(last).Seconds()
				last = now
				fyne.Do(func() {
					app.engine.Update(dt)
					app.view.Redraw()
				})
			}
		}
	}()
	logger.Debug("frame ticker started", zap.Int("fps", fps))
}

// shutdown stops background work when the window closes
func (app *App) shutdown() {
	select {
	case <-app.stop:
		return
	default:
		close(app.stop)
	}
	app.closeFileWatcher()
	logger.Sync()
}
