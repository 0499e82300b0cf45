package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goholo/internal/config"
	"github.com/philipparndt/goholo/pkg/viewer"
	"github.com/philipparndt/goholo/pkg/watcher"
)

// App is the desktop viewer. Every field is owned by the fyne main
// goroutine; background goroutines hand work over with fyne.Do.
type App struct {
	cfg    *config.Config
	window fyne.Window
	engine *viewer.Engine
	view   *SceneView

	UI        UIState
	FileWatch FileWatchState

	stop chan struct{}
}

// UIState holds the widgets that mirror engine state
type UIState struct {
	toolbar     *widget.Toolbar
	pauseAction *widget.ToolbarAction
	info        *widget.Label
	status      *widget.Label
	format      *widget.Select
	showingPlay bool
}

// FileWatchState tracks the scene file and its watcher
type FileWatchState struct {
	scenePath   string
	fileWatcher *watcher.FileWatcher
}
