package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goholo/internal/logger"
	"github.com/philipparndt/goholo/pkg/analysis"
	"github.com/philipparndt/goholo/pkg/viewer"
	"go.uber.org/zap"
)

const instructions = "Controls:\n" +
	"• Drag empty space to orbit\n" +
	"• Right-drag or Shift-drag to pan\n" +
	"• Drag an object to move it\n" +
	"• Ctrl/Cmd-drag an object to rotate it\n" +
	"• Drag a spring to stretch it\n" +
	"• Scroll to zoom\n" +
	"• Space pause, E explode, R reset\n" +
	"• Ctrl/Cmd+Z undo, Shift+Ctrl/Cmd+Z redo\n" +
	"• Ctrl/Cmd+S export"

// setupUI builds the window content around the scene view
func (app *App) setupUI() {
	app.view = NewSceneView(app.engine)
	app.view.OnChanged = app.updateStatus

	app.UI.pauseAction = widget.NewToolbarAction(theme.MediaPauseIcon(), func() { app.apply(viewer.ActionPause) })
	app.UI.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), app.showOpenDialog),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), app.showExportDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { app.apply(viewer.ActionUndo) }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { app.apply(viewer.ActionRedo) }),
		widget.NewToolbarSeparator(),
		app.UI.pauseAction,
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), func() { app.apply(viewer.ActionExplode) }),
		widget.NewToolbarAction(theme.ViewRestoreIcon(), func() { app.apply(viewer.ActionReset) }),
	)

	app.UI.info = widget.NewLabel("")
	app.UI.status = widget.NewLabel("")
	app.UI.format = widget.NewSelect([]string{"obj", "stl", "stl-binary"}, func(s string) {
		app.cfg.Export.Format = s
	})
	app.UI.format.SetSelected(app.cfg.Export.Format)

	help := widget.NewLabel(instructions)
	help.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene Information:"),
		widget.NewSeparator(),
		app.UI.info,
		widget.NewSeparator(),
		widget.NewLabel("Export Format:"),
		app.UI.format,
		widget.NewSeparator(),
		help,
	)
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		app.UI.toolbar,
		app.UI.status,
		nil,
		infoScroll,
		app.view,
	)
	app.window.SetContent(content)

	app.updateInfo()
	app.updateStatus()
}

// apply runs a toolbar or keyboard action on the engine
func (app *App) apply(action viewer.Action) {
	switch action {
	case viewer.ActionNone:
		return
	case viewer.ActionExport:
		app.showExportDialog()
		return
	}
	app.engine.Apply(action)
	app.view.Redraw()
	app.updateStatus()
}

// updateStatus mirrors mode, selection and history in the status bar
func (app *App) updateStatus() {
	if paused := app.engine.Paused(); paused != app.UI.showingPlay {
		app.UI.showingPlay = paused
		if paused {
			app.UI.pauseAction.Icon = theme.MediaPlayIcon()
		} else {
			app.UI.pauseAction.Icon = theme.MediaPauseIcon()
		}
		app.UI.toolbar.Refresh()
	}

	parts := []string{"Mode: " + app.engine.Mode().String()}
	if sel := app.engine.Selected(); sel >= 0 {
		obj := app.engine.Objects()[sel]
		name := obj.Kind.String()
		if obj.Label != "" {
			name += " " + obj.Label
		}
		parts = append(parts, fmt.Sprintf("Selected: #%d %s", sel, name))
	}
	parts = append(parts, fmt.Sprintf("Zoom: %.2f", app.engine.Camera().Zoom))
	history := fmt.Sprintf("History: %d", app.engine.HistoryLen())
	var steps []string
	if app.engine.CanUndo() {
		steps = append(steps, "undo")
	}
	if app.engine.CanRedo() {
		steps = append(steps, "redo")
	}
	if len(steps) > 0 {
		history += " (" + strings.Join(steps, "/") + ")"
	}
	parts = append(parts, history)
	app.UI.status.SetText(strings.Join(parts, "   "))
}

// updateInfo shows statistics for the loaded scene
func (app *App) updateInfo() {
	result := analysis.AnalyzeScene(app.engine.Scene(), app.cfg.Export.Divisor)

	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	text := fmt.Sprintf(
		"Scene: %s\nObjects: %d\nVertices: %d\nEdges: %d\nFaces: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		title,
		len(result.Objects),
		result.Vertices,
		result.EdgeCount,
		result.Faces,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	)
	if result.Unknown > 0 {
		text += fmt.Sprintf("\n\n%d unknown shape(s) not drawn", result.Unknown)
	}
	app.UI.info.SetText(text)
}

func (app *App) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := app.openScene(path); err != nil {
			dialog.ShowError(err, app.window)
		}
	}, app.window)
}

func (app *App) showExportDialog() {
	format, err := app.cfg.ExportFormat()
	if err != nil {
		dialog.ShowError(err, app.window)
		return
	}
	blob, err := app.engine.Export(format)
	if err != nil {
		dialog.ShowError(err, app.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(blob.Data); err != nil {
			dialog.ShowError(fmt.Errorf("failed to write export: %w", err), app.window)
			return
		}
		logger.Info("export saved", zap.String("uri", writer.URI().String()))
	}, app.window)
	save.SetFileName(blob.Name)

	if dir, err := filepath.Abs(app.cfg.Export.Directory); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			save.SetLocation(lister)
		}
	}
	save.Show()
}
