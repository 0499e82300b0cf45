package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/philipparndt/goholo/pkg/geometry"
	"github.com/philipparndt/goholo/pkg/viewer"
)

// shortcut is a modified key the window listens for
type shortcut struct {
	key fyne.KeyName
	mod fyne.KeyModifier
}

// shortcuts are the modifier chords; plain keys arrive through OnTypedKey
var shortcuts = []shortcut{
	{fyne.KeyZ, fyne.KeyModifierShortcutDefault},
	{fyne.KeyZ, fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
	{fyne.KeyY, fyne.KeyModifierShortcutDefault},
	{fyne.KeyS, fyne.KeyModifierShortcutDefault},
}

func modifiers(m fyne.KeyModifier) viewer.Modifiers {
	var out viewer.Modifiers
	if m&fyne.KeyModifierShift != 0 {
		out |= viewer.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= viewer.ModCtrl
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= viewer.ModMeta
	}
	return out
}

func button(b desktop.MouseButton) viewer.Button {
	if b&desktop.MouseButtonSecondary != 0 {
		return viewer.ButtonSecondary
	}
	return viewer.ButtonPrimary
}

func point(p fyne.Position) geometry.Vector2 {
	return geometry.NewVector2(float64(p.X), float64(p.Y))
}

// bindKeys routes keyboard input on the window canvas to actions
func (app *App) bindKeys() {
	c := app.window.Canvas()
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		app.apply(viewer.KeyAction(string(ev.Name), 0))
	})
	for _, sc := range shortcuts {
		action := viewer.KeyAction(string(sc.key), modifiers(sc.mod))
		c.AddShortcut(&desktop.CustomShortcut{KeyName: sc.key, Modifier: sc.mod}, func(fyne.Shortcut) {
			app.apply(action)
		})
	}
}
