package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
	inputui "github.com/xieguanglei/ooxml-viewer/internal/ui/input"
	renderui "github.com/xieguanglei/ooxml-viewer/internal/ui/render"
)

// Application represents the running viewer.
type Application struct {
	screen         tcell.Screen
	state          *statepkg.AppState
	reducer        *statepkg.StateReducer
	renderer       *renderui.Renderer
	input          *inputui.InputHandler
	actionCh       chan statepkg.Action
	shouldQuit     bool
	packagePath    string
	exportDir      string
	clipboardCmd   []string
	clipboardAvail bool
	lastClickKey   string
	lastClickTime  time.Time
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
