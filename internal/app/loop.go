package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	archive "github.com/xieguanglei/ooxml-viewer/internal/archive"
	config "github.com/xieguanglei/ooxml-viewer/internal/config"
	logging "github.com/xieguanglei/ooxml-viewer/internal/logging"
	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
	"github.com/xieguanglei/ooxml-viewer/internal/ui/input"
	renderui "github.com/xieguanglei/ooxml-viewer/internal/ui/render"
)

const doubleClickThreshold = 300 * time.Millisecond

// NewApplication opens the package at packagePath and prepares the terminal
// UI. A package that cannot be read at startup is a fatal error; reload
// failures later are not.
func NewApplication(packagePath string, cfg config.Config) (*Application, error) {
	entries, err := archive.InspectFile(packagePath)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	clipboardCmd, clipboardAvail := detectClipboard()

	state := newInitialState(cfg)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	renderer := renderui.NewRenderer(screen)
	inputHandler := input.NewInputHandler(actionCh)

	app := &Application{
		screen:         screen,
		state:          state,
		reducer:        reducer,
		renderer:       renderer,
		input:          inputHandler,
		actionCh:       actionCh,
		packagePath:    packagePath,
		exportDir:      cfg.Export.Dir,
		clipboardCmd:   clipboardCmd,
		clipboardAvail: clipboardAvail,
	}

	inputHandler.SetState(state)
	app.reduce(statepkg.PackageLoadedAction{Path: packagePath, Entries: entries})
	logging.L().Info("package opened",
		zap.String("path", packagePath),
		zap.Int("parts", state.PartCount))
	return app, nil
}

func newInitialState(cfg config.Config) *statepkg.AppState {
	return &statepkg.AppState{
		Expanded:  make(map[string]bool),
		TreeWidth: cfg.UI.TreeWidth,
		ShowSizes: cfg.UI.ShowSizes,
	}
}

// Run drives the event loop until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps clicks to tree selection and fold toggling, and the wheel
// to scrolling.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil {
		return
	}

	x, y := ev.Position()
	treeWidth := renderui.TreeWidthFor(app.state.ScreenWidth, app.state)
	inTree := !app.state.PreviewFullScreen && x < treeWidth

	if ev.Buttons()&tcell.WheelUp != 0 {
		if inTree {
			app.actionCh <- statepkg.NavigateUpAction{}
		} else {
			app.actionCh <- statepkg.PreviewScrollAction{Delta: -3}
		}
		return
	}
	if ev.Buttons()&tcell.WheelDown != 0 {
		if inTree {
			app.actionCh <- statepkg.NavigateDownAction{}
		} else {
			app.actionCh <- statepkg.PreviewScrollAction{Delta: 3}
		}
		return
	}

	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}

	// Content rows start below the header.
	row := y - 1
	bottomLimit := app.state.ScreenHeight - 2
	if y < 1 || y >= bottomLimit {
		return
	}

	if inTree {
		app.handleTreeClick(row)
		return
	}
	app.handlePreviewClick(x, treeWidth, row)
}

func (app *Application) handleTreeClick(row int) {
	idx := app.state.ScrollOffset + row
	if idx < 0 || idx >= len(app.state.Rows) {
		return
	}

	clickKey := fmt.Sprintf("tree-%d", idx)
	doubleClick := app.lastClickKey == clickKey && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickKey = clickKey
	app.lastClickTime = time.Now()

	app.actionCh <- statepkg.SelectRowAction{Index: idx}
	if doubleClick {
		app.actionCh <- statepkg.ActivateAction{}
	}
}

func (app *Application) handlePreviewClick(x, treeWidth, row int) {
	doc := app.state.PreviewDoc()
	if doc == nil {
		return
	}

	vi := app.state.PreviewScrollOffset + row
	if vi < 0 || vi >= len(doc.VisibleLines()) {
		return
	}

	app.actionCh <- statepkg.PreviewSelectAction{Index: vi}

	// The fold glyph occupies the first two preview columns.
	glyphStart := 0
	if !app.state.PreviewFullScreen {
		glyphStart = treeWidth + 2 // separator plus inner padding
	} else {
		glyphStart = 1 // inner padding only
	}
	if x >= glyphStart && x < glyphStart+2 {
		app.actionCh <- statepkg.ActivateAction{}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ExportAction:
		return app.handleExport()
	case statepkg.ReloadAction:
		return app.handleReload()
	case statepkg.YankPathAction:
		return app.handleClipboard()
	}

	app.reduce(action)
	return true
}

func (app *Application) reduce(action statepkg.Action) {
	before := ""
	if app.state.Preview != nil {
		before = app.state.Preview.PartPath
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}

	if doc := app.state.PreviewDoc(); doc != nil && app.state.Preview.PartPath != before {
		logging.L().Debug("part selected",
			zap.String("part", app.state.Preview.PartPath),
			zap.Int("lines", len(doc.Lines)))
	}
}
