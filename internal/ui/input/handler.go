package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/xieguanglei/ooxml-viewer/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	inFilterMode := ih.state != nil && ih.state.FilterActive
	helpVisible := ih.state != nil && ih.state.HelpVisible
	previewFullScreen := ih.state != nil && ih.state.PreviewFullScreen

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		switch {
		case inFilterMode:
			ih.actionChan <- statepkg.FilterClearAction{}
		case previewFullScreen:
			ih.actionChan <- statepkg.FullScreenToggleAction{}
		}
		return true

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyEnter:
		if inFilterMode {
			// Accept the selection and leave filter mode.
			ih.actionChan <- statepkg.FilterClearAction{}
			return true
		}
		ih.actionChan <- statepkg.ActivateAction{}
		return true

	case tcell.KeyRight:
		if inFilterMode {
			return true
		}
		ih.actionChan <- statepkg.ExpandAction{}
		return true

	case tcell.KeyLeft:
		if inFilterMode {
			ih.actionChan <- statepkg.FilterClearAction{}
			return true
		}
		if previewFullScreen {
			ih.actionChan <- statepkg.FullScreenToggleAction{}
			return true
		}
		ih.actionChan <- statepkg.CollapseAction{}
		return true

	case tcell.KeyTab:
		if !inFilterMode {
			ih.actionChan <- statepkg.FocusToggleAction{}
		}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if inFilterMode {
			ih.actionChan <- statepkg.FilterBackspaceAction{}
		}
		return true

	case tcell.KeyRune:
		return ih.processRune(ev.Rune(), inFilterMode, previewFullScreen)

	default:
		return true
	}
}

func (ih *InputHandler) processRune(r rune, inFilterMode, previewFullScreen bool) bool {
	// Filter mode swallows every printable rune, including 'q'.
	if inFilterMode {
		ih.actionChan <- statepkg.FilterCharAction{Char: r}
		return true
	}

	switch r {
	case 'q', 'Q':
		if previewFullScreen {
			ih.actionChan <- statepkg.FullScreenToggleAction{}
			return true
		}
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
		return true

	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case ' ':
		ih.actionChan <- statepkg.ActivateAction{}
		return true

	case '/':
		ih.actionChan <- statepkg.FilterStartAction{}
		return true

	case 'f':
		ih.actionChan <- statepkg.FullScreenToggleAction{}
		return true

	case 's', 'S':
		ih.actionChan <- statepkg.ExportAction{}
		return true

	case 'r', 'R':
		ih.actionChan <- statepkg.ReloadAction{}
		return true

	case 'y':
		ih.actionChan <- statepkg.YankPathAction{}
		return true

	case 'g':
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true

	case 'G':
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true
	}

	return true
}
