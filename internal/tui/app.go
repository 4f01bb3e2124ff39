// Package tui is the interactive tuning console: it renders the menu,
// turns keystrokes into menu selections, and prompts for new values.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/joeri-hu/tracktune/internal/config"
	"github.com/joeri-hu/tracktune/internal/menu"
	"github.com/joeri-hu/tracktune/internal/setting"
	"github.com/joeri-hu/tracktune/internal/store"
)

// Saver is the persistence backend the console saves to and loads from.
// Both store.File and store.DB satisfy it.
type Saver interface {
	store.Store
	Flush() error
}

// App is the tuning console shell.
type App struct {
	app    *tview.Application
	rig    string
	cfg    *config.Config
	menu   *menu.Menu
	st     Saver
	log    *zap.Logger
	view   *tview.TextView
	prompt *Prompt
	status *StatusBar
}

// NewApp creates the console over an already-loaded settings tree.
func NewApp(rig string, cfg *config.Config, st Saver, log *zap.Logger) *App {
	a := &App{
		app:    tview.NewApplication(),
		rig:    rig,
		cfg:    cfg,
		st:     st,
		log:    log,
		view:   tview.NewTextView(),
		prompt: NewPrompt(),
		status: NewStatusBar(rig),
	}

	a.menu = BuildMenu(cfg, func(item *setting.Setting) {
		a.status.SetFlash(fmt.Sprintf("%s = %s", item.Name(), item))
		a.log.Info("setting applied",
			zap.String("tag", item.Tagname()),
			zap.String("value", item.String()),
		)
	})

	a.setupPrompt()
	a.setupLayout()
	a.redraw()

	return a
}

func (a *App) setupPrompt() {
	a.prompt.SetOnSubmit(func(text string) {
		if !a.menu.Selected() {
			return
		}
		a.menu.Selection().ApplyText(text)
		a.closePrompt()
	})
	a.prompt.SetOnCancel(func() {
		a.closePrompt()
	})
}

func (a *App) setupLayout() {
	a.view.SetBorder(true)
	a.view.SetTitle(" tracktune ")

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.view, 0, 1, true).
		AddItem(a.prompt, 1, 0, false).
		AddItem(a.status, 1, 0, false)

	a.app.SetRoot(root, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Let the prompt handle all keys while it has focus.
		if _, ok := a.app.GetFocus().(*tview.InputField); ok {
			return event
		}
		if event.Key() != tcell.KeyRune {
			return event
		}

		switch event.Rune() {
		case keyQuit:
			a.app.Stop()
		case keySave:
			a.save()
		case keyReload:
			a.reload()
		default:
			a.openPrompt(event.Rune())
		}
		return nil
	})
}

// openPrompt selects the binding for key and asks for its new value.
// Unbound keys just flash a notice: a miss is normal, not an error.
func (a *App) openPrompt(key rune) {
	if key > 0x7f || !a.menu.Select(byte(key)) {
		a.status.SetFlash(fmt.Sprintf("no setting on key %q", key))
		return
	}
	item := a.menu.Selection().Setting()
	a.prompt.Activate(fmt.Sprintf("%s (%s)", item.Name(), item))
	a.app.SetFocus(a.prompt)
}

func (a *App) closePrompt() {
	a.prompt.Deactivate()
	a.app.SetFocus(a.view)
	a.redraw()
}

func (a *App) save() {
	store.Save(a.st, store.Items(a.cfg.Items()))
	if err := a.st.Flush(); err != nil {
		a.status.SetFlash("save failed: " + err.Error())
		a.log.Error("save failed", zap.Error(err))
		return
	}
	a.status.SetFlash("settings saved")
	a.log.Info("settings saved", zap.Int("items", len(a.cfg.Items())))
}

func (a *App) reload() {
	store.Load(a.st, store.Items(a.cfg.Items()))
	a.status.SetFlash("settings reloaded")
	a.log.Info("settings reloaded")
	a.redraw()
}

func (a *App) redraw() {
	a.view.SetText(a.menu.Render())
}

// Run starts the console and blocks until it stops.
func (a *App) Run() error {
	return a.app.Run()
}

// Stop shuts the console down.
func (a *App) Stop() {
	a.app.Stop()
}
