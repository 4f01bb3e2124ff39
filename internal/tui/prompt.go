package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Prompt is the value input bar for the selected setting.
type Prompt struct {
	*tview.InputField
	onSubmit func(text string)
	onCancel func()
}

// NewPrompt creates the prompt bar, inactive and unlabeled.
func NewPrompt() *Prompt {
	input := tview.NewInputField()
	input.SetFieldBackgroundColor(tview.Styles.ContrastBackgroundColor)
	input.SetLabelColor(tview.Styles.SecondaryTextColor)

	p := &Prompt{InputField: input}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := p.GetText()
			p.SetText("")
			if p.onSubmit != nil && text != "" {
				p.onSubmit(text)
			}
		case tcell.KeyEscape:
			p.SetText("")
			if p.onCancel != nil {
				p.onCancel()
			}
		}
	})

	return p
}

// SetOnSubmit sets the callback for a submitted value.
func (p *Prompt) SetOnSubmit(fn func(text string)) { p.onSubmit = fn }

// SetOnCancel sets the callback for a cancelled prompt.
func (p *Prompt) SetOnCancel(fn func()) { p.onCancel = fn }

// Activate labels the prompt for the named setting and clears old input.
func (p *Prompt) Activate(name string) {
	p.SetText("")
	p.SetLabel(name + ": ")
}

// Deactivate clears the prompt.
func (p *Prompt) Deactivate() {
	p.SetText("")
	p.SetLabel("")
}
