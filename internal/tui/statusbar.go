package tui

import (
	"fmt"

	"github.com/rivo/tview"
)

// StatusBar displays the rig name, command hints, and transient messages.
type StatusBar struct {
	*tview.TextView
	rig   string
	flash string
}

// NewStatusBar creates the status bar.
func NewStatusBar(rig string) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	sb := &StatusBar{TextView: tv, rig: rig}
	sb.render()
	return sb
}

// SetFlash sets a transient message, shown until the next one.
func (sb *StatusBar) SetFlash(msg string) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	line := fmt.Sprintf(" [::b]%s[-:-:-] | s:save r:reload q:quit", sb.rig)
	if sb.flash != "" {
		line += fmt.Sprintf(" | [yellow]%s[-]", sb.flash)
	}
	_, _ = fmt.Fprint(sb, line)
}
