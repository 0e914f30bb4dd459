package tui

import (
	"io"

	"github.com/fatih/color"
)

type alertKind int

const (
	alertError alertKind = iota
	alertSuccess
	alertInfo
)

func (k alertKind) String() string {
	switch k {
	case alertSuccess:
		return "Success"
	case alertInfo:
		return "Info"
	default:
		return "Error"
	}
}

// alert is a one-line status message such as "[Success] Added successfully".
type alert struct {
	kind    alertKind
	message string
}

func errorAlert(message string) alert   { return alert{kind: alertError, message: message} }
func successAlert(message string) alert { return alert{kind: alertSuccess, message: message} }
func infoAlert(message string) alert    { return alert{kind: alertInfo, message: message} }

func (a alert) String() string {
	return "[" + a.kind.String() + "] " + a.message
}

// palette colours console alerts.
type palette map[alertKind]*color.Color

func newPalette(enabled bool) palette {
	p := palette{
		alertError:   color.New(color.FgRed),
		alertSuccess: color.New(color.FgGreen),
		alertInfo:    color.New(color.FgCyan),
	}
	if !enabled {
		for _, c := range p {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) fprintln(w io.Writer, a alert) {
	p[a.kind].Fprintln(w, a.String())
}
