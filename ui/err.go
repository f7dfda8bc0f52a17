package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var errStyle = lipgloss.NewStyle().Foreground(StatusError)

var infoStyle = lipgloss.NewStyle().Foreground(StatusSuccess)

// ErrBox is the one line message area under the menu. It shows either an
// error or a short confirmation such as "copied".
type ErrBox struct {
	height, width int
	err           error
	info          string
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
	e.info = ""
}

// SetInfo shows a non-error message.
func (e *ErrBox) SetInfo(msg string) {
	e.err = nil
	e.info = msg
}

func (e *ErrBox) Clear() {
	e.err = nil
	e.info = ""
}

// Message returns the text being shown, if any.
func (e *ErrBox) Message() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.info
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	var text string
	switch {
	case e.err != nil:
		// Multi-line errors, e.g. from errors.Join, are flattened.
		msg := strings.Join(strings.Fields(e.err.Error()), " ")
		text = errStyle.Render(IconError + " " + TruncateTitle(msg, e.width-2))
	case e.info != "":
		text = infoStyle.Render(IconSuccess + " " + TruncateTitle(e.info, e.width-2))
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, text)
}
