package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps a form and prepends the application header with a title
type Dialog struct {
	content tea.Model
	debug   bool
	title   string
}

// NewDialog wraps content in a titled dialog
func NewDialog(title string, content tea.Model, debug bool) *Dialog {
	return &Dialog{
		content: content,
		debug:   debug,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	if c, ok := updated.(completer); ok && c.Done() {
		return d, tea.Quit
	}
	return d, cmd
}

func (d *Dialog) View() string {
	return renderHeader(d.debug, d.title) + d.content.View()
}

// Content returns the wrapped content so callers can read its result
func (d *Dialog) Content() tea.Model {
	return d.content
}

// completer is implemented by forms that end the dialog when done
type completer interface {
	Done() bool
}
