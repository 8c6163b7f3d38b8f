package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/theme"
)

const maxActivityLines = 8

// PlaylistSource lists the playlists shown on the watch screen
type PlaylistSource interface {
	Playlists(ctx context.Context) ([]domain.Playlist, error)
}

// Mixer pauses and resumes sounds on behalf of the watch screen
type Mixer interface {
	PauseAll(ctx context.Context) []domain.SoundRef
	ResumeSounds(ctx context.Context, refs []domain.SoundRef)
}

// Loops reads and toggles the loop flag of playlists
type Loops interface {
	Loop(ctx context.Context, playlistID string) (bool, error)
	SetLoop(ctx context.Context, playlistID string, enabled bool) error
}

// WatchModel shows the playlists, what is playing and the recent activity
// of the host. It refreshes on every activity it receives.
type WatchModel struct {
	activity  <-chan domain.Activity
	ctx       context.Context
	debug     bool
	err       error
	help      help.Model
	keys      WatchKeys
	log       []domain.Activity
	loops     Loops
	loopState map[string]bool
	mixer     Mixer
	paused    []domain.SoundRef
	playlists []domain.Playlist
	source    PlaylistSource
	spinner   spinner.Model
	table     table.Model
	width     int
}

// NewWatchModel creates the watch screen. activity may be nil.
func NewWatchModel(
	ctx context.Context,
	source PlaylistSource,
	mixer Mixer,
	loops Loops,
	activity <-chan domain.Activity,
	debug bool,
) *WatchModel {
	t := table.New(
		table.WithColumns(watchColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = theme.TableHeaderStyle
	styles.Selected = theme.TableSelectedStyle
	t.SetStyles(styles)

	return &WatchModel{
		activity:  activity,
		ctx:       ctx,
		debug:     debug,
		help:      help.New(),
		keys:      NewWatchKeys(),
		loopState: map[string]bool{},
		loops:     loops,
		mixer:     mixer,
		source:    source,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.SpinnerStyle)),
		table:     t,
		width:     80,
	}
}

func watchColumns(width int) []table.Column {
	rest := max(width-12-10-8-6-8, 20)
	return []table.Column{
		{Title: "Playlist", Width: 12 + rest/2},
		{Title: "Mode", Width: 12},
		{Title: "State", Width: 10},
		{Title: "Loop", Width: 6},
		{Title: "Now playing", Width: rest - rest/2},
	}
}

func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh(), m.waitForActivity())
}

func (m *WatchModel) refresh() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.source.Playlists(m.ctx)
		if err != nil {
			return playlistsMsg{err: err}
		}
		loops := make(map[string]bool, len(playlists))
		for _, p := range playlists {
			if !p.Mode.SupportsLoop() || m.loops == nil {
				continue
			}
			enabled, err := m.loops.Loop(m.ctx, p.ID)
			if err != nil {
				logging.Logger.Warn("Failed to read loop flag", "playlist_id", p.ID, "error", err)
				continue
			}
			loops[p.ID] = enabled
		}
		return playlistsMsg{loops: loops, playlists: playlists}
	}
}

func (m *WatchModel) waitForActivity() tea.Cmd {
	if m.activity == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-m.activity
		if !ok {
			return activityClosedMsg{}
		}
		return activityMsg(a)
	}
}

func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetColumns(watchColumns(msg.Width))
		m.table.SetHeight(max(msg.Height-maxActivityLines-10, 3))
		return m, nil

	case activityMsg:
		m.log = append(m.log, domain.Activity(msg))
		if len(m.log) > maxActivityLines {
			m.log = m.log[len(m.log)-maxActivityLines:]
		}
		return m, tea.Batch(m.refresh(), m.waitForActivity())

	case activityClosedMsg:
		m.activity = nil
		return m, nil

	case playlistsMsg:
		m.err = msg.err
		if msg.err == nil {
			m.playlists = msg.playlists
			m.loopState = msg.loops
			m.table.SetRows(m.rows())
		}
		return m, nil

	case pausedMsg:
		m.paused = append(m.paused, msg.refs...)
		return m, m.refresh()

	case loopToggledMsg:
		m.err = msg.err
		if msg.err == nil {
			m.loopState[msg.playlistID] = msg.enabled
			m.table.SetRows(m.rows())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.PauseAll):
		return m, func() tea.Msg {
			return pausedMsg{refs: m.mixer.PauseAll(m.ctx)}
		}

	case key.Matches(msg, m.keys.Resume):
		if len(m.paused) == 0 {
			return m, nil
		}
		refs := m.paused
		m.paused = nil
		return m, func() tea.Msg {
			m.mixer.ResumeSounds(m.ctx, refs)
			return m.refresh()()
		}

	case key.Matches(msg, m.keys.Loop):
		return m, m.toggleLoop()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *WatchModel) toggleLoop() tea.Cmd {
	p := m.selected()
	if p == nil || m.loops == nil {
		return nil
	}
	if !p.Mode.SupportsLoop() {
		m.err = fmt.Errorf("loop is not available for %s playlists", p.Mode)
		return nil
	}

	id := p.ID
	enabled := !m.loopState[id]
	return func() tea.Msg {
		return loopToggledMsg{
			enabled:    enabled,
			err:        m.loops.SetLoop(m.ctx, id, enabled),
			playlistID: id,
		}
	}
}

func (m *WatchModel) selected() *domain.Playlist {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.playlists) {
		return nil
	}
	return &m.playlists[i]
}

func (m *WatchModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.playlists))
	for _, p := range m.playlists {
		state := "stopped"
		if p.Playing {
			state = "playing"
		}

		loop := "-"
		if enabled, ok := m.loopState[p.ID]; ok {
			loop = "off"
			if enabled {
				loop = "on"
			}
		}

		var playing []string
		for _, s := range p.PlayingSounds() {
			playing = append(playing, s.Name)
		}

		rows = append(rows, table.Row{p.Name, p.Mode.String(), state, loop, strings.Join(playing, ", ")})
	}
	return rows
}

func (m *WatchModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.debug, ""))
	b.WriteString("\n")

	if len(m.playlists) == 0 && m.err == nil {
		b.WriteString(m.spinner.View() + theme.MutedStyle.Render(" loading playlists"))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n\n")

	b.WriteString(theme.TitleStyle.Render("Activity") + "\n")
	if len(m.log) == 0 {
		b.WriteString(theme.MutedStyle.Render("nothing yet") + "\n")
	}
	for _, a := range m.log {
		b.WriteString(m.renderActivity(a) + "\n")
	}

	if len(m.paused) > 0 {
		b.WriteString("\n" + theme.PausedStyle.Render(fmt.Sprintf("%d sound(s) paused, press r to resume", len(m.paused))) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.width)) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *WatchModel) renderActivity(a domain.Activity) string {
	name := a.SoundID
	playlist := a.PlaylistID
	for _, p := range m.playlists {
		if p.ID != a.PlaylistID {
			continue
		}
		playlist = p.Name
		if s, ok := p.Sound(a.SoundID); ok {
			name = s.Name
		}
	}

	style := theme.NormalStyle
	switch a.Kind {
	case domain.ActivityStarted, domain.ActivityResumed:
		style = theme.PlayingStyle
	case domain.ActivityPaused:
		style = theme.PausedStyle
	case domain.ActivityEnded, domain.ActivityStopped:
		style = theme.EndedStyle
	case domain.ActivitySuppressed:
		style = theme.SuppressedStyle
	}

	at := ""
	if !a.At.IsZero() {
		at = theme.MutedStyle.Render(a.At.Format("15:04:05")) + " "
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		at,
		style.Render(fmt.Sprintf("%-10s", a.Kind)),
		" "+name+theme.MutedStyle.Render(" ("+playlist+")"),
	)
}
