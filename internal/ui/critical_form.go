package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
)

// OutcomeSettings loads and stores the critical success/failure tracks
type OutcomeSettings interface {
	OutcomeTracks(ctx context.Context) (domain.OutcomeTracks, error)
	SaveOutcomeTracks(ctx context.Context, tracks domain.OutcomeTracks) error
}

// CriticalFormResult is what the critical tracks form ended with
type CriticalFormResult struct {
	Cancelled bool
	Error     error
	Tracks    domain.OutcomeTracks
}

// CriticalForm picks the stingers played on natural 20s and natural 1s
type CriticalForm struct {
	Completed bool
	ctx       context.Context
	form      *huh.Form
	playlists []domain.Playlist
	result    CriticalFormResult
	settings  OutcomeSettings
}

// NewCriticalForm loads the current tracks and builds the form
func NewCriticalForm(ctx context.Context, settings OutcomeSettings, source PlaylistSource) (*CriticalForm, error) {
	tracks, err := settings.OutcomeTracks(ctx)
	if err != nil {
		return nil, err
	}
	playlists, err := source.Playlists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	cf := &CriticalForm{
		ctx:       ctx,
		playlists: playlists,
		result:    CriticalFormResult{Tracks: tracks},
		settings:  settings,
	}

	t := &cf.result.Tracks
	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Critical success playlist").
				Options(cf.playlistOptions()...).
				Value(&t.CriticalSuccessPlaylist),
			huh.NewSelect[domain.TrackToken]().
				Title("Critical success sound").
				OptionsFunc(func() []huh.Option[domain.TrackToken] {
					return trackOptions(cf.playlist(t.CriticalSuccessPlaylist))
				}, &t.CriticalSuccessPlaylist).
				Value(&t.CriticalSuccessSound),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Critical failure playlist").
				Options(cf.playlistOptions()...).
				Value(&t.CriticalFailurePlaylist),
			huh.NewSelect[domain.TrackToken]().
				Title("Critical failure sound").
				OptionsFunc(func() []huh.Option[domain.TrackToken] {
					return trackOptions(cf.playlist(t.CriticalFailurePlaylist))
				}, &t.CriticalFailurePlaylist).
				Value(&t.CriticalFailureSound),
		),
	)
	return cf, nil
}

func (cf *CriticalForm) playlistOptions() []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range cf.playlists {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}
	return options
}

func (cf *CriticalForm) playlist(id string) *domain.Playlist {
	for i := range cf.playlists {
		if cf.playlists[i].ID == id {
			return &cf.playlists[i]
		}
	}
	return nil
}

func (cf *CriticalForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CriticalForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.result.Cancelled = true
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		if err := cf.save(); err != nil {
			logging.Logger.Error("Failed to save critical tracks", "error", err)
			cf.result.Error = err
		}
		return cf, nil
	}

	return cf, cmd
}

func (cf *CriticalForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Done reports whether the form was submitted or cancelled
func (cf *CriticalForm) Done() bool {
	return cf.Completed
}

// Result returns the form result
func (cf *CriticalForm) Result() CriticalFormResult {
	return cf.result
}

// save clears a sound whose playlist was unset so a half configuration
// never reaches the store
func (cf *CriticalForm) save() error {
	t := cf.result.Tracks
	if t.CriticalSuccessPlaylist == "" {
		t.CriticalSuccessSound = ""
	}
	if t.CriticalFailurePlaylist == "" {
		t.CriticalFailureSound = ""
	}
	cf.result.Tracks = t
	return cf.settings.SaveOutcomeTracks(cf.ctx, t)
}
