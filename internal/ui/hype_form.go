package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/services"
)

// HypeAssigner loads and stores hype assignments
type HypeAssigner interface {
	AssignmentForm(ctx context.Context, actorID string) (*services.AssignmentForm, error)
	SetAssignment(ctx context.Context, entityID string, playlistID string, track domain.TrackToken) error
}

// HypeFormResult is what the hype form ended with
type HypeFormResult struct {
	Cancelled  bool
	Error      error
	PlaylistID string
	Track      domain.TrackToken
}

// HypeForm picks the hype playlist and track of an actor
type HypeForm struct {
	Completed bool
	ctx       context.Context
	data      *services.AssignmentForm
	form      *huh.Form
	hype      HypeAssigner
	result    HypeFormResult
}

// NewHypeForm loads the actor's current assignment and builds the form
func NewHypeForm(ctx context.Context, hype HypeAssigner, actorID string) (*HypeForm, error) {
	data, err := hype.AssignmentForm(ctx, actorID)
	if err != nil {
		return nil, err
	}

	hf := &HypeForm{
		ctx:  ctx,
		data: data,
		hype: hype,
		result: HypeFormResult{
			PlaylistID: data.PlaylistID,
			Track:      data.Track,
		},
	}

	playlists := make([]huh.Option[string], 0, len(data.Playlists))
	for _, p := range data.Playlists {
		playlists = append(playlists, huh.NewOption(p.Name, p.ID))
	}

	hf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Playlist").
				Description(fmt.Sprintf("Hype playlist for %s", data.Actor.Name)).
				Options(playlists...).
				Value(&hf.result.PlaylistID),
			huh.NewSelect[domain.TrackToken]().
				Title("Track").
				OptionsFunc(func() []huh.Option[domain.TrackToken] {
					return trackOptions(data.Playlist(hf.result.PlaylistID))
				}, &hf.result.PlaylistID).
				Value(&hf.result.Track),
		),
	)
	return hf, nil
}

func trackOptions(p *domain.Playlist) []huh.Option[domain.TrackToken] {
	choices := services.TrackOptions(p)
	options := make([]huh.Option[domain.TrackToken], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c.Label, c.Value))
	}
	return options
}

func (hf *HypeForm) Init() tea.Cmd {
	return hf.form.Init()
}

func (hf *HypeForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			hf.result.Cancelled = true
			hf.Completed = true
			return hf, nil
		}
	}

	form, cmd := hf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		hf.form = f
	}

	if hf.form.State == huh.StateCompleted {
		hf.Completed = true
		if err := hf.save(); err != nil {
			logging.Logger.Error("Failed to save hype track", "actor", hf.data.Actor.ID, "error", err)
			hf.result.Error = err
		}
		return hf, nil
	}

	return hf, cmd
}

func (hf *HypeForm) View() string {
	if hf.form != nil {
		return hf.form.View()
	}
	return ""
}

// Done reports whether the form was submitted or cancelled
func (hf *HypeForm) Done() bool {
	return hf.Completed
}

// Result returns the form result
func (hf *HypeForm) Result() HypeFormResult {
	return hf.result
}

func (hf *HypeForm) save() error {
	logging.Logger.Info("Saving hype track from form",
		"actor", hf.data.Actor.ID,
		"playlist_id", hf.result.PlaylistID,
		"track", hf.result.Track)
	return hf.hype.SetAssignment(hf.ctx, hf.data.Actor.ID, hf.result.PlaylistID, hf.result.Track)
}
