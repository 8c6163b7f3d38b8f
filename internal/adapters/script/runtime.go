package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
	"github.com/renato0307/maestro/internal/services"
)

// Extension is the file extension of macro scripts
const Extension = ".tengo"

// ErrMacroNotFound is returned when no script matches a macro name
var ErrMacroNotFound = errors.New("macro not found")

// Hype is the part of the hype engine macros can drive
type Hype interface {
	PlayFor(ctx context.Context, target string, opts services.PlayForOptions) error
	SetAssignment(ctx context.Context, entityID string, playlistID string, track domain.TrackToken) error
}

// Playback is the part of the playback helpers macros can drive
type Playback interface {
	FindSound(ctx context.Context, search string, field services.SearchField) (*domain.Sound, error)
	PauseAll(ctx context.Context) []domain.SoundRef
	PauseSounds(ctx context.Context, targets []string) ([]domain.SoundRef, error)
	PlaySoundByName(ctx context.Context, name string, playlistName string) (ports.CueHandle, error)
	ResumeSounds(ctx context.Context, refs []domain.SoundRef)
}

// Runtime runs tengo macros against the cue engines. Scripts see a `maestro`
// module of functions and the macro arguments as `args`; a script may leave
// its answer in `result`.
type Runtime struct {
	dir      string
	hype     Hype
	playback Playback
}

// NewRuntime creates a runtime that loads macros from dir
func NewRuntime(dir string, hype Hype, playback Playback) *Runtime {
	return &Runtime{
		dir:      dir,
		hype:     hype,
		playback: playback,
	}
}

// List returns the names of the macros found in the macros directory
func (r *Runtime) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read macros directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

// Run loads the named macro and runs it
func (r *Runtime) Run(ctx context.Context, name string, args []string) (any, error) {
	path := filepath.Join(r.dir, name)
	if filepath.Ext(path) != Extension {
		path += Extension
	}
	if !strings.HasPrefix(filepath.Clean(path), filepath.Clean(r.dir)+string(filepath.Separator)) {
		return nil, fmt.Errorf("%s: %w", name, ErrMacroNotFound)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrMacroNotFound)
		}
		return nil, fmt.Errorf("failed to read macro %s: %w", name, err)
	}

	logging.Logger.Info("Running macro", "name", name, "args", args)
	return r.RunSource(ctx, src, args)
}

// RunSource compiles and runs a macro from source
func (r *Runtime) RunSource(ctx context.Context, src []byte, args []string) (any, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	argv := make([]any, 0, len(args))
	for _, a := range args {
		argv = append(argv, a)
	}
	if err := script.Add("args", argv); err != nil {
		return nil, err
	}
	if err := script.Add("maestro", r.module(ctx)); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile macro: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("macro failed: %w", err)
	}

	if !compiled.IsDefined("result") {
		return nil, nil
	}
	return compiled.Get("result").Value(), nil
}

func (r *Runtime) module(ctx context.Context) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["play_hype"] = &tengo.UserFunction{Name: "play_hype", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		opts := services.PlayForOptions{DuckOthers: true, WarnIfMissing: true}
		if len(args) == 2 {
			if v, ok := mapField(args[1], "duck"); ok {
				opts.DuckOthers = !v.IsFalsy()
			}
			if v, ok := mapField(args[1], "warn"); ok {
				opts.WarnIfMissing = !v.IsFalsy()
			}
		}
		if err := r.hype.PlayFor(ctx, objectAsString(args[0]), opts); err != nil {
			logging.Logger.Debug("Macro hype trigger failed", "target", objectAsString(args[0]), "error", err)
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["set_hype"] = &tengo.UserFunction{Name: "set_hype", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		err := r.hype.SetAssignment(ctx,
			objectAsString(args[0]),
			objectAsString(args[1]),
			domain.TrackToken(objectAsString(args[2])))
		if err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["pause_all"] = &tengo.UserFunction{Name: "pause_all", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return refsToArray(r.playback.PauseAll(ctx)), nil
	}}

	values["pause"] = &tengo.UserFunction{Name: "pause", Value: func(args ...tengo.Object) (tengo.Object, error) {
		targets := flattenStrings(args)
		if len(targets) == 0 {
			return nil, tengo.ErrWrongNumArguments
		}
		paused, err := r.playback.PauseSounds(ctx, targets)
		if err != nil {
			return nil, err
		}
		return refsToArray(paused), nil
	}}

	values["resume"] = &tengo.UserFunction{Name: "resume", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var refs []domain.SoundRef
		for _, s := range flattenStrings(args) {
			ref, ok := parseRef(s)
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "ref", Expected: "playlist/sound", Found: s}
			}
			refs = append(refs, ref)
		}
		r.playback.ResumeSounds(ctx, refs)
		return tengo.UndefinedValue, nil
	}}

	values["play_by_name"] = &tengo.UserFunction{Name: "play_by_name", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		var playlist string
		if len(args) == 2 {
			playlist = objectAsString(args[1])
		}
		handle, err := r.playback.PlaySoundByName(ctx, objectAsString(args[0]), playlist)
		if err != nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: handle.Sound().String()}, nil
	}}

	values["find_sound"] = &tengo.UserFunction{Name: "find_sound", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		field := services.SearchByName
		if len(args) == 2 {
			field = services.SearchField(objectAsString(args[1]))
		}
		sound, err := r.playback.FindSound(ctx, objectAsString(args[0]), field)
		if err != nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"id":          &tengo.String{Value: sound.ID},
			"name":        &tengo.String{Value: sound.Name},
			"path":        &tengo.String{Value: sound.Path},
			"playlist_id": &tengo.String{Value: sound.PlaylistID},
			"ref":         &tengo.String{Value: domain.SoundRef{PlaylistID: sound.PlaylistID, SoundID: sound.ID}.String()},
		}}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		logging.Logger.Info("Macro log", "message", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func mapField(obj tengo.Object, key string) (tengo.Object, bool) {
	switch m := obj.(type) {
	case *tengo.Map:
		v, ok := m.Value[key]
		return v, ok
	case *tengo.ImmutableMap:
		v, ok := m.Value[key]
		return v, ok
	}
	return nil, false
}

// flattenStrings accepts strings and arrays of strings
func flattenStrings(args []tengo.Object) []string {
	var out []string
	for _, a := range args {
		switch v := a.(type) {
		case *tengo.Array:
			out = append(out, flattenStrings(v.Value)...)
		case *tengo.ImmutableArray:
			out = append(out, flattenStrings(v.Value)...)
		default:
			if s := objectAsString(v); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func refsToArray(refs []domain.SoundRef) *tengo.Array {
	values := make([]tengo.Object, 0, len(refs))
	for _, ref := range refs {
		values = append(values, &tengo.String{Value: ref.String()})
	}
	return &tengo.Array{Value: values}
}

func parseRef(s string) (domain.SoundRef, bool) {
	playlistID, soundID, ok := strings.Cut(s, "/")
	if !ok || playlistID == "" || soundID == "" {
		return domain.SoundRef{}, false
	}
	return domain.SoundRef{PlaylistID: playlistID, SoundID: soundID}, true
}
