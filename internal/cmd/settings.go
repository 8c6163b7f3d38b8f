package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/maestro/internal/config"
	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Set  SettingsSetCmd  `cmd:"set" help:"Change a cue setting"`
	Show SettingsShowCmd `cmd:"show" help:"Show the cue settings" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.Out(), string(data))
		return nil
	}

	fmt.Fprintf(cli.Out(), "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(cli.Out(), "Example settings.json:")
	fmt.Fprintln(cli.Out())

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cli.Out())
	fmt.Fprintln(cli.Out(), "Create or edit this file to configure maestro.")
	fmt.Fprintln(cli.Out(), "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsShowCmd prints the cue settings
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings, err := cli.Container.Settings.Load(cli.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingHypeEnable, settings.HypeEnabled)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingHypePauseOthers, settings.HypePauseOthers)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingCriticalTracksEnable, settings.CriticalTracksEnabled)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingCreateCriticalSuccess, settings.CreateCriticalSuccess)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingCreateCriticalFailure, settings.CreateCriticalFailure)
	fmt.Fprintf(w, "%s\t%t\n", domain.SettingDisableDiceSound, settings.DisableDiceSound)
	fmt.Fprintf(w, "user\t%s (gm: %t)\n", cli.Container.User.Name, cli.Container.User.IsGM)
	return w.Flush()
}

// SettingsSetCmd changes one boolean cue setting
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name" enum:"hype-track-enable,hype-track-pause-others,enable-critical-success-failure-tracks,create-critical-success-playlist,create-critical-failure-playlist,disable-dice-sound"`
	Value bool   `arg:"" help:"true or false"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	if err := cli.Container.Settings.SetBool(cli.Context(), s.Key, s.Value); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "%s = %t\n", s.Key, s.Value)
	return nil
}
