package services

import (
	"context"
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// SettingsService is the typed view over module settings
type SettingsService struct {
	notifier ports.Notifier
	store    ports.SettingsStore
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store ports.SettingsStore, notifier ports.Notifier) *SettingsService {
	return &SettingsService{
		notifier: notifier,
		store:    store,
	}
}

// Load reads every module setting, falling back to defaults for unset ones
func (s *SettingsService) Load(ctx context.Context) (domain.ModuleSettings, error) {
	settings := domain.DefaultModuleSettings()

	bools := []struct {
		key    string
		target *bool
	}{
		{domain.SettingCreateCriticalFailure, &settings.CreateCriticalFailure},
		{domain.SettingCreateCriticalSuccess, &settings.CreateCriticalSuccess},
		{domain.SettingCriticalTracksEnable, &settings.CriticalTracksEnabled},
		{domain.SettingDisableDiceSound, &settings.DisableDiceSound},
		{domain.SettingHypeEnable, &settings.HypeEnabled},
		{domain.SettingHypePauseOthers, &settings.HypePauseOthers},
	}
	for _, b := range bools {
		if _, err := s.store.GetSetting(ctx, domain.Namespace, b.key, b.target); err != nil {
			return settings, fmt.Errorf("failed to read setting %s: %w", b.key, err)
		}
	}

	if _, err := s.store.GetSetting(ctx, domain.Namespace, domain.SettingCriticalTracks, &settings.CriticalTracks); err != nil {
		return settings, fmt.Errorf("failed to read setting %s: %w", domain.SettingCriticalTracks, err)
	}
	return settings, nil
}

// Current is Load for automatic triggers: read failures are logged and defaults returned
func (s *SettingsService) Current(ctx context.Context) domain.ModuleSettings {
	settings, err := s.Load(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load module settings, using defaults", "error", err)
		return domain.DefaultModuleSettings()
	}
	return settings
}

// SetBool stores one of the boolean module settings
func (s *SettingsService) SetBool(ctx context.Context, key string, value bool) error {
	switch key {
	case domain.SettingCreateCriticalFailure,
		domain.SettingCreateCriticalSuccess,
		domain.SettingCriticalTracksEnable,
		domain.SettingDisableDiceSound,
		domain.SettingHypeEnable,
		domain.SettingHypePauseOthers:
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	logging.Logger.Info("Setting module setting", "key", key, "value", value)
	if err := s.store.SetSetting(ctx, domain.Namespace, key, value); err != nil {
		logging.Logger.Error("Failed to save setting", "key", key, "error", err)
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// OutcomeTracks returns the stinger configuration
func (s *SettingsService) OutcomeTracks(ctx context.Context) (domain.OutcomeTracks, error) {
	var tracks domain.OutcomeTracks
	if _, err := s.store.GetSetting(ctx, domain.Namespace, domain.SettingCriticalTracks, &tracks); err != nil {
		return tracks, fmt.Errorf("failed to read critical tracks: %w", err)
	}
	return tracks, nil
}

// SaveOutcomeTracks stores the stinger configuration and tells the user
func (s *SettingsService) SaveOutcomeTracks(ctx context.Context, tracks domain.OutcomeTracks) error {
	logging.Logger.Info("Saving critical tracks",
		"successPlaylist", tracks.CriticalSuccessPlaylist,
		"successSound", tracks.CriticalSuccessSound,
		"failurePlaylist", tracks.CriticalFailurePlaylist,
		"failureSound", tracks.CriticalFailureSound)

	if err := s.store.SetSetting(ctx, domain.Namespace, domain.SettingCriticalTracks, tracks); err != nil {
		logging.Logger.Error("Failed to save critical tracks", "error", err)
		s.notifier.Warn("Failed to save critical success/failure tracks")
		return fmt.Errorf("failed to save critical tracks: %w", err)
	}

	s.notifier.Info("Critical success/failure track settings saved")
	return nil
}
