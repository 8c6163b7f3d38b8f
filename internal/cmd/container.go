package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/renato0307/maestro/internal/adapters/host"
	"github.com/renato0307/maestro/internal/adapters/script"
	adaptersound "github.com/renato0307/maestro/internal/adapters/sound"
	adapterstorage "github.com/renato0307/maestro/internal/adapters/storage"
	"github.com/renato0307/maestro/internal/config"
	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/paths"
	"github.com/renato0307/maestro/internal/ports"
	"github.com/renato0307/maestro/internal/services"
	"github.com/renato0307/maestro/internal/telemetry"
)

// ContainerOptions tune how the container is wired
type ContainerOptions struct {
	Silent         bool
	SilentDuration time.Duration
}

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Host   *host.LocalHost
	Macros *script.Runtime
	Repo   *adapterstorage.SQLiteRepository

	// Services
	Bootstrapper *services.PlaylistBootstrapper
	Conductor    *services.Conductor
	Hype         *services.HypeEngine
	Loop         *services.LoopController
	Outcome      *services.OutcomeEngine
	Playback     *services.PlaybackService
	Settings     *services.SettingsService

	Notifier ports.Notifier
	User     domain.User

	// Internal - for cleanup only
	shutdownTracing func(context.Context) error
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, opts ContainerOptions) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), settings.OtelEndpoint)
	if err != nil {
		// Tracing is optional; keep going without it
		logging.Logger.Warn("Failed to set up tracing", "endpoint", settings.OtelEndpoint, "error", err)
	}

	var player ports.AudioPlayer = adaptersound.NewPlayer(settings.PlayerCommand)
	if opts.Silent {
		player = adaptersound.NewSilentPlayer(opts.SilentDuration)
	}

	user := domain.User{IsGM: settings.GM(), Name: settings.User()}
	notifier := newConsoleNotifier(os.Stderr)

	localHost := host.NewLocalHost(repo, player)
	ducker := services.NewDuckingController(localHost)
	settingsService := services.NewSettingsService(repo, notifier)
	resolver := services.NewTrackResolver(repo, localHost)
	playback := services.NewPlaybackService(localHost, ducker, notifier)
	hype := services.NewHypeEngine(
		localHost,
		repo,
		resolver,
		playback,
		ducker,
		services.NewDuckSession(ducker),
		settingsService,
		notifier,
		user,
	)
	outcome := services.NewOutcomeEngine(playback, settingsService, user)
	loop := services.NewLoopController(repo, localHost, notifier)
	conductor := services.NewConductor(hype, outcome, loop, services.NewChatSoundFilter(settingsService))
	localHost.SetDispatcher(conductor)

	logging.Logger.Info("Container ready",
		"user", user.Name,
		"gm", user.IsGM,
		"silent", opts.Silent)

	return &Container{
		Bootstrapper:    services.NewPlaylistBootstrapper(localHost, hype, settingsService, user),
		Conductor:       conductor,
		Host:            localHost,
		Hype:            hype,
		Loop:            loop,
		Macros:          script.NewRuntime(paths.GetMacrosDir(), hype, playback),
		Notifier:        notifier,
		Outcome:         outcome,
		Playback:        playback,
		Repo:            repo,
		Settings:        settingsService,
		User:            user,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Close stops playback and closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.Host != nil {
		errs = append(errs, c.Host.Close())
	}
	if c.Hype != nil {
		c.Hype.Wait()
	}
	if c.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.shutdownTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to flush traces: %w", err))
		}
	}
	if c.Repo != nil {
		errs = append(errs, c.Repo.Close())
	}
	return errors.Join(errs...)
}
