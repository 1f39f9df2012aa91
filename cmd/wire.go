package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/estate-admin-cli/internal/adapters/api"
	"github.com/bnema/estate-admin-cli/internal/adapters/probe"
	tomlrepo "github.com/bnema/estate-admin-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/estate-admin-cli/internal/adapters/session/chain"
	passstore "github.com/bnema/estate-admin-cli/internal/adapters/session/pass"
	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/bnema/estate-admin-cli/internal/config"
	"github.com/bnema/estate-admin-cli/internal/logger"
	"github.com/bnema/estate-admin-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	environments *application.EnvironmentService
	sessions     *application.SessionService
	roles        *application.RoleService
	users        *application.UserService
	projects     *application.ProjectService
}

type wireOptions struct {
	LogLevel string
	Verbose  bool
	LogOut   io.Writer
}

// newSessionStore is swapped in tests to keep sessions out of the real
// password store.
var newSessionStore = func(cfg *config.Config, log zerolog.Logger) (ports.SessionStore, error) {
	return chainstore.NewPassFirstWithFileFallback(passstore.DefaultPrefix, cfg.Session.Dir, log)
}

func wireApp(ctx context.Context, opts wireOptions) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v, "")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Verbose = opts.Verbose
	if opts.LogOut != nil {
		logCfg.Out = opts.LogOut
	}
	log := logger.New(logCfg)
	log.Debug().Str("session_dir", cfg.Session.Dir).Str("preferences", cfg.Preferences.Path).Msg("config loaded")

	profiles, err := cfg.Profiles()
	if err != nil {
		return nil, fmt.Errorf("wire environment profiles: %w", err)
	}

	httpClient := &http.Client{}
	prober := probe.HTTPProber{HTTPClient: httpClient, Timeout: cfg.ProbeTimeout()}
	locator := application.NewLocator(profiles, prober, log)

	prefs, err := tomlrepo.NewPreferenceRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire environment preference repository: %w", err)
	}

	environments := application.NewEnvironmentService(locator, prefs, prober, ports.SystemClock{}, log)
	if err := environments.ApplyPreference(ctx); err != nil {
		return nil, err
	}

	store, err := newSessionStore(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("wire session store chain: %w", err)
	}
	keeper := application.NewSessionKeeper(store, log)

	client := api.NewClient(locator, keeper, httpClient, log)
	roles := application.NewRoleService(client)

	return &app{
		environments: environments,
		sessions:     application.NewSessionService(client, keeper, log),
		roles:        roles,
		users:        application.NewUserService(client, roles),
		projects:     application.NewProjectService(client),
	}, nil
}
