// Package config loads ~/.estate-admin/config.toml, layered over defaults and
// EA_ environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/estate-admin-cli/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	DirName    = ".estate-admin"
	FileName   = "config"
	FileType   = "toml"
	EnvPrefix  = "EA"
	defaultDir = "~/" + DirName
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	KeyLocalBaseURL   = "environments.local.base_url"
	KeyLocalTimeout   = "environments.local.timeout"
	KeyRemoteBaseURL  = "environments.remote.base_url"
	KeyRemoteTimeout  = "environments.remote.timeout"
	KeyProbeTimeout   = "probe.timeout"
	KeyPreferencePath = "preferences.path"
	KeySessionDir     = "session.dir"
	KeyLoggingLevel   = "logging.level"
)

type EnvironmentConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"`
}

type EnvironmentsConfig struct {
	Local  EnvironmentConfig `mapstructure:"local"`
	Remote EnvironmentConfig `mapstructure:"remote"`
}

type ProbeConfig struct {
	Timeout string `mapstructure:"timeout"`
}

type PreferencesConfig struct {
	Path string `mapstructure:"path"`
}

type SessionConfig struct {
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Environments EnvironmentsConfig `mapstructure:"environments"`
	Probe        ProbeConfig        `mapstructure:"probe"`
	Preferences  PreferencesConfig  `mapstructure:"preferences"`
	Session      SessionConfig      `mapstructure:"session"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// Load reads the config file from home/.estate-admin into v. A missing file is
// not an error. Paths beginning with "~/" are expanded against home.
func Load(v *viper.Viper, home string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	v.AddConfigPath(filepath.Join(home, DirName))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Preferences.Path = expandHome(cfg.Preferences.Path, home)
	cfg.Session.Dir = expandHome(cfg.Session.Dir, home)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	// Adapters read paths straight from v.
	v.Set(KeyPreferencePath, cfg.Preferences.Path)
	v.Set(KeySessionDir, cfg.Session.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLocalBaseURL, domain.DefaultLocalBaseURL)
	v.SetDefault(KeyLocalTimeout, domain.DefaultLocalTimeout.String())
	v.SetDefault(KeyRemoteBaseURL, domain.DefaultRemoteBaseURL)
	v.SetDefault(KeyRemoteTimeout, domain.DefaultRemoteTimeout.String())
	v.SetDefault(KeyProbeTimeout, "3s")
	v.SetDefault(KeyPreferencePath, defaultDir+"/environment.toml")
	v.SetDefault(KeySessionDir, defaultDir+"/session")
	v.SetDefault(KeyLoggingLevel, LogLevelWarn)
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environments,
			validation.By(func(value interface{}) error {
				ec, ok := value.(EnvironmentsConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an EnvironmentsConfig")
				}
				return validation.ValidateStruct(&ec,
					validation.Field(&ec.Local, validation.By(validateEnvironment)),
					validation.Field(&ec.Remote, validation.By(validateEnvironment)),
				)
			}),
		),
		validation.Field(&c.Probe,
			validation.By(func(value interface{}) error {
				pc, ok := value.(ProbeConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ProbeConfig")
				}
				return validation.ValidateStruct(&pc,
					validation.Field(&pc.Timeout, validation.Required, validation.By(validateDuration)),
				)
			}),
		),
		validation.Field(&c.Preferences,
			validation.By(func(value interface{}) error {
				pc, ok := value.(PreferencesConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a PreferencesConfig")
				}
				return validation.ValidateStruct(&pc, validation.Field(&pc.Path, validation.Required))
			}),
		),
		validation.Field(&c.Session,
			validation.By(func(value interface{}) error {
				sc, ok := value.(SessionConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a SessionConfig")
				}
				return validation.ValidateStruct(&sc, validation.Field(&sc.Dir, validation.Required))
			}),
		),
		validation.Field(&c.Logging,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
	)
}

// Profiles turns the two configured environments into domain profiles.
func (c *Config) Profiles() (domain.EnvironmentProfiles, error) {
	profiles := domain.DefaultEnvironmentProfiles()

	localTimeout, err := time.ParseDuration(c.Environments.Local.Timeout)
	if err != nil {
		return domain.EnvironmentProfiles{}, fmt.Errorf("parse local timeout: %w", err)
	}
	remoteTimeout, err := time.ParseDuration(c.Environments.Remote.Timeout)
	if err != nil {
		return domain.EnvironmentProfiles{}, fmt.Errorf("parse remote timeout: %w", err)
	}

	profiles.Local.BaseURL = strings.TrimRight(c.Environments.Local.BaseURL, "/")
	profiles.Local.Timeout = localTimeout
	profiles.Remote.BaseURL = strings.TrimRight(c.Environments.Remote.BaseURL, "/")
	profiles.Remote.Timeout = remoteTimeout

	return profiles, nil
}

func (c *Config) ProbeTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.Probe.Timeout)
	if err != nil || timeout <= 0 {
		return 3 * time.Second
	}
	return timeout
}

func validateEnvironment(value interface{}) error {
	env, ok := value.(EnvironmentConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an EnvironmentConfig")
	}
	return validation.ValidateStruct(&env,
		validation.Field(&env.BaseURL, validation.Required, validation.By(validateBaseURL)),
		validation.Field(&env.Timeout, validation.Required, validation.By(validateDuration)),
	)
}

func validateDuration(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		return validation.NewError("validation_invalid_duration", "must be a valid duration (e.g., 3s, 1m)")
	}
	if duration <= 0 {
		return validation.NewError("validation_non_positive_duration", "must be positive")
	}

	return nil
}

func validateBaseURL(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}
	if parsed.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}

func expandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
