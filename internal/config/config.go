package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/nimbus-shell/launcher/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envBackend = "NIMBUS_LAUNCHER_BACKEND"
	envTheme   = "NIMBUS_LAUNCHER_THEME"
	envTrace   = "NIMBUS_LAUNCHER_TRACE"
	envLogFile = "NIMBUS_LAUNCHER_LOG_FILE"
)

const defaultBackend = "pop-launcher"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("nimbus-launcher", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	backend := fs.String("backend", envOrDefault(env, envBackend, defaultBackend), "backend command line (the search process spoken to over stdio)")
	themePath := fs.String("theme", envOrDefault(env, envTheme, ""), "path to a TOML theme override file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	command, err := shellwords.Parse(*backend)
	if err != nil {
		return Config{}, fmt.Errorf("backend command %q: %w", *backend, err)
	}
	if len(command) == 0 {
		return Config{}, fmt.Errorf("backend command must not be empty")
	}

	cfg := Config{
		App: app.Config{
			BackendCommand: command,
			ThemePath:      *themePath,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"backend": *backend,
			"theme":   *themePath,
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.App.BackendCommand) == 0 {
		return fmt.Errorf("backend command must not be empty")
	}
	return nil
}
