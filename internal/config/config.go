package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/menu-editor/internal/app"
	"github.com/atomicstack/menu-editor/internal/menu"
	"github.com/joho/godotenv"
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
	envWidth           = "MENU_EDITOR_WIDTH"
	envHeight          = "MENU_EDITOR_HEIGHT"
	envShowFooter      = "MENU_EDITOR_FOOTER"
	envVerbose         = "MENU_EDITOR_VERBOSE"
	envTrace           = "MENU_EDITOR_TRACE"
	envLogFile         = "MENU_EDITOR_LOG_FILE"
	envTitle           = "MENU_EDITOR_TITLE"
	envSubtitle        = "MENU_EDITOR_SUBTITLE"
	envCurrency        = "MENU_EDITOR_CURRENCY"
	envIDs             = "MENU_EDITOR_IDS"
	envValidationHints = "MENU_EDITOR_VALIDATION_HINTS"
	envEnvFile         = "MENU_EDITOR_ENV_FILE"
)

const (
	defaultTitle    = "Christoffel's Kitchen"
	defaultSubtitle = "Fine Dining Experience"
	defaultCurrency = "R"
)

var ErrEmptyTitle = errors.New("title must not be empty")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment values, which win over the optional env file, which wins over
// defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	if err := mergeEnvFile(env); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("menu-editor", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "confirm each added item")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	title := fs.String("title", envOrDefault(env, envTitle, defaultTitle), "restaurant name shown in the header")
	subtitle := fs.String("subtitle", envOrDefault(env, envSubtitle, defaultSubtitle), "tagline shown under the restaurant name")
	currency := fs.String("currency", envOrDefault(env, envCurrency, defaultCurrency), "prefix printed before prices")
	ids := fs.String("ids", envOrDefault(env, envIDs, menu.IDKindSequence), "item id generator: sequence or uuid")
	hints := fs.Bool("validation-hints", envOrBool(env, envValidationHints, true), "explain why an item could not be added")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			Verbose:         *verbose,
			ValidationHints: *hints,
			Title:           *title,
			Subtitle:        *subtitle,
			Currency:        *currency,
			IDs:             *ids,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"trace":            strconv.FormatBool(*trace),
			"verbose":          strconv.FormatBool(*verbose),
			"logFile":          *logFile,
			"title":            *title,
			"subtitle":         *subtitle,
			"currency":         *currency,
			"ids":              *ids,
			"validation-hints": strconv.FormatBool(*hints),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

// mergeEnvFile fills unset keys from the dotenv file named by
// MENU_EDITOR_ENV_FILE.
func mergeEnvFile(env map[string]string) error {
	path := strings.TrimSpace(env[envEnvFile])
	if path == "" {
		return nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}
	for key, value := range values {
		if _, ok := env[key]; !ok {
			env[key] = value
		}
	}
	return nil
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// Validate checks values that parse fine but cannot be used.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := menu.NewIDGenerator(cfg.App.IDs); err != nil {
		return err
	}
	return nil
}
