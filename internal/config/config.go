package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-menu-button/internal/app"
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
	envLabel    = "POPUP_MENU_BUTTON_LABEL"
	envItems    = "POPUP_MENU_BUTTON_ITEMS"
	envMenuFile = "POPUP_MENU_BUTTON_MENU_FILE"
	envTheme    = "POPUP_MENU_BUTTON_THEME"
	envWidth    = "POPUP_MENU_BUTTON_WIDTH"
	envHeight   = "POPUP_MENU_BUTTON_HEIGHT"
	envFooter   = "POPUP_MENU_BUTTON_FOOTER"
	envVerbose  = "POPUP_MENU_BUTTON_VERBOSE"
	envTrace    = "POPUP_MENU_BUTTON_TRACE"
	envLogFile  = "POPUP_MENU_BUTTON_LOG_FILE"
)

const (
	defaultLabel = "Actions"
	defaultItems = "Cut,Copy,Paste"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-menu-button", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	label := fs.String("label", envOrDefault(env, envLabel, defaultLabel), "initial label shown on the trigger button")
	items := fs.String("items", envOrDefault(env, envItems, defaultItems), "comma-separated menu item labels")
	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to a YAML menu definition (overrides -label and -items)")
	themePath := fs.String("theme", envOrDefault(env, envTheme, ""), "path to a TOML theme palette file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show an info line when a selection is committed")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	resolvedLabel := *label
	resolvedItems := splitItems(*items)
	if *menuFile != "" {
		def, err := LoadMenuFile(*menuFile)
		if err != nil {
			return Config{}, err
		}
		if def.Label != "" {
			resolvedLabel = def.Label
		}
		resolvedItems = def.Items
	}

	cfg := Config{
		App: app.Config{
			Label:      resolvedLabel,
			Items:      resolvedItems,
			ThemePath:  *themePath,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"label":    resolvedLabel,
			"items":    strings.Join(resolvedItems, ","),
			"menuFile": *menuFile,
			"theme":    *themePath,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"verbose":  strconv.FormatBool(*verbose),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
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

// Validate ensures required minimum configuration is present. The menu
// operations assume a non-empty item list fixed at construction, so an
// empty list is rejected here rather than guarded everywhere else.
func Validate(cfg Config) error {
	if len(cfg.App.Items) == 0 {
		return fmt.Errorf("menu needs at least one item")
	}
	return nil
}
