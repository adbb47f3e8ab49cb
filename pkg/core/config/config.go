package config

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	fconfig "github.com/msto63/mscript/foundation/core/config"
	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/core/i18n"
)

// EnvPrefix is the prefix of environment overrides, e.g. MSCRIPT_LOG_LEVEL
const EnvPrefix = "MSCRIPT"

// AppName names the configuration files and directories
const AppName = "mscript"

// Config holds the complete mscript configuration
type Config struct {
	Locale string       `toml:"locale"`
	Log    LogConfig    `toml:"log"`
	Parser ParserConfig `toml:"parser"`
	Print  PrintConfig  `toml:"print"`
	Cache  CacheConfig  `toml:"cache"`

	// Source is the file the settings came from; empty for defaults only
	Source string `toml:"-"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	MaxSourceLength int `toml:"max_source_length"`
}

// PrintConfig holds the debug dump switches
type PrintConfig struct {
	Tokens bool `toml:"tokens"`
	AST    bool `toml:"ast"`
}

// CacheConfig holds parse cache settings
type CacheConfig struct {
	Enabled bool     `toml:"enabled"`
	Path    string   `toml:"path"`
	MaxAge  Duration `toml:"max_age"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultCachePath returns the parse cache location below the user cache
// directory, or the working directory when there is none
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		return filepath.Join(".", AppName+"-cache.db")
	}
	return filepath.Join(dir, AppName, "parse-cache.db")
}

var localePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// DefaultLocale returns the locale named by LC_ALL, LC_MESSAGES or LANG
// when it is a valid setting, else "en"
func DefaultLocale() string {
	if locale := i18n.DetectLocale(); localePattern.MatchString(locale) {
		return locale
	}
	return i18n.DefaultLocale
}

// Defaults returns the default values in store layout
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"locale": DefaultLocale(),
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"parser": map[string]interface{}{
			"max_source_length": 1 << 20,
		},
		"print": map[string]interface{}{
			"tokens": false,
			"ast":    false,
		},
		"cache": map[string]interface{}{
			"enabled": false,
			"path":    DefaultCachePath(),
			"max_age": "720h",
		},
	}
}

// Rules returns the validation rules for all keys
func Rules() fconfig.ValidationRules {
	return fconfig.ValidationRules{
		"locale":                   {Type: "string", Pattern: localePattern.String()},
		"log.level":                {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "off"}},
		"log.format":               {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
		"parser.max_source_length": {Type: "int", Min: fconfig.IntPtr(1)},
		"print.tokens":             {Type: "bool"},
		"print.ast":                {Type: "bool"},
		"cache.enabled":            {Type: "bool"},
		"cache.path":               {Type: "string", Pattern: `\S`},
		"cache.max_age":            {Type: "duration"},
	}
}

// Load reads the settings. An explicit path must exist; an empty path
// searches ./mscript.{toml,yaml,yml} and $HOME/.config/mscript/ and falls
// back to the defaults.
func Load(path string) (*Config, error) {
	return load(fconfig.DiscoveryOptions{
		Path:       os.ExpandEnv(path),
		Candidates: fconfig.DefaultCandidates(AppName),
	})
}

func load(options fconfig.DiscoveryOptions) (*Config, error) {
	options.EnvPrefix = EnvPrefix
	options.Defaults = Defaults()

	store, err := fconfig.Discover(options)
	if err != nil {
		return nil, err
	}
	return FromStore(store)
}

// FromStore validates a configuration store and reads the typed settings
func FromStore(store *fconfig.Config) (*Config, error) {
	if err := store.Validate(Rules()).Err(); err != nil {
		return nil, mserror.Wrap(err, "invalid settings").
			WithDetail("source", store.FilePath())
	}

	cfg := &Config{
		Locale: store.GetString("locale", i18n.DefaultLocale),
		Log: LogConfig{
			Level:  store.GetString("log.level", "warn"),
			Format: store.GetString("log.format", "text"),
		},
		Parser: ParserConfig{
			MaxSourceLength: store.GetInt("parser.max_source_length", 1<<20),
		},
		Print: PrintConfig{
			Tokens: store.GetBool("print.tokens"),
			AST:    store.GetBool("print.ast"),
		},
		Cache: CacheConfig{
			Enabled: store.GetBool("cache.enabled"),
			Path:    os.ExpandEnv(store.GetString("cache.path", DefaultCachePath())),
			MaxAge:  Duration{store.GetDuration("cache.max_age", 720*time.Hour)},
		},
		Source: store.FilePath(),
	}
	return cfg, nil
}

// WriteTOML writes the effective settings as a TOML document
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return mserror.Wrap(err, "cannot encode settings").
			WithCode(mserror.CodeConfigError).
			WithOperation("config.WriteTOML")
	}
	return nil
}
