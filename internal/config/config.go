package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultLinkURL is the admission portal opened by the call-to-action.
const DefaultLinkURL = "https://www.umss.edu.bo/admision/"

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Link LinkConfig
	Log  LogConfig
	// Keys overrides the keys of a page action, e.g. open-link = ["w"].
	Keys map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Columns of the card grid; 0 picks by terminal width.
	Columns   int
	Mouse     bool
	AltScreen bool `mapstructure:"alt_screen"`
}

// LinkConfig holds the call-to-action target.
type LinkConfig struct {
	URL   string
	Label string
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Debug bool
}

func defaultLogPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "ingreso", "ingreso.log")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "state", "ingreso", "ingreso.log")
}

// Load reads configuration from file and env. Env var overrides use prefix
// INGRESO_. An explicit path takes precedence over INGRESO_CONFIG; a missing
// explicit file is an error, a missing default file is not.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.columns", 0)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("link.url", DefaultLinkURL)
	v.SetDefault("link.label", "Inscripciones y convocatorias")
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("INGRESO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ingreso"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INGRESO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that cannot be corrected silently.
func (c Config) Validate() error {
	if c.UI.Columns < 0 {
		return fmt.Errorf("ui.columns must be >= 0, got %d", c.UI.Columns)
	}
	u := strings.TrimSpace(c.Link.URL)
	if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
		return fmt.Errorf("link.url must be an http(s) URL, got %q", c.Link.URL)
	}
	return nil
}
