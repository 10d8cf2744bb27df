package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/docsync/pkg/constants"
	"github.com/agentstation/docsync/pkg/errors"
)

// envPrefix namespaces the environment variables docsync reads through viper.
const envPrefix = "DOCSYNC"

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. File paths are not configurable;
// Root is the repository root, which is the working directory in normal use.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Repository root
	Root string

	// Template selection
	Template string
	Title    string

	// Logging configuration. LogLevel is the explicit --log-level flag;
	// ConfigLogLevel comes from LOG_LEVEL or log_level and ranks below -v/-q.
	LogLevel       string
	ConfigLogLevel string
	LogFormat      string
	LogOutput      string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (DOCSYNC_TEMPLATE, DOCSYNC_TITLE, ...)
//  3. .env files
//  4. Config file (configFile, or .docsync.yaml in . or $HOME)
//  5. Defaults
//
// An explicitly named config file must exist; the searched one is optional.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetDefault("template", constants.DefaultTemplate)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// Logging keys keep their unprefixed environment names
	for _, key := range []string{"log_level", "log_format", "log_output"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, errors.NewConfigError("viper", "cannot bind "+key, err)
		}
	}

	if configFile == "" {
		configFile = v.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("viper", "cannot read config file "+configFile, err)
		}
	} else {
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType(constants.ConfigType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("viper", "cannot parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),

		ConfigFile: v.ConfigFileUsed(),
		Root:       ".",

		Template: v.GetString("template"),
		Title:    v.GetString("title"),

		ConfigLogLevel: v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		LogOutput:      v.GetString("log_output"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over config file and env vars. Empty strings leave the
// loaded values in place.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel, template, title string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if template != "" {
		c.Template = template
	}
	if title != "" {
		c.Title = title
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides a variable that is already set, so .env.local
// is loaded first for its values to win over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
