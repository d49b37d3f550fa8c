package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Language string         `mapstructure:"language"`
	LogLevel string         `mapstructure:"log_level"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Dict     DictConfig     `mapstructure:"dict"`
	G2P      G2PConfig      `mapstructure:"g2p"`
	Server   ServerConfig   `mapstructure:"server"`
}

type AnalysisConfig struct {
	MaxSyllables  int    `mapstructure:"max_syllables"`
	UnknownPolicy string `mapstructure:"unknown_policy"`
	Workers       int    `mapstructure:"workers"`
}

type DictConfig struct {
	CacheDir string `mapstructure:"cache_dir"`
	BaseURL  string `mapstructure:"base_url"`
}

type G2PConfig struct {
	CachePath string `mapstructure:"cache_path"`
	Model     string `mapstructure:"model"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int    `mapstructure:"max_body_bytes"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Language: "en-gb",
		LogLevel: "info",
		Analysis: AnalysisConfig{
			MaxSyllables:  6,
			UnknownPolicy: "fail",
			Workers:       4,
		},
		Dict: DictConfig{
			CacheDir: "dicts",
			BaseURL:  "https://raw.githubusercontent.com/lingjzhu/CharsiuG2P/main/dicts",
		},
		G2P: G2PConfig{
			CachePath: "phonosim-g2p.db",
			Model:     "gpt-4o",
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			RequestTimeout:  30,
			ShutdownTimeout: 30,
			MaxBodyBytes:    1 << 16,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("language", defaults.Language, "Language schema code (en-gb|de|es|da|combined)")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Int("analysis-max-syllables", defaults.Analysis.MaxSyllables, "Maximum syllables kept per word encoding")
	fs.String("analysis-unknown-policy", defaults.Analysis.UnknownPolicy, "Unknown-phoneme policy (fail|skip)")
	fs.Int("analysis-workers", defaults.Analysis.Workers, "Parallel workers for corpus analysis")
	fs.String("dict-cache-dir", defaults.Dict.CacheDir, "Directory for cached pronunciation dictionaries")
	fs.String("dict-base-url", defaults.Dict.BaseURL, "Base URL for pronunciation dictionary downloads")
	fs.String("g2p-cache-path", defaults.G2P.CachePath, "SQLite file caching generated pronunciations")
	fs.String("g2p-model", defaults.G2P.Model, "Model used for out-of-dictionary pronunciation generation")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
	fs.Int("server-max-body-bytes", defaults.Server.MaxBodyBytes, "Maximum request body size in bytes")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("PHONOSIM")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("phonosim")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("language", c.Language)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("analysis.max_syllables", c.Analysis.MaxSyllables)
	v.SetDefault("analysis.unknown_policy", c.Analysis.UnknownPolicy)
	v.SetDefault("analysis.workers", c.Analysis.Workers)
	v.SetDefault("dict.cache_dir", c.Dict.CacheDir)
	v.SetDefault("dict.base_url", c.Dict.BaseURL)
	v.SetDefault("g2p.cache_path", c.G2P.CachePath)
	v.SetDefault("g2p.model", c.G2P.Model)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_bytes", c.Server.MaxBodyBytes)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("analysis.max_syllables", "analysis-max-syllables")
	v.RegisterAlias("analysis.unknown_policy", "analysis-unknown-policy")
	v.RegisterAlias("analysis.workers", "analysis-workers")
	v.RegisterAlias("dict.cache_dir", "dict-cache-dir")
	v.RegisterAlias("dict.base_url", "dict-base-url")
	v.RegisterAlias("g2p.cache_path", "g2p-cache-path")
	v.RegisterAlias("g2p.model", "g2p-model")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.request_timeout", "server-request-timeout")
	v.RegisterAlias("server.shutdown_timeout", "server-shutdown-timeout")
	v.RegisterAlias("server.max_body_bytes", "server-max-body-bytes")
}
