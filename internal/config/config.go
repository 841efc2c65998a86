package config

import (
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"io"
	"jokerpoker/internal/util"
	"jokerpoker/pkg/game"
	"os"
	"sync"
)

// envPrefix is the prefix of every environment variable, i.e., JOKERPOKER_PG_DSN
const envPrefix = "jokerpoker"

// Config provides configuration for joker poker
type Config struct {
	loaded         bool
	Addr           string `yaml:"addr" envconfig:"addr"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		MinBet        int `yaml:"minBet" envconfig:"min_bet"`
		Jokers        int `yaml:"jokers" envconfig:"jokers"`
		HandSize      int `yaml:"handSize" envconfig:"hand_size"`
		MaxDiscards   int `yaml:"maxDiscards" envconfig:"max_discards"`
	} `yaml:"game"`
}

var (
	config   Config
	configMu sync.Mutex
)

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	opts := game.DefaultOptions()

	var cfg Config
	cfg.Addr = ":5000"
	cfg.MigrationsPath = "./sql"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.StartingChips = opts.StartingChips
	cfg.Game.MinBet = opts.MinBet
	cfg.Game.Jokers = opts.Jokers
	cfg.Game.HandSize = opts.HandSize
	cfg.Game.MaxDiscards = opts.MaxDiscards

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	configMu.Lock()
	loaded := config.loaded
	configMu.Unlock()

	if !loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	configMu.Lock()
	defer configMu.Unlock()
	return config
}

// Load will load the configuration
// The YAML file in JOKERPOKER_CONFIG_FILE (default: config.yaml) is optional. Environment
// variables take precedence over the file.
func Load() error {
	cfg, err := LoadFile(util.Getenv("JOKERPOKER_CONFIG_FILE", "config.yaml"))
	if err != nil {
		return err
	}

	configMu.Lock()
	defer configMu.Unlock()

	config = cfg
	config.loaded = true
	return nil
}

// LoadFile reads the configuration from the file, on top of DefaultConfig(), and then
// applies the environment
func LoadFile(configFile string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// GameOptions returns the options for new games
func (c Config) GameOptions() game.Options {
	return game.Options{
		StartingChips: c.Game.StartingChips,
		MinBet:        c.Game.MinBet,
		Jokers:        c.Game.Jokers,
		HandSize:      c.Game.HandSize,
		MaxDiscards:   c.Game.MaxDiscards,
	}
}
