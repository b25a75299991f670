package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/doseorb/internal/model"
)

const (
	defaultTickInterval  = model.DefaultTickInterval
	defaultFrameInterval = model.DefaultFrameInterval
	defaultSkin          = model.DefaultSkin
	defaultAPIAddr       = model.DefaultAPIAddr
	defaultHistorySize   = model.DefaultHistorySize
	defaultMaxPrayer     = model.DefaultMaxPrayer

	defaultSimPrayerBonus   = 15
	defaultSimPrayerPotions = 4
	defaultSimSuperRestores = 2
)

type appConfig struct {
	TickInterval      time.Duration `mapstructure:"tick-interval"`
	FrameInterval     time.Duration `mapstructure:"frame-interval"`
	ShowDoseIndicator bool          `mapstructure:"show-dose-indicator"`
	ShowStatistics    bool          `mapstructure:"show-statistics"`
	Skin              string        `mapstructure:"skin"`
	APIEnabled        bool          `mapstructure:"api-enabled"`
	APIAddr           string        `mapstructure:"api-addr"`
	HostSocket        string        `mapstructure:"host-socket"`
	AudioCue          bool          `mapstructure:"audio-cue"`
	HistorySize       int           `mapstructure:"history-size"`

	SimMaxPrayer     int  `mapstructure:"sim-max-prayer"`
	SimPrayerBonus   int  `mapstructure:"sim-prayer-bonus"`
	SimPrayerPotions int  `mapstructure:"sim-prayer-potions"`
	SimSuperRestores int  `mapstructure:"sim-super-restores"`
	SimHolyWrench    bool `mapstructure:"sim-holy-wrench"`

	ConfigPath string `mapstructure:"-"`
}

// loadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DOSEORB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("tick-interval", defaultTickInterval)
	v.SetDefault("frame-interval", defaultFrameInterval)
	v.SetDefault("show-dose-indicator", true)
	v.SetDefault("show-statistics", true)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-addr", defaultAPIAddr)
	v.SetDefault("host-socket", "")
	v.SetDefault("audio-cue", false)
	v.SetDefault("history-size", defaultHistorySize)
	v.SetDefault("sim-max-prayer", defaultMaxPrayer)
	v.SetDefault("sim-prayer-bonus", defaultSimPrayerBonus)
	v.SetDefault("sim-prayer-potions", defaultSimPrayerPotions)
	v.SetDefault("sim-super-restores", defaultSimSuperRestores)
	v.SetDefault("sim-holy-wrench", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "doseorb", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if strings.HasPrefix(cfg.HostSocket, "~/") {
		cfg.HostSocket = filepath.Join(home, cfg.HostSocket[2:])
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick-interval: %s", c.TickInterval)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("invalid frame-interval: %s", c.FrameInterval)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("invalid history-size: %d", c.HistorySize)
	}
	if c.APIEnabled {
		if _, _, err := net.SplitHostPort(c.APIAddr); err != nil {
			return fmt.Errorf("invalid api-addr %q: %w", c.APIAddr, err)
		}
	}
	if c.SimMaxPrayer <= 0 {
		return fmt.Errorf("invalid sim-max-prayer: %d", c.SimMaxPrayer)
	}
	if c.SimPrayerPotions < 0 {
		return fmt.Errorf("invalid sim-prayer-potions: %d", c.SimPrayerPotions)
	}
	if c.SimSuperRestores < 0 {
		return fmt.Errorf("invalid sim-super-restores: %d", c.SimSuperRestores)
	}
	return nil
}
