package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ilpsend config.toml key mapping to runtime settings.
type fileConfig struct {
	Host           string `toml:"host"`
	Port           string `toml:"port"`
	NetInterface   string `toml:"net_interface"`
	InitBufferSize int    `toml:"init_buffer_size"`
	FlushEvery     int    `toml:"flush_every"`
	LogLevel       string `toml:"log_level"`
}

type appConfig struct {
	Host           string
	Port           string
	NetInterface   string
	InitBufferSize int
	FlushEvery     int
	LogLevel       string
}

func defaultConfig() appConfig {
	return appConfig{
		Host:       "localhost",
		Port:       "9009",
		FlushEvery: 1000,
		LogLevel:   "info",
	}
}

// loadConfig loads a TOML config file over the defaults. Keys absent from
// the file keep their default values.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load ilpsend config: %w", err)
	}

	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("net_interface") {
		cfg.NetInterface = strings.TrimSpace(raw.NetInterface)
	}
	if meta.IsDefined("init_buffer_size") {
		cfg.InitBufferSize = raw.InitBufferSize
	}
	if meta.IsDefined("flush_every") {
		cfg.FlushEvery = raw.FlushEvery
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if cfg.Host == "" {
		return appConfig{}, fmt.Errorf("load ilpsend config: host cannot be empty")
	}
	if cfg.Port == "" {
		return appConfig{}, fmt.Errorf("load ilpsend config: port cannot be empty")
	}
	if cfg.FlushEvery <= 0 {
		return appConfig{}, fmt.Errorf("load ilpsend config: flush_every must be positive, got %d", cfg.FlushEvery)
	}
	if meta.IsDefined("init_buffer_size") && cfg.InitBufferSize <= 0 {
		return appConfig{}, fmt.Errorf("load ilpsend config: init_buffer_size must be positive, got %d", cfg.InitBufferSize)
	}

	return cfg, nil
}
