// Copyright 2026 The Transiteer Contributors
// All rights reserved.

// Package config loads runtime settings for the transiteer command and HTTP server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultAddr    = ":8080"
	defaultMaxBody = 1 << 20
)

// Config holds settings read from the environment or a .env file.
type Config struct {
	Addr     string
	LogLevel logrus.Level
	// MaxBody is the largest accepted request body, in bytes.
	MaxBody int64
	GinMode string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:     os.Getenv("TRANSITEER_ADDR"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: logrus.InfoLevel,
		MaxBody:  defaultMaxBody,
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	switch cfg.GinMode {
	case "":
		cfg.GinMode = gin.ReleaseMode
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	if s := os.Getenv("LOG_LEVEL"); s != "" {
		lvl, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	if s := os.Getenv("TRANSITEER_MAX_BODY"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TRANSITEER_MAX_BODY: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("TRANSITEER_MAX_BODY must be positive, got %d", n)
		}
		cfg.MaxBody = n
	}
	return cfg, nil
}

// NewLogger returns a logrus logger writing to stderr at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(c.LogLevel)
	return l
}
