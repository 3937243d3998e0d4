// Package config loads the service configuration from an optional YAML file
// and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Pose      PoseConfig      `yaml:"pose"`
	Narrative NarrativeConfig `yaml:"narrative"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig enables bearer token auth on the API when JWTSecret is set
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// PoseConfig describes how frames are obtained from video files
type PoseConfig struct {
	// Worker is the command line of the pose estimator; the video path is
	// appended as its last argument
	Worker              string `yaml:"worker"`
	FollowThroughBuffer int    `yaml:"follow_through_buffer"`
}

// NarrativeConfig configures the optional coaching narrative model.
// Narratives fall back to templated text when APIKey is empty.
type NarrativeConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: ":8080"},
		Database: DatabaseConfig{Path: "file:cricketsense?mode=memory&cache=shared"},
		Log:      LogConfig{Level: "info"},
		Pose:     PoseConfig{FollowThroughBuffer: 30},
		Narrative: NarrativeConfig{
			Model:   "gemini-2.0-flash",
			Timeout: 20 * time.Second,
		},
		RateLimit: RateLimitConfig{Requests: 30, Window: time.Minute},
	}
}

// Load 加载配置. path may be empty, in which case only defaults and the
// environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("PORT", &c.Server.Port)
	setString("DB_PATH", &c.Database.Path)
	setString("JWT_SECRET", &c.Auth.JWTSecret)
	setString("GEMINI_API_KEY", &c.Narrative.APIKey)
	setString("GEMINI_MODEL", &c.Narrative.Model)
	setString("POSE_WORKER", &c.Pose.Worker)
	setString("LOG_LEVEL", &c.Log.Level)

	if v := os.Getenv("FOLLOW_THROUGH_BUFFER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FOLLOW_THROUGH_BUFFER %q: %w", v, err)
		}
		c.Pose.FollowThroughBuffer = n
	}
	return nil
}

// Validate checks the values that have no sensible fallback
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is empty"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database path is empty"))
	}
	if c.Pose.FollowThroughBuffer <= 0 {
		errs = append(errs, fmt.Errorf("follow-through buffer must be positive, got %d", c.Pose.FollowThroughBuffer))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("rate limit needs positive requests and window"))
	}
	return errors.Join(errs...)
}
