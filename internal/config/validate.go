package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDetection(); err != nil {
		return err
	}
	if err := c.validateCollaboration(); err != nil {
		return err
	}
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDetection() error {
	if c.Detection.MovieLimit <= 0 {
		return errors.New("detection.movie_limit must be positive")
	}
	if c.Detection.MaxResults <= 0 {
		return errors.New("detection.max_results must be positive")
	}
	if c.Detection.MinConfidence < 0 || c.Detection.MinConfidence > 1 {
		return errors.New("detection.min_confidence must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateCollaboration() error {
	if c.Collaboration.MinMovies < 1 {
		return errors.New("collaboration.min_movies must be at least 1")
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if !c.TMDB.Enabled {
		return nil
	}
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/castmerge/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required when tmdb.enabled is true. Set TMDB_API_KEY env var or edit %s (create with 'castmerge config init')", defaultPath)
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must be set when tmdb.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
