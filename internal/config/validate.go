package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProject(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProject() error {
	if c.Project.Root != "" && c.Project.DataDir != "" {
		return errors.New("project.root and project.data_dir are mutually exclusive; set only one")
	}
	if c.ProjectRoot() == "" {
		return errors.New("project.root must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
