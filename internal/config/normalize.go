package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeProject(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeProject() error {
	var err error
	c.Project.Root = strings.TrimSpace(c.Project.Root)
	c.Project.DataDir = strings.TrimSpace(c.Project.DataDir)
	if c.Project.Root == "" && c.Project.DataDir == "" {
		c.Project.Root = "."
	}
	if c.Project.Root, err = expandPath(c.Project.Root); err != nil {
		return fmt.Errorf("project.root: %w", err)
	}
	if c.Project.DataDir, err = expandPath(c.Project.DataDir); err != nil {
		return fmt.Errorf("project.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	var err error
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
