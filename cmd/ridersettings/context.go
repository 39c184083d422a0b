package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ridersettings/internal/config"
	"ridersettings/internal/logging"
	"ridersettings/internal/projectsettings"
	"ridersettings/internal/settingspanel"
)

type globalFlags struct {
	config   string
	project  string
	dataDir  string
	logLevel string
}

type commandContext struct {
	flags *globalFlags
	runID string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags: flags,
		runID: uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if project := strings.TrimSpace(c.flags.project); project != "" {
		if err := cfg.SetProjectRoot(project); err != nil {
			return err
		}
	}
	if dataDir := strings.TrimSpace(c.flags.dataDir); dataDir != "" {
		if err := cfg.SetDataDir(dataDir); err != nil {
			return err
		}
	}
	if level := strings.ToLower(strings.TrimSpace(c.flags.logLevel)); level != "" {
		cfg.Logging.Level = level
	}
	return nil
}

// loggerFor returns the invocation logger. Logging is best effort: when the
// configured sink cannot be opened the command still runs with a stderr logger.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warn: logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		c.logger = logging.WithContext(logging.WithRunID(ctx, c.runID), logger)
	})
	return c.logger
}

func (c *commandContext) store(cmd *cobra.Command) (*projectsettings.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return projectsettings.New(
		settingsPath(cfg),
		c.loggerFor(cmd),
		projectsettings.WithAtomicWrite(cfg.Settings.AtomicWrite),
		projectsettings.WithLocking(cfg.Settings.Lock),
	), nil
}

// settingsPath resolves Rider.json from whichever project location the
// configuration carries.
func settingsPath(cfg *config.Config) string {
	if cfg.Project.Root == "" && cfg.Project.DataDir != "" {
		return projectsettings.PathFromDataDir(cfg.Project.DataDir)
	}
	return projectsettings.Path(cfg.ProjectRoot())
}

func (c *commandContext) panel(cmd *cobra.Command) (*settingspanel.Panel, error) {
	store, err := c.store(cmd)
	if err != nil {
		return nil, err
	}
	return settingspanel.New(store, c.loggerFor(cmd)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
