// Package cli implements the gamedesc command line.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mydehq/gamedesc/internal/config"
	"github.com/mydehq/gamedesc/internal/platform"
	"github.com/mydehq/gamedesc/internal/types"
	"github.com/mydehq/gamedesc/internal/ui"
)

var (
	logger = log.New(os.Stderr)

	flagVerbose    bool
	flagConfig     string
	flagRoot       string
	flagDescriptor string
	flagPlatforms  []string
)

// RootCmd is the gamedesc entry command.
var RootCmd = &cobra.Command{
	Use:          "gamedesc",
	Short:        "Review hidden entries and export reports from gamelist.xml descriptors",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = ui.NewLogger(os.Stderr, flagVerbose)
		ui.SetLogger(logger)
		ui.ConfigureLoggerStyles()
	},
}

func init() {
	f := RootCmd.PersistentFlags()
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	f.StringVarP(&flagConfig, "config", "c", "", "Config file (default ./gamedesc.yml, then the global config)")
	f.StringVarP(&flagRoot, "root", "r", "", "Folder holding one subfolder per platform")
	f.StringVar(&flagDescriptor, "descriptor", "", "Descriptor file name inside each platform folder")
	f.StringSliceVarP(&flagPlatforms, "platform", "p", nil, "Only process these platform labels (repeatable)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (*types.Config, error) {
	var (
		cfg *types.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", wdErr)
		}
		cfg, err = config.Find(wd)
	}
	if err != nil {
		return nil, err
	}

	cfg = cfg.Clone()
	if flagRoot != "" {
		abs, err := filepath.Abs(flagRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
		cfg.Root = abs
		cfg.Platforms = nil
	}
	if flagDescriptor != "" {
		cfg.Descriptor = flagDescriptor
	}
	for label, name := range cfg.Names {
		platform.Register(label, name)
	}
	return cfg, nil
}

// mustPlatforms loads the config and platforms or exits.
func mustPlatforms() (*types.Config, []types.Platform) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	platforms, err := config.Select(cfg, flagPlatforms)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to find platforms: %v", err))
		os.Exit(1)
	}
	return cfg, platforms
}
