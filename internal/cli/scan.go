package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mydehq/gamedesc/internal/config"
	"github.com/mydehq/gamedesc/internal/platform"
	"github.com/mydehq/gamedesc/internal/ui"
)

var (
	flagKnown bool
	flagSave  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the platform descriptors that would be processed",
	Long: `Resolves the config, discovers descriptor files under the root and prints each platform with its display name.
With --save the discovered platforms are written to gamedesc.yml in the working directory as an explicit list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if flagKnown {
			runKnown()
			return
		}
		runScan()
	},
}

func init() {
	scanCmd.Flags().BoolVar(&flagKnown, "known", false, "List the built-in and configured platform display names")
	scanCmd.Flags().BoolVar(&flagSave, "save", false, "Write the discovered platforms to ./gamedesc.yml")
	RootCmd.AddCommand(scanCmd)
}

func runScan() {
	cfg, platforms := mustPlatforms()

	fmt.Printf("%s in: %s\n", ui.StyleHeader.Render("Platforms"), ui.StylePath.Render(cfg.ResolvePath(cfg.Root)))
	for _, p := range platforms {
		name := platform.Name(p.Label)
		if !platform.Known(p.Label) {
			name = ui.StyleWarn.Render(name + " (unknown)")
		}
		fmt.Printf(" %s %s %s %s\n", ui.StyleDim.Render("-"), ui.StyleCommand.Render(p.Label), name, ui.StyleDim.Render(p.Path))
	}

	if !flagSave {
		return
	}
	wd, err := os.Getwd()
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to resolve working directory: %v", err))
		os.Exit(1)
	}
	out := cfg.Clone()
	out.Root = cfg.ResolvePath(cfg.Root)
	out.Platforms = platforms
	path := filepath.Join(wd, config.GetDefaults().ConfigFile)
	if err := config.Save(path, out); err != nil {
		logger.Error(fmt.Sprintf("Failed to save config: %v", err))
		os.Exit(1)
	}
	fmt.Println(ui.Colorize(fmt.Sprintf("Saved: %s", path)))
}

func runKnown() {
	if _, err := loadConfig(); err != nil {
		logger.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}
	fmt.Println(ui.StyleHeader.Render("Known platforms"))
	for _, label := range platform.List() {
		fmt.Printf(" %s %s %s\n", ui.StyleDim.Render("-"), ui.StyleCommand.Render(label), platform.Name(label))
	}
}
