package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mydehq/gamedesc/internal/platform"
	"github.com/mydehq/gamedesc/internal/report"
	"github.com/mydehq/gamedesc/internal/types"
	"github.com/mydehq/gamedesc/internal/ui"
)

var flagOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export one row per game group to a CSV report",
	Long: `Reads every platform descriptor and writes a CSV report with one row per group.
Malformed descriptors are exported from the entries that could be recovered.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(cmd)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Report file (default from config)")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command) {
	cfg, platforms := mustPlatforms()

	out := flagOutput
	if out == "" {
		out = cfg.ResolvePath(cfg.Report)
	}

	start := time.Now()
	b := &report.Builder{Logger: logger, Names: platform.Name}
	exp, collectErr := b.Collect(platforms)
	if collectErr != nil {
		logger.Warn(fmt.Sprintf("Some descriptors were skipped: %v", collectErr))
	}

	n, err := report.WriteFile(out, exp.Rows)
	if err != nil {
		var locked types.ErrReportLocked
		if errors.As(err, &locked) {
			logger.Error(locked.Error(), "path", locked.Path)
		} else {
			logger.Error(fmt.Sprintf("Failed to write report: %v", err), "path", out)
		}
		os.Exit(1)
	}

	fmt.Println(ui.Colorize(fmt.Sprintf("Report written: %s", out)))
	fmt.Printf("  %d rows from %d platforms, %s in %s\n",
		len(exp.Rows), exp.Platforms, humanize.Bytes(uint64(n)), time.Since(start).Round(time.Millisecond))
	if exp.Malformed > 0 {
		fmt.Println(ui.StyleWarn.Render(fmt.Sprintf("  %d malformed descriptors exported from recovered entries", exp.Malformed)))
	}
}
