package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mydehq/gamedesc/internal/review"
	"github.com/mydehq/gamedesc/internal/ui"
)

var flagDryRun bool

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Walk hidden entries and unhide the ones you accept",
	Long: `Walks every platform descriptor and asks, one group at a time, whether a hidden
primary entry should be made visible. Accepted edits are backed up and saved per
platform. Cancelling keeps the edits already accepted and stops the run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runReview(cmd)
	},
}

func init() {
	reviewCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "Count eligible and bypassed entries without prompting or writing")
	RootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command) {
	_, platforms := mustPlatforms()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui.PrintBanner(flagDryRun)

	start := time.Now()
	wf := &review.Workflow{
		Prompter: ui.NewPrompter(os.Stdin, os.Stdout),
		Logger:   logger,
		DryRun:   flagDryRun,
	}
	sum, err := wf.Run(ctx, platforms)

	fmt.Println()
	fmt.Println(renderSummary(sum))
	for _, r := range sum.Results {
		if r.BackupPath != "" {
			fmt.Println(ui.Colorize(fmt.Sprintf("Backed up: %s", r.BackupPath)))
		}
		if r.Warning != nil {
			logger.Warn(r.Warning.Error(), "platform", r.Platform.Label)
		}
	}
	fmt.Println(ui.StyleDim.Render(fmt.Sprintf("Elapsed %s", time.Since(start).Round(time.Millisecond))))

	if sum.Cancelled {
		logger.Info(ui.StyleDim.Render("Review cancelled"))
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Review finished with errors: %v", err))
		os.Exit(1)
	}
}
