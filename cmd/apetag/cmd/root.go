package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apetag",
		Short: "Inspect APE tags in media files",
		Long: `apetag locates and decodes APEv1/APEv2 tags stored at the end of
Monkey's Audio, Musepack, WavPack, TTA, OptimFROG and MP3 files.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().Bool("slow", false, "Scan the whole file when no tag sits at the end")

	root.AddCommand(newDumpCmd(), newHeaderCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// readOptions turns the persistent flags into library options.
func readOptions(cmd *cobra.Command) []apetag.Option {
	var opts []apetag.Option

	if slow, _ := cmd.Flags().GetBool("slow"); slow {
		opts = append(opts, apetag.WithSlowScan())
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, apetag.WithLogger(slog.New(handler)))
	}
	return opts
}
