package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print the items of each file's APE tag",
		Long: `Print the text items of each file's APE tag.

Files are read concurrently. A file without a tag is reported as such and
does not fail the run.

Example:
  apetag dump --slow -o yaml *.mp3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			enc, err := newEncoder(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			opts := readOptions(cmd)
			if strict, _ := cmd.Flags().GetBool("strict"); strict {
				opts = append(opts, apetag.WithStrictParsing())
			}
			if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
				opts = append(opts, apetag.WithConcurrency(jobs))
			}

			tags, err := apetag.OpenMany(cmd.Context(), args, opts...)
			if err != nil {
				return fmt.Errorf("read tags: %w", err)
			}

			records := make([]tagRecord, len(args))
			for i, path := range args {
				records[i] = newTagRecord(path, tags[i])
			}
			return enc.encode(records)
		},
	}

	dumpCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
	dumpCmd.Flags().Bool("strict", false, "Fail when the item count does not match the header")
	dumpCmd.Flags().IntP("jobs", "j", 0, "Files to read at once (default: number of CPUs)")
	return dumpCmd
}
