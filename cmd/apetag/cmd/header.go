package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/apetag"
)

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the decoded header or footer block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			s, err := apetag.Load(f, readOptions(cmd)...)
			if err != nil {
				return err
			}
			defer s.Close()

			h := s.Header()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %d\n", h.Version)
			fmt.Fprintf(out, "size:    %d\n", h.Size)
			fmt.Fprintf(out, "count:   %d\n", h.Count)
			fmt.Fprintf(out, "flags:   0x%08x\n", h.Flags)
			fmt.Fprintf(out, "footer:  %t\n", h.IsFooter())
			return nil
		},
	}
}
