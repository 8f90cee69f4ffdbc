package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docmark/internal/detect"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported input formats",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Supported extensions:")
		for _, ext := range detect.Extensions() {
			tag, _ := detect.Detect("x" + ext)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-6s %s\n", ext, tag)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
