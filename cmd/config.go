// Package cmd implements the command-line interface for bilicard.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/bilicard-cli/bilicard/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("json", "j", false, "Output the configuration schema as JSON")
	configCmd.SetOut(os.Stdout)
}

// configCmd displays every configuration field with its current and default values.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display all configuration fields with their current values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		slices.SortFunc(fields, func(a, b config.Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			default:
				return 0
			}
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			handleErr(enc.Encode(lo.ToSlicePtr(fields)))
			return
		}

		for _, field := range fields {
			cmd.Println(field.Pretty())
			cmd.Println()
		}
	},
}
