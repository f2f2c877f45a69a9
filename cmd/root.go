// Package cmd implements the command-line interface for bilicard.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bilicard-cli/bilicard/bili"
	"github.com/bilicard-cli/bilicard/clipboard"
	"github.com/bilicard-cli/bilicard/constant"
	"github.com/bilicard-cli/bilicard/icon"
	"github.com/bilicard-cli/bilicard/key"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/bilicard-cli/bilicard/segment"
	"github.com/bilicard-cli/bilicard/util"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., emoji, plain, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("print", "p", false, "Also print the card text to stdout")
	lo.Must0(viper.BindPFlag(key.CliPrintCard, rootCmd.Flags().Lookup("print")))

	rootCmd.Flags().BoolP("no-image", "n", false, "Leave the cover image out of the clipboard payload")
}

// rootCmd defines the entry point: resolve the link, fetch the metadata and
// put the rendered card on the clipboard.
var rootCmd = &cobra.Command{
	Use:   constant.Bilicard + " [link]",
	Short: "Copy a rich Bilibili video card to the clipboard",
	Long: "Resolve a Bilibili video link (b23.tv short links included), fetch its public\n" +
		"metadata and copy a formatted text+image card to the clipboard in HTML format.\n" +
		"With no argument the link is taken from the clipboard itself.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("no-image")) {
			viper.Set(key.ClipboardIncludeImage, false)
		}

		input, err := readInput(cmd, args)
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching video metadata...", icon.Get(icon.Progress)))
		segments, err := bili.New().Parse(input)
		erase()
		handleErr(err)

		if viper.GetBool(key.CliPrintCard) {
			printCard(cmd, segments)
		}

		handleErr(clipboard.Write(segments))
		cmd.Printf("%s Card copied to clipboard\n", icon.Get(icon.Clipboard))
	},
}

// readInput takes the link from the positional argument or, failing that,
// from the clipboard.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}

	text, err := clipboard.Load()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("clipboard is empty; copy a video link first or pass it as an argument")
	}
	return text, nil
}

func printCard(cmd *cobra.Command, segments []segment.Segment) {
	for _, seg := range segments {
		if seg.Kind != segment.Text {
			continue
		}
		cmd.Println(seg.Value)
		cmd.Println()
	}
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
