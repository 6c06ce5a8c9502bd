// Root command configuration for the stylemark CLI.
// Defines global flags, help output, and top-level command metadata.
package main

import (
	"fmt"
	"os"

	"github.com/sandover/stylemark/internal/stylemark"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Root command flags
	globalOpts stylemark.GlobalOptions
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stylemark",
	Short: "Escape literal brackets for terminal markup.",
	Long: `stylemark escapes literal [brackets] in text so a terminal markup
renderer only interprets real style tags like [bold red].`,
	SilenceUsage:  true, // Don't print usage on every error
	SilenceErrors: true, // We handle errors in main
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "Path to YAML config")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Quiet, "quiet", "q", false, "Suppress hints on error")
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.JSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&globalOpts.NoColor, "no-color", false, "Never style output")
	rootCmd.PersistentFlags().IntVar(&globalOpts.Width, "width", 0, "Output width (default: terminal width)")

	rootCmd.Version = version

	// Override default help to use our custom text
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		color := term.IsTerminal(int(os.Stdout.Fd())) && !globalOpts.NoColor && os.Getenv("NO_COLOR") == ""
		fmt.Println(stylemark.UsageText(color))
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		exitErr(err, &globalOpts)
	}
}
