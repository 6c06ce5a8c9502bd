// Purpose: Wire cobra subcommands to internal stylemark.RunX implementations.
// Exports: none.
// Role: CLI composition layer for user-facing commands.
// Invariants: Flags and command names align with help.txt.
// Notes: init functions register commands and their flags.
package main

import (
	"github.com/sandover/stylemark/internal/stylemark"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	for _, kind := range stylemark.LogKinds {
		logCmd.AddCommand(newLogKindCmd(kind))
	}
}

// withIO copies the global options and binds cobra's streams.
func withIO(cmd *cobra.Command) stylemark.GlobalOptions {
	opts := globalOpts
	opts.Stdin = cmd.InOrStdin()
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()
	return opts
}

// -- escape --
var escapeCmd = &cobra.Command{
	Use:   "escape [text...]",
	Short: "Escape literal brackets, keeping style tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stylemark.RunEscape(args, withIO(cmd))
	},
}

// -- check --
var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "List bracketed segments and how each is classified",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stylemark.RunCheck(args, withIO(cmd))
	},
}

// -- render --
var renderCmd = &cobra.Command{
	Use:   "render [text...]",
	Short: "Escape and print text with styles applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := withIO(cmd)
		opts.Raw = renderRaw
		return stylemark.RunRender(args, opts)
	},
}

var renderRaw bool

func init() {
	renderCmd.Flags().BoolVar(&renderRaw, "raw", false, "Render as-is without escaping first")
}

// -- strip --
var stripCmd = &cobra.Command{
	Use:   "strip [text...]",
	Short: "Print markup as plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stylemark.RunStrip(args, withIO(cmd))
	},
}

// -- log --
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print monitor output (error, markup, rule, task, code, markdown, messages)",
}

var (
	logLevel    string
	logTitle    string
	logSubtitle string
	logLang     string
)

func init() {
	logCmd.PersistentFlags().StringVar(&logLevel, "level", "", "Logger level (off|error|info|debug)")
	logCmd.PersistentFlags().StringVar(&logTitle, "title", "", "Title for rule, task, code and markdown output")
	logCmd.PersistentFlags().StringVar(&logSubtitle, "subtitle", "", "Subtitle for task output")
	logCmd.PersistentFlags().StringVar(&logLang, "lang", "", "Language for code output (guessed when empty)")
}

func newLogKindCmd(kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " [text...]",
		Short: "Print " + kind + " output",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := withIO(cmd)
			opts.Level = logLevel
			opts.Title = logTitle
			opts.Subtitle = logSubtitle
			opts.Lang = logLang
			return stylemark.RunLog(kind, args, opts)
		},
	}
}

// -- demo --
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show rules, panels, tables, code and markdown output",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stylemark.RunDemo(args, withIO(cmd))
	},
}

// -- version --
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}
