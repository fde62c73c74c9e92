package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lexkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lexkit",
	Short: "Lexical scanner toolchain",
	Long:  `lexkit scans source text into a flat stream of typed tokens`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// useColor resolves the --color flag against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
