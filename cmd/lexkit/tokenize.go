package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexkit/internal/diagfmt"
	"lexkit/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] path",
	Short: "Tokenize a source file or directory",
	Long:  `Tokenize breaks source text down into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json); default from lexkit.toml or pretty")
	tokenizeCmd.Flags().String("ext", "", "file extension to scan in directory mode; default from lexkit.toml or .lx")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers in directory mode (0 = GOMAXPROCS)")
	tokenizeCmd.Flags().Bool("no-cache", false, "bypass the token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	format, _ := cmd.Flags().GetString("format")
	ext, _ := cmd.Flags().GetString("ext")
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	// Flags win over the manifest; the manifest wins over built-in defaults.
	manifest, found, err := loadManifest(".")
	if err != nil {
		return err
	}
	if format == "" && found {
		format = manifest.Config.Tokenize.Format
	}
	if format == "" {
		format = "pretty"
	}
	if ext == "" && found {
		ext = manifest.Config.Tokenize.Ext
	}
	if ext == "" {
		ext = ".lx"
	}

	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runTokenizeDir(cmd, path, ext, format, maxDiagnostics, jobs, quiet)
	}
	return runTokenizeFile(cmd, path, format, maxDiagnostics, noCache)
}

func runTokenizeFile(cmd *cobra.Command, path, format string, maxDiagnostics int, noCache bool) error {
	var cache *driver.TokenCache
	if !noCache {
		// An unusable cache directory degrades to uncached scanning.
		cache, _ = driver.OpenTokenCache("lexkit")
	}

	result, err := driver.TokenizeFile(path, maxDiagnostics, cache)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Preview: true,
		}
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenization failed: %s", path)
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	}
}

// fileTokens is the per-file JSON record in directory mode.
type fileTokens struct {
	Path   string                `json:"path"`
	Tokens []diagfmt.TokenOutput `json:"tokens"`
}

func runTokenizeDir(cmd *cobra.Command, dir, ext, format string, maxDiagnostics, jobs int, quiet bool) error {
	fileSet, results, err := driver.TokenizeDir(cmd.Context(), dir, ext, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := 0
	opts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Preview: true,
	}

	dump := make([]fileTokens, 0, len(results))
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, opts)
		}
		if res.Bag.HasErrors() {
			failed++
			continue
		}

		switch {
		case format == "json":
			dump = append(dump, fileTokens{Path: res.Path, Tokens: diagfmt.TokensOutput(res.Tokens)})
		case quiet:
			fmt.Fprintf(os.Stdout, "%s: %d tokens\n", res.Path, len(res.Tokens))
		default:
			fmt.Fprintf(os.Stdout, "== %s (%d tokens)\n", res.Path, len(res.Tokens))
			if err := diagfmt.FormatTokensPretty(os.Stdout, res.Tokens); err != nil {
				return err
			}
		}
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dump); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to tokenize", failed, len(results))
	}
	return nil
}
