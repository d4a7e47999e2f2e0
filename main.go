package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/planmerge/planmerge/internal/collector"
	"github.com/planmerge/planmerge/internal/config"
	"github.com/planmerge/planmerge/internal/errors"
	"github.com/planmerge/planmerge/internal/merger"
)

// CLI defines the command-line interface
var CLI struct {
	Union   UnionCmd         `cmd:"" help:"Merge object-shaped JSON files into a single object by key union."`
	Collect CollectCmd       `cmd:"" help:"Collect JSON files into a single array."`
	Config  string           `help:"Path to config file. If not specified, searches for .planmerge.yml in the current directory and parents." short:"c" type:"path"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

// UnionCmd merges every object-shaped .json file in the source directory
// into a single object. On a key collision the file processed last wins;
// array-shaped files are concatenated under the reserved list key.
type UnionCmd struct {
	Source  string `help:"Directory containing the source .json files." short:"s" type:"path"`
	Output  string `help:"Path of the merged output file." short:"o" type:"path"`
	ListKey string `help:"Accumulator key collecting elements of array-shaped files." name:"list-key"`
	Deep    bool   `help:"Merge nested objects recursively instead of overwriting top-level keys."`
	KeyCase string `help:"Rewrite top-level keys of the merged object (snake, camel or kebab)." name:"key-case"`
}

// Run executes the key-union aggregation
func (c *UnionCmd) Run(cfg *config.Config) error {
	opts := merger.Options{
		SourceDir:  firstNonEmpty(c.Source, cfg.Union.Source),
		OutputPath: firstNonEmpty(c.Output, cfg.Union.Output),
		ListKey:    firstNonEmpty(c.ListKey, cfg.Union.ListKey),
		Deep:       c.Deep || cfg.Union.Deep,
		KeyCase:    merger.KeyCase(firstNonEmpty(c.KeyCase, cfg.Union.KeyCase)),
	}
	summary, err := merger.MergeDir(opts, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Printf("Merged all JSON files into %s\n", summary.Output)
	return nil
}

// CollectCmd gathers every .json file in the source directory, whatever its
// JSON type, into a single array.
type CollectCmd struct {
	Source string `help:"Directory containing the source .json files." short:"s" type:"path"`
	Output string `help:"Path of the merged output file." short:"o" type:"path"`
}

// Run executes the list-collection aggregation
func (c *CollectCmd) Run(cfg *config.Config) error {
	opts := collector.Options{
		SourceDir:  firstNonEmpty(c.Source, cfg.Collect.Source),
		OutputPath: firstNonEmpty(c.Output, cfg.Collect.Output),
	}
	summary, err := collector.CollectDir(opts, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Printf("Merged %d files into %s\n", summary.Merged, summary.Output)
	return nil
}

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("planmerge"),
		kong.Description("A tool to merge a directory of JSON files into a single document"),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("planmerge version %s", Version)},
	)

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage was already shown by kong.UsageOnError()
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := ctx.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: an explicit --config path,
// else the nearest config file up the directory tree, else built-in defaults.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return config.NewConfig(), nil
	}
	return config.LoadConfig(path)
}

// firstNonEmpty returns the first non-empty value, letting CLI flags take
// precedence over config file values.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
