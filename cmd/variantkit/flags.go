// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/variantkit-go/internal/config"
	"github.com/lgbarn/variantkit-go/internal/notation"
)

var (
	// Configuration
	configFile = flag.String("config", "", "Configuration file (default: variantkit.yaml in . or ./config)")

	// Rules and notation
	variantName  = flag.String("variant", "chess", "Variant to use (see the variants command)")
	notationName = flag.String("notation", "default", "Move notation: "+strings.Join(notation.Names(), ", "))
	startFEN     = flag.String("fen", "", "Start position for notate (default: variant start position)")

	// Output options
	jsonOutput = flag.Bool("J", false, "Output in JSON format, one object per line")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Mark repeated positions as duplicates")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console, json")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary line)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides the loaded configuration with the flags in set.
// Flags left at their defaults do not override the configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) (*config.Config, error) {
	b := config.NewConfigBuilderFrom(cfg)
	applyRuleFlags(b, set)
	applyOutputFlags(b, set)
	applyDuplicateFlags(b, set)
	applyLogFlags(b, set)
	return b.Build()
}

// applyRuleFlags configures variant, notation and worker settings.
func applyRuleFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["variant"] {
		b.WithVariant(*variantName)
	}
	if set["notation"] {
		b.WithNotation(*notationName)
	}
	if set["workers"] {
		b.WithWorkers(*workers)
	}
}

// applyOutputFlags configures the output format.
func applyOutputFlags(b *config.ConfigBuilder, set map[string]bool) {
	if !set["J"] {
		return
	}
	if *jsonOutput {
		b.WithOutputFormat(config.JSONFormat)
	} else {
		b.WithOutputFormat(config.TextFormat)
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["D"] {
		b.WithDuplicateSuppression(*suppressDuplicates)
	}
	if set["duplicate-capacity"] {
		b.WithDuplicateCapacity(*duplicateCapacity)
	}
}

// applyLogFlags configures the diagnostic logger.
func applyLogFlags(b *config.ConfigBuilder, set map[string]bool) {
	if set["log-level"] {
		b.WithLogLevel(*logLevel)
	}
	if set["log-format"] {
		b.WithLogFormat(*logFormat)
	}
}
