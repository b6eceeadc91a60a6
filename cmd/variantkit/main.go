// variantkit validates FEN strings, renders moves and adjudicates material
// draws for a family of chess variants.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/variantkit-go/internal/config"
	"github.com/lgbarn/variantkit-go/internal/logging"
	"github.com/lgbarn/variantkit-go/internal/variant"
)

const programVersion = "0.1.0"

// Exit statuses.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

// app carries what every command needs.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	variant *variant.Variant
	stdin   io.Reader
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("variantkit version %s\n", programVersion)
		os.Exit(exitOK)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(exitUsage)
	}

	cfg, err := config.Load(*configFile)
	if err == nil {
		cfg, err = applyFlags(cfg, setFlags())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(exitUsage)
	}

	a, err := newApp(cfg, os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status, err := a.run(ctx, flag.Arg(0), flag.Args()[1:])
	stop()
	if err != nil {
		a.logger.Error().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
	}
	os.Exit(status)
}

// newApp resolves cfg and builds the logger, which writes to logOut.
func newApp(cfg *config.Config, stdin io.Reader, logOut io.Writer) (*app, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	if err != nil {
		return nil, err
	}
	v, err := cfg.VariantDescriptor()
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, variant: v, stdin: stdin}, nil
}

// run dispatches one command and returns the exit status.
func (a *app) run(ctx context.Context, command string, args []string) (int, error) {
	switch command {
	case "validate":
		return a.validate(ctx, args)
	case "notate":
		return a.notate(args)
	case "material":
		return a.material(ctx, args)
	case "variants":
		return a.variants()
	default:
		return exitUsage, fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: variantkit [options] <command> [arguments...]\n\n")
	fmt.Fprintf(os.Stderr, "Checks FEN strings, renders moves and adjudicates material for chess variants.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  validate [fen...]   Check FEN strings (stdin when none are given)\n")
	fmt.Fprintf(os.Stderr, "  notate [move...]    Render UCI moves from -fen in the selected notation\n")
	fmt.Fprintf(os.Stderr, "  material [fen...]   Report insufficient mating material per side\n")
	fmt.Fprintf(os.Stderr, "  variants            List the built-in variants\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
