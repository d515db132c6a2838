package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/moncycle/internal/app"
	"github.com/1broseidon/moncycle/internal/config"
	"github.com/1broseidon/moncycle/internal/logging"
	"github.com/1broseidon/moncycle/internal/placement"
	"github.com/1broseidon/moncycle/internal/platform"
)

// Exit codes. Usage requests exit 0 like a successful run.
const (
	exitOK        = 0
	exitHostError = 1
	exitArgError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: moncycle [flags] (<steps> | <dx> <dy> <dw> <dh>)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  <steps>              Move the focused window <steps> monitors right (negative: left)")
	fmt.Fprintln(w, "  <dx> <dy> <dw> <dh>  Move and resize the focused window by fixed amounts")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -v          Log debug diagnostics to stderr")
	fmt.Fprintln(w, "  -dry-run    Print the computed placement as YAML instead of applying it")
	fmt.Fprintln(w, "  -describe   Print the focused window and ordered monitors as YAML")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  %-20s Minimum width/height for fixed-delta resizes (default %d)\n", config.EnvMinWindowSize, placement.DefaultMinWindowSize)
	fmt.Fprintf(w, "  %-20s debug, info, warning, error (default warning)\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %-20s auto, x11, windows (default auto)\n", config.EnvBackend)
}

func run(args []string, stdout, stderr io.Writer) int {
	flagArgs, positional := splitArgs(args)

	fs := flag.NewFlagSet("moncycle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stdout) }
	verbose := fs.Bool("v", false, "Log debug diagnostics to stderr")
	dryRun := fs.Bool("dry-run", false, "Print the computed placement instead of applying it")
	describe := fs.Bool("describe", false, "Print the focused window and ordered monitors")
	if err := fs.Parse(flagArgs); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitArgError
	}

	var ints []int
	if !*describe {
		if len(positional) != 1 && len(positional) != 4 {
			printUsage(stdout)
			return exitOK
		}
		var err error
		if ints, err = parseInts(positional); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return exitArgError
		}
	} else if len(positional) != 0 {
		fmt.Fprintln(stderr, "-describe takes no arguments")
		return exitArgError
	}

	res, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitHostError
	}
	cfg := res.Config

	level := logging.ParseLevel(cfg.LogLevel)
	if *verbose {
		level = logging.ParseLevel("debug")
	}
	logger := logging.New(stderr, level)

	backend, err := platform.NewBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitHostError
	}
	defer backend.Close()

	runner := &app.Runner{
		Backend:       backend,
		Logger:        logger,
		Out:           stdout,
		MinWindowSize: cfg.MinWindowSize,
		DryRun:        *dryRun,
		Config:        res,
	}

	switch {
	case *describe:
		err = runner.Describe()
	case len(ints) == 1:
		err = runner.Cycle(ints[0])
	default:
		err = runner.Adjust(placement.Delta{DX: ints[0], DY: ints[1], DW: ints[2], DH: ints[3]})
	}
	if err != nil {
		logger.Debug("invocation failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitHostError
	}
	return exitOK
}

// splitArgs separates the known flags from everything else. Any other
// argument, including "-2" or "-x", is positional and must parse as an int.
// Everything after "--" is positional.
func splitArgs(args []string) (flags, positional []string) {
	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if isKnownFlag(arg) {
			flags = append(flags, arg)
			continue
		}
		positional = append(positional, arg)
	}
	return flags, positional
}

var knownFlags = map[string]bool{
	"v":        true,
	"dry-run":  true,
	"describe": true,
	"h":        true,
	"help":     true,
}

func isKnownFlag(arg string) bool {
	name, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}
	name = strings.TrimPrefix(name, "-")
	name, _, _ = strings.Cut(name, "=")
	return knownFlags[name]
}

// parseInts parses 32-bit signed integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, placement.ErrArgumentRange
			}
			return nil, placement.ErrArgumentParse
		}
		out = append(out, int(n))
	}
	return out, nil
}
