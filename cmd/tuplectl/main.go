package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/amp-labs/amp-tuple/build"
	tuplecli "github.com/amp-labs/amp-tuple/cli"
	"github.com/amp-labs/amp-tuple/envutil"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/inspect"
	"github.com/amp-labs/amp-tuple/logger"
	"github.com/amp-labs/amp-tuple/shutdown"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

const appName = "tuplectl"

var (
	ErrAborted         = errors.New("aborted")
	ErrNegativeWorkers = errors.New("worker count must not be negative")
)

func main() {
	handler, ctx := shutdown.New(context.Background())
	defer handler.Shutdown()

	handler.BeforeShutdown(func() {
		logger.Get(ctx).Debug("Shutting down")
	})

	app := newApp(tuplecli.NewPrompter(os.Stdin, os.Stdout))

	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		handler.Shutdown()
		os.Exit(1)
	}
}

// The default --version flag claims -v, which is taken by --verbose here.
var useVersionFlag = sync.OnceFunc(func() { //nolint:gochecknoglobals
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Aliases:            []string{"V"},
		Usage:              "print the version",
		DisableDefaultText: true,
	}
})

func newApp(prompter *tuplecli.Prompter) *cli.App {
	useVersionFlag()

	var verbose bool
	verboseFlag := &cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "verbose output (includes debug)",
		Destination: &verbose,
	}

	outputTypes := []string{}
	for _, t := range inspect.OutputTypes {
		outputTypes = append(outputTypes, string(t))
	}

	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, one of " + strings.Join(outputTypes, ", ") + " (env TUPLE_FORMAT)",
		Value:   string(inspect.OutputTypeText),
	}

	marginFlag := &cli.Float64Flag{
		Name:    "margin",
		Aliases: []string{"m"},
		Usage:   "inclusive tolerance for the within-margin check (env TUPLE_MARGIN)",
	}

	workersFlag := &cli.IntFlag{
		Name:  "workers",
		Usage: "number of tuples analyzed concurrently, 0 for one per CPU (env TUPLE_WORKERS)",
	}

	hashFlag := &cli.StringFlag{
		Name:  "hash",
		Usage: "fingerprint algorithm, one of " + strings.Join(hashNames(), ", ") + " (env TUPLE_HASH)",
	}

	setupLogging := func(cCtx *cli.Context) error {
		var opts []logger.Option
		if verbose {
			opts = append(opts, logger.WithLevel(slog.LevelDebug))
		}

		logger.ConfigureLogging(cCtx.Context, appName, opts...)

		return nil
	}

	return &cli.App{
		Name:                   appName,
		Usage:                  "inspect and build numeric tuples",
		Version:                build.Read().String(),
		Suggest:                true,
		UseShortOptionHandling: true,
		EnableBashCompletion:   true,
		Flags: []cli.Flag{
			verboseFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "Report on every tuple in a YAML or JSON document",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					verboseFlag,
					outputFlag,
					marginFlag,
					workersFlag,
					hashFlag,
				},
				Before: setupLogging,
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return cli.Exit("Exactly one FILE is required", 1)
					}

					opts, output, err := reportSettings(cCtx)
					if err != nil {
						return err
					}

					doc, err := loadDocument(cCtx.Args().First(), prompter.Stdin)
					if err != nil {
						return fmt.Errorf("failed to load %s: %w", cCtx.Args().First(), err)
					}

					reports, err := inspect.Analyze(cCtx.Context, doc, opts)
					if err != nil {
						return err
					}

					return writeReports(cCtx.App.Writer, output, reports)
				},
			},
			{
				Name:  "prompt",
				Usage: "Enter a tuple interactively and report on it",
				Flags: []cli.Flag{
					verboseFlag,
					outputFlag,
					marginFlag,
					hashFlag,
					&cli.IntFlag{
						Name:    "arity",
						Aliases: []string{"n"},
						Usage:   "number of components, asked for when unset",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "name of the tuple",
						Value: "input",
					},
					&cli.StringFlag{
						Name:  "save",
						Usage: "add the tuple to this YAML or JSON document",
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "overwrite an existing tuple of the same name without asking",
					},
				},
				Before: setupLogging,
				Action: func(cCtx *cli.Context) error {
					opts, output, err := reportSettings(cCtx)
					if err != nil {
						return err
					}

					arity := cCtx.Int("arity")
					if arity == 0 {
						if arity, err = prompter.Arity("Arity"); err != nil {
							return err
						}
					} else if arity < 0 {
						return fmt.Errorf("%w: %d", tuplecli.ErrBadArity, arity)
					}

					values, err := prompter.Components(arity)
					if err != nil {
						return err
					}

					name := cCtx.String("name")
					tup := tuple.NewTupN(values...)

					report, err := inspect.AnalyzeOne(name, tup, opts)
					if err != nil {
						return err
					}

					if path := cCtx.String("save"); path != "" {
						if err := saveTuple(cCtx.Context, prompter, path, name, tup, cCtx.Bool("yes")); err != nil {
							return err
						}
					}

					return writeReports(cCtx.App.Writer, output, []inspect.Report{report})
				},
			},
		},
	}
}

// reportSettings resolves report options and the output format from flags,
// falling back to TUPLE_MARGIN, TUPLE_WORKERS, TUPLE_HASH and TUPLE_FORMAT.
func reportSettings(cCtx *cli.Context) (inspect.Options, inspect.OutputType, error) {
	ctx := cCtx.Context

	var err error

	margin := cCtx.Float64("margin")
	if !cCtx.IsSet("margin") {
		margin, err = envutil.Float64(ctx, "TUPLE_MARGIN", envutil.Default(0.0)).Value()
		if err != nil {
			return inspect.Options{}, inspect.OutputTypeUndefined, err
		}
	}

	workers := cCtx.Int("workers")
	if !cCtx.IsSet("workers") {
		workers, err = envutil.Int(ctx, "TUPLE_WORKERS", envutil.Default(0), envutil.Validate(nonNegative)).Value()
		if err != nil {
			return inspect.Options{}, inspect.OutputTypeUndefined, err
		}
	}

	hashName := cCtx.String("hash")
	if !cCtx.IsSet("hash") {
		hashName, err = envutil.OneOf(ctx, "TUPLE_HASH", hashNames(), envutil.Default(hashing.DefaultAlgorithm)).Value()
		if err != nil {
			return inspect.Options{}, inspect.OutputTypeUndefined, err
		}
	}

	hashFunc, err := hashing.Lookup(hashName)
	if err != nil {
		return inspect.Options{}, inspect.OutputTypeUndefined, err
	}

	format := cCtx.String("output")
	if !cCtx.IsSet("output") {
		choices := make([]string, 0, len(inspect.OutputTypes))
		for _, t := range inspect.OutputTypes {
			choices = append(choices, string(t))
		}

		format, err = envutil.OneOf(ctx, "TUPLE_FORMAT", choices, envutil.Default(format)).Value()
		if err != nil {
			return inspect.Options{}, inspect.OutputTypeUndefined, err
		}
	}

	output, err := inspect.ParseOutputType(format)
	if err != nil {
		return inspect.Options{}, inspect.OutputTypeUndefined, err
	}

	logger.Get(ctx).Debug("Report settings",
		"margin", margin, "workers", workers, "hash", hashName, "output", output)

	return inspect.Options{Margin: margin, Workers: workers, Hash: hashFunc}, output, nil
}

func hashNames() []string {
	names := lo.Keys(hashing.Algorithms)
	slices.Sort(names)

	return names
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWorkers, n)
	}

	return nil
}

// loadDocument reads path, or stdin as YAML when path is "-".
func loadDocument(path string, stdin io.Reader) (inspect.Document, error) {
	if path != "-" {
		return inspect.LoadFile(path)
	}

	if stdin == nil {
		stdin = os.Stdin
	}

	return inspect.Load(stdin, inspect.OutputTypeYAML)
}

func saveTuple(
	ctx context.Context,
	prompter *tuplecli.Prompter,
	path, name string,
	tup *tuple.TupN[float64],
	yes bool,
) error {
	doc, err := inspect.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		doc, err = inspect.Document{}, nil
	}

	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	if _, exists := doc[name]; exists && !yes {
		ok, err := prompter.Confirm(fmt.Sprintf("Replace %s in %s", name, path))
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("%w: %s already exists in %s", ErrAborted, name, path)
		}
	}

	doc[name] = tup

	if err := inspect.SaveFile(path, doc); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	logger.Get(ctx).Info("Saved tuple", "name", name, "path", path, "tuple", tup.String())

	return nil
}

func writeReports(w io.Writer, output inspect.OutputType, reports []inspect.Report) error {
	if w == nil {
		w = os.Stdout
	}

	if err := inspect.Render(output, w, reports); err != nil {
		return err
	}

	if output != inspect.OutputTypeText {
		return nil
	}

	zero := 0
	for _, r := range reports {
		if r.Zero {
			zero++
		}
	}

	summary := color.New(color.FgGreen)
	if zero > 0 {
		summary = color.New(color.FgYellow)
	}

	_, err := summary.Fprintf(w, "\n%d tuple(s), %d zero\n", len(reports), zero)

	return err
}
