package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/bigadd/internal/calc"
	"github.com/bft-labs/bigadd/internal/cliconfig"
	"github.com/bft-labs/bigadd/internal/metrics"
	"github.com/bft-labs/bigadd/pkg/log"
)

const longHelp = `Add non-negative integers of any length, given as decimal digit strings.

Operands may have any number of digits; there is no overflow. Leading zeros
are stripped from results unless --canonical=false is given.

Configuration is read from $HOME/.bigadd/config.toml, then BIGADD_* environment
variables, then flags; later sources win.`

var exampleUsage = strings.TrimSpace(`
  bigadd 999999999999999999 1
  bigadd sum 5 9995 1000
  seq 1 100 | bigadd sum
  bigadd sum --file operands.txt --output json
  bigadd watch operands.txt --metrics-addr :9100
  bigadd mcp
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by all subcommands once flags are resolved.
type app struct {
	cfg     cliconfig.Config
	cfgPath string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	zl     zerolog.Logger
	logger log.Logger
	calc   *calc.Calculator
}

func main() {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.rootCommand().ExecuteContext(ctx); err != nil {
		a.zl.Error().Err(err).Msg("bigadd")
		stop()
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigadd A B",
		Short:         "Add arbitrarily large non-negative integers",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.Add(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	// Used before setup runs, e.g. for flag parse errors.
	a.zl = log.NewZerologAdapter(a.stderr, zerolog.InfoLevel).Logger()

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.bigadd/config.toml)")
	flags.BoolVar(&a.cfg.Canonical, "canonical", a.cfg.Canonical, "strip leading zeros from results")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format: text or json")
	flags.StringVar(&a.cfg.MetricsAddr, "metrics-addr", a.cfg.MetricsAddr, "serve Prometheus metrics on this address (watch and mcp only)")

	root.AddCommand(a.sumCommand(), a.watchCommand(), a.mcpCommand())
	return root
}

// setup layers file, env and flags, then builds the logger and calculator.
func (a *app) setup(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	} else if a.cfgPath != "" {
		return fmt.Errorf("config file %s not found", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	adapter := log.NewZerologAdapter(a.stderr, a.cfg.Level())
	a.zl = adapter.Logger()
	a.logger = adapter
	a.zl.Debug().Interface("config", a.cfg).Msg("configuration")

	a.calc = calc.New(
		calc.WithLogger(a.logger),
		calc.WithCanonical(a.cfg.Canonical),
		calc.WithRecorder(metrics.Recorder{}),
	)
	return nil
}

func (a *app) print(res calc.Result) error {
	if a.cfg.Output == cliconfig.OutputJSON {
		enc := json.NewEncoder(a.stdout)
		return enc.Encode(res)
	}
	_, err := fmt.Fprintln(a.stdout, res.Sum)
	return err
}

// serveMetrics starts the metrics endpoint when configured. Errors are logged;
// the main mode keeps running without metrics.
func (a *app) serveMetrics(ctx context.Context) {
	if a.cfg.MetricsAddr == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, a.cfg.MetricsAddr, a.logger); err != nil {
			a.logger.Error("metrics server stopped", log.Err(err))
		}
	}()
}
