package commands

import (
	"aboki/lib/configutil"
	"aboki/lib/restyutil"
	"aboki/lib/scrapers/abokifx"
	"aboki/lib/telemetry"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const version = "1.0.1"

type Config struct {
	BaseUrl                 string `json:"base_url"`
	TimeoutSeconds          int    `json:"timeout_seconds"`
	UserAgent               string `json:"user_agent"`
	DisableCloudflareBypass bool   `json:"disable_cloudflare_bypass"`
	// table or json
	Output string `json:"output"`
}

func defaultConfig() Config {
	return Config{
		BaseUrl:        abokifx.DefaultBaseUrl,
		TimeoutSeconds: 30,
		Output:         string(FormatTable),
	}
}

// app is the state of a single invocation.
type app struct {
	configPath string
	baseUrl    string
	timeout    time.Duration
	verbose    bool
	dumpDir    string
	noColor    bool

	config    Config
	client    *abokifx.Client
	telemetry telemetry.Telemetry
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "aboki",
		Short:   "Black market currency rates instantly in your terminal (powered by abokifx.com).",
		Version: version,
		Example: `  aboki recent
  aboki rates moneygram
  aboki rate gbp --output json
  aboki convert 5000 ngn usd`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "aboki.json5", "The config file, searched for upwards from the working directory unless a path is given.")
	flags.StringVar(&a.baseUrl, "base-url", "", "Overrides the abokifx base url.")
	flags.DurationVar(&a.timeout, "timeout", 0, "Overrides the request timeout.")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enables debug logging.")
	flags.StringVar(&a.dumpDir, "dump-dir", "", "Writes every http exchange to this directory.")
	flags.BoolVar(&a.noColor, "no-color", false, "Disables coloured warnings.")

	rootCmd.AddCommand(
		newRecentCmd(a),
		newRatesCmd(a),
		newRateCmd(a),
		newConvertCmd(a),
		newTestCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	telemetry.InitSlogTo(cmd.ErrOrStderr(), a.verbose)
	ctx := cmd.Context()

	cfg, err := configutil.Load(a.configPath, defaultConfig())
	if err != nil {
		return fmt.Errorf("read config %s: %w", a.configPath, err)
	}
	if a.baseUrl != "" {
		cfg.BaseUrl = a.baseUrl
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if a.timeout > 0 {
		timeout = a.timeout
	}
	a.config = cfg

	a.telemetry, err = telemetry.SetupFromEnv(ctx, "aboki")
	if err != nil {
		slog.WarnContext(ctx, "telemetry disabled", "err", err)
	}

	opts := abokifx.ClientOptions{
		BaseUrl:                 cfg.BaseUrl,
		Timeout:                 timeout,
		UserAgent:               cfg.UserAgent,
		DisableCloudflareBypass: cfg.DisableCloudflareBypass,
	}
	if a.dumpDir != "" {
		out, err := restyutil.NewFilesystemOutput(a.dumpDir)
		if err != nil {
			return fmt.Errorf("prepare dump dir: %w", err)
		}
		opts.Dump = out
	}

	a.client, err = abokifx.NewClient(opts)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	slog.DebugContext(ctx, "client ready", "base_url", a.client.BaseUrl.String(), "timeout", timeout)
	return nil
}

// printer resolves the output format for a command, an empty flag falls
// back to the configured default.
func (a *app) printer(cmd *cobra.Command, output string) (printer, error) {
	if output == "" {
		output = a.config.Output
	}
	format, err := ParseFormat(output)
	if err != nil {
		return printer{}, err
	}
	return printer{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		format: format,
		color:  !a.noColor,
	}, nil
}

func (a *app) shutdown() {
	if !a.telemetry.Enabled() {
		return
	}
	err := a.telemetry.Shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	defer a.shutdown()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		report(errOut, err, !a.noColor)
		return 1
	}
	return 0
}

// ExecuteContext runs the cli against os.Args and returns the exit code.
func ExecuteContext(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
