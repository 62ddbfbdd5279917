package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/lotayaai/lotaya-io/internal/cli/config"
	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/internal/version"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
)

// app carries the global flags and what is derived from them. It is filled
// in by the root command's PersistentPreRunE.
type app struct {
	cfgFile   string
	serverURL string
	output    string
	debug     bool
	noColor   bool

	cfg      *config.Config
	log      *slog.Logger
	registry *tools.Registry
	client   *sdk.Client
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{registry: tools.Default()}

	rootCmd := &cobra.Command{
		Use:   "lotaya",
		Short: "CLI for the Lotaya AI design tools",
		Long: `Command-line interface for the Lotaya AI generation API.

Run any of the twelve design tools from the terminal, browse them
interactively, or check on the API server. Output can be rendered as a
table, JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.lotaya/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.serverURL, "server", "", "Lotaya API server URL")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newToolsCmd(a),
		newGenerateCmd(a),
		newPingCmd(a),
		newStatusCmd(a),
		newOpenCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI. Failures are reported to Sentry when a DSN is
// configured through LOTAYA_SENTRY_DSN.
func Execute() error {
	dsn := os.Getenv("LOTAYA_SENTRY_DSN")
	if dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: "lotaya-cli@" + version.Version,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize sentry: %s\n", err)
		}
		defer sentry.Flush(2 * time.Second)
		defer func() {
			if r := recover(); r != nil {
				sentry.CurrentHub().Recover(r)
				sentry.Flush(2 * time.Second)
				panic(r)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && dsn != "" {
		sentry.CaptureException(err)
	}
	return err
}

func (a *app) init(cmd *cobra.Command) error {
	path := config.DiscoverPath(a.cfgFile)
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.serverURL != "" {
		cfg.ServerURL = a.serverURL
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.debug {
		cfg.Debug = true
	}
	if err := checkFormat(cfg.Output); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Debug)
	a.log.Debug("config loaded", slog.String("path", path), slog.String("server", cfg.ServerURL))
	return nil
}

// apiClient returns the SDK client for the configured server.
func (a *app) apiClient() (*sdk.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	c, err := sdk.New(sdk.Config{
		ServerURL: a.cfg.ServerURL,
		Timeout:   a.cfg.RequestTimeout(),
		UserAgent: "lotaya-cli/" + version.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w. Set LOTAYA_SERVER_URL or run: lotaya config set-server <url>", err)
	}
	a.client = c
	return c, nil
}
