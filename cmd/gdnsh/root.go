package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/kartikbazzad/gdnsh/cmd/gdnsh/shell"
	"github.com/kartikbazzad/gdnsh/internal/config"
	"github.com/kartikbazzad/gdnsh/internal/logger"
	"github.com/kartikbazzad/gdnsh/pkg/gdn"
)

type options struct {
	envFile   string
	logLevel  string
	logFormat string
}

// app is what every command needs once configuration has been validated.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	clients shell.Clients
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "gdnsh",
		Short:         "Interactive demo shell for a Macrometa GDN fabric",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return a.runShell(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR); overrides LOG_LEVEL")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format (text, json); overrides LOG_FORMAT")

	rootCmd.AddCommand(newKVCmd(opts), newDocCmd(opts))
	return rootCmd
}

// setup loads and validates configuration before any client handle exists.
func (o *options) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	log := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	gcfg := gdn.NewConfiguration(cfg.BaseURL, cfg.APIKey, cfg.Fabric)
	gcfg.Timeout = cfg.Timeout
	gcfg.RateLimit = rate.Limit(cfg.RateLimit)
	gcfg.Logger = log

	log.Debug("configuration loaded", "base_url", cfg.BaseURL, "fabric", cfg.Fabric, "timeout", cfg.Timeout)

	return &app{
		cfg: cfg,
		log: log,
		clients: shell.Clients{
			KeyValue:    gdn.NewKeyValueClient(gcfg),
			Collections: gdn.NewCollectionsClient(gcfg),
			Documents:   gdn.NewDocumentClient(gcfg),
		},
	}, nil
}

func (a *app) runShell(cmd *cobra.Command) error {
	in := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
	defer in.Close()

	return shell.NewShell(in, cmd.OutOrStdout(), a.clients, a.log).Run(cmd.Context())
}

func newLineReader(in io.Reader, out io.Writer) shell.LineReader {
	if f, ok := in.(*os.File); ok {
		return shell.NewLineReader(f, out)
	}
	return shell.NewBufferedReader(in, out)
}
