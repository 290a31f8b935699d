package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/rinkadapter/internal/adapter"
	"github.com/harrison/rinkadapter/internal/config"
	"github.com/harrison/rinkadapter/internal/logger"
	"github.com/harrison/rinkadapter/internal/models"
	"github.com/harrison/rinkadapter/internal/tool"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for rinkadapter
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rinkadapter <query...>",
		Short: "Launcher plugin that answers unit conversions with rink",
		Long: `rinkadapter joins its arguments into a query, runs the rink calculator
on it and prints a JSON array of launcher entries: one entry holding the
result, or [] when there is nothing worth showing.

Every argument belongs to the query, including ones that look like flags
such as "-40 °C to °F" or "-h". Settings come from the config file
($` + config.ConfigEnvVar + ` or $XDG_CONFIG_HOME/rinkadapter/config.yaml) and the
RINKADAPTER_* environment variables.`,
		Args: cobra.ArbitraryArgs,
		// The launcher passes user text verbatim; nothing may be read as a flag.
		DisableFlagParsing: true,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(os.LookupEnv)
			if err != nil {
				// The launcher still gets a well-formed, empty answer.
				logger.NewConsoleLogger(cmd.ErrOrStderr(), os.Getenv(config.EnvLogLevel)).Errorf("config: %v", err)
				return emitEmpty(cmd.OutOrStdout())
			}

			log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			log.Debugf("rinkadapter %s profile=%s tool=%s timeout=%s min_length=%d", Version, cfg.Profile, cfg.ToolPath, cfg.Timeout, cfg.EffectiveMinQueryLength())

			a := adapter.New(cfg, tool.NewExecRunner(cfg.Timeout), log)
			return a.Run(commandContext(cmd), args, cmd.OutOrStdout())
		},
	}

	// No help subcommand or completion command; "help" is a query word.
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func emitEmpty(w io.Writer) error {
	return adapter.Emit(w, models.EmptyResultSet())
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
