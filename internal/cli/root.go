package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/bootstrap"
	"github.com/mamadbah2/herd/internal/config"
	"github.com/mamadbah2/herd/internal/service/reporting"
	"github.com/mamadbah2/herd/pkg/logger"
)

// Options are the flags shared by every subcommand.
type Options struct {
	EnvFile string
	Debug   bool
}

// Opener builds the reporting service for one command invocation. The
// returned cleanup releases backend connections.
type Opener func(ctx context.Context, opts Options) (Reporter, func(), error)

// Execute runs the herdreport root command.
func Execute() {
	cmd := newRootCmd(openReporting)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open Opener) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:          "herdreport",
		Short:        "Herd movement and group reports from the cattle register",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file to load (defaults to ./.env when present)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(movementCmd(open, &opts))
	cmd.AddCommand(groupsCmd(open, &opts))
	return cmd
}

func openReporting(ctx context.Context, opts Options) (Reporter, func(), error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewConsole(opts.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	backend, err := bootstrap.OpenBackend(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		if err := backend.Close(context.Background()); err != nil {
			log.Warn("failed to close backend", zap.Error(err))
		}
		_ = log.Sync()
	}

	return reporting.NewService(backend.Source, backend.Store, log.Named("svc.reporting")), cleanup, nil
}
