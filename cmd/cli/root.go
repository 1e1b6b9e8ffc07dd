package main

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/buildinfo"
	"github.com/dmitrijs2005/gophauth/internal/client/cli"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "gophauth",
		Short: "gophauth - authentication client",
		Long: `gophauth registers accounts, logs in and out against the
authentication API, and keeps the issued bearer token on disk.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *cli.App) error {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
				app.Root(ctx)
				return nil
			})
		},
	}

	flags = config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newActionCmd(flags, "register", "Create an account and log in", (*cli.App).Register))
	cmd.AddCommand(newActionCmd(flags, "login", "Log in with email and password", (*cli.App).Login))
	cmd.AddCommand(newActionCmd(flags, "logout", "Forget the stored token", (*cli.App).Logout))
	cmd.AddCommand(newActionCmd(flags, "status", "Show the current session", (*cli.App).Status))
	cmd.AddCommand(newActionCmd(flags, "token", "Print the stored bearer token", (*cli.App).Token))

	return cmd
}

// newActionCmd runs one App action and exits.
func newActionCmd(flags *config.Flags, use, short string, action func(*cli.App, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *cli.App) error {
				return action(app, ctx)
			})
		},
	}
}

// withApp loads the configuration, builds the App and closes it after fn.
func withApp(cmd *cobra.Command, flags *config.Flags, fn func(context.Context, *cli.App) error) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	return fn(ctx, app)
}
