package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ea",
		Short:         "Estate Admin CLI (ea): administer the real-estate CRM backend",
		Long:          "ea (Estate Admin CLI) signs a superadmin in to the CRM backend, picks the local or remote API environment, and manages roles, users and projects from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			opts.LogOut = cmd.ErrOrStderr()
			wired, err := wireApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every API call (debug level)")
	rootCmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEnvCmd(app),
		newAuthCmd(app),
		newRoleCmd(app),
		newUserCmd(app),
		newProjectCmd(app),
	)

	return rootCmd
}
