package cmd

import (
	"context"

	"github.com/bnema/estate-admin-cli/internal/adapters/render/console"
	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/spf13/cobra"
)

func newEnvCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show or choose the API environment",
	}

	cmd.AddCommand(newEnvShowCmd(app), newEnvDetectCmd(app), newEnvUseCmd(app))

	return cmd
}

func newEnvShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the configured environments and the active choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.environments.Status(cmd.Context())
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, status, func() (string, error) {
				return console.Environment(status)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newEnvDetectCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Probe the local backend and report which environment auto mode would pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			detect := app.environments.Detect
			if !asJSON {
				detect = func(ctx context.Context) (application.DetectResult, error) {
					return withProgress(ctx, cmd.ErrOrStderr(), "Probing local backend", app.environments.Detect)
				}
			}

			result, err := detect(cmd.Context())
			if err != nil {
				return err
			}

			return writeView(cmd, asJSON, result, func() (string, error) {
				return console.Detection(result)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newEnvUseCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "use <local|remote|auto>",
		Short:     "Pin an environment for later runs, or return to auto detection",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"local", "remote", application.EnvironmentAuto},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.environments.Use(cmd.Context(), application.UseEnvironmentCommand{Name: args[0]})
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, status, func() (string, error) {
				return console.Environment(status)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
