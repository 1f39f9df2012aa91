package cmd

import (
	"github.com/bnema/estate-admin-cli/internal/adapters/render/console"
	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage CRM users",
	}

	cmd.AddCommand(newUserListCmd(app), newUserCreateCmd(app), newUserDeleteCmd(app))

	return cmd
}

func newUserListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.users.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, users, func() (string, error) {
				return console.Users(users)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newUserCreateCmd(app *app) *cobra.Command {
	var input application.CreateUserCommand
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user with an existing role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.users.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, user, func() (string, error) {
				return console.Users([]domain.User{user})
			})
		},
	}

	cmd.Flags().StringVar(&input.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (at least 6 characters)")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&input.Role, "role", "", "Role id or name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newUserDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user (superadmins are protected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.users.Delete(cmd.Context(), domain.UserID(args[0])); err != nil {
				return err
			}
			return writeLine(cmd, "Deleted user %s", args[0])
		},
	}
}
