package cmd

import (
	"github.com/bnema/estate-admin-cli/internal/adapters/render/console"
	"github.com/bnema/estate-admin-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRoleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage roles and the screens they grant",
	}

	cmd.AddCommand(
		newRoleListCmd(app),
		newRoleGetCmd(app),
		newRoleCreateCmd(app),
		newRoleUpdateCmd(app),
		newRoleDeleteCmd(app),
	)

	return cmd
}

func newRoleListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roles, err := app.roles.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, roles, func() (string, error) {
				return console.Roles(roles)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newRoleGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := app.roles.Get(cmd.Context(), domain.RoleID(args[0]))
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, role, func() (string, error) {
				return console.Role(role)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newRoleCreateCmd(app *app) *cobra.Command {
	var name string
	var screens []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := app.roles.Create(cmd.Context(), domain.RoleInput{
				Name:    name,
				Screens: toScreens(screens),
			})
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, role, func() (string, error) {
				return console.Role(role)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name")
	cmd.Flags().StringSliceVar(&screens, "screen", nil, "Screen the role grants (repeatable, comma separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newRoleUpdateCmd(app *app) *cobra.Command {
	var name string
	var screens []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a role or replace its screens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.RoleID(args[0])

			current, err := app.roles.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			input := domain.RoleInput{Name: current.Name, Screens: current.Screens}
			if cmd.Flags().Changed("name") {
				input.Name = name
			}
			if cmd.Flags().Changed("screen") {
				input.Screens = toScreens(screens)
			}

			role, err := app.roles.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, role, func() (string, error) {
				return console.Role(role)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New role name")
	cmd.Flags().StringSliceVar(&screens, "screen", nil, "Replacement screens (repeatable, comma separated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newRoleDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.roles.Delete(cmd.Context(), domain.RoleID(args[0])); err != nil {
				return err
			}
			return writeLine(cmd, "Deleted role %s", args[0])
		},
	}
}

func toScreens(raw []string) []domain.Screen {
	screens := make([]domain.Screen, 0, len(raw))
	for _, screen := range raw {
		screens = append(screens, domain.Screen(screen))
	}
	return screens
}
