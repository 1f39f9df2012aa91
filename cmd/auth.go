package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/adapters/render/console"
	"github.com/bnema/estate-admin-cli/internal/application"
	"github.com/spf13/cobra"
)

var errPasswordSourceConflict = errors.New("use either --password or --password-stdin, not both")

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the superadmin session",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthLogoutCmd(app), newAuthWhoamiCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var username string
	var password string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a superadmin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passwordStdin {
				if password != "" {
					return errPasswordSourceConflict
				}
				var err error
				password, err = readPassword(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			session, err := app.sessions.Login(cmd.Context(), application.LoginCommand{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			return writeLine(cmd, "Logged in as %s (%s)", session.User.Name, session.User.Role)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			return writeLine(cmd, "Logged out")
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in superadmin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Current(cmd.Context())
			if err != nil {
				return err
			}
			return writeView(cmd, asJSON, session.User, func() (string, error) {
				return console.Session(session)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
