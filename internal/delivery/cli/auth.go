package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/pkg/response"
)

func newLoginCommand(app *bootstrap.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the system of record",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return render(app, cmd, err, "", nil)
			}
			message := "Logged in"
			if sess.MustChangePassword {
				message = "Logged in; password change required before continuing"
			}
			return response.Success(cmd.OutOrStdout(), message, sess)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(app *bootstrap.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			return response.Success(cmd.OutOrStdout(), "Logged out", nil)
		},
	}
}

func newChangePasswordCommand(app *bootstrap.App) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Rotate the password for the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Auth.ChangePassword(cmd.Context(), current, next)
			return render(app, cmd, err, "Password changed", nil)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}
