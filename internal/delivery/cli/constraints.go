package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/pkg/response"
)

func newConstraintsCommand(app *bootstrap.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Inspect or replace the scheduling constraints",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parent := cmd.Root(); parent.PersistentPreRunE != nil {
				if err := parent.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return requireRole(app, entity.RoleAdmin)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active scheduling constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return response.Success(cmd.OutOrStdout(), "", app.Constraints.Current(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replace <json>",
		Short: "Replace the scheduling constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var next entity.Constraints
			if err := decodeArg(args[0], &next); err != nil {
				return err
			}
			err := app.Constraints.Replace(cmd.Context(), next)
			return render(app, cmd, err, "constraints replaced", next)
		},
	})

	return cmd
}
