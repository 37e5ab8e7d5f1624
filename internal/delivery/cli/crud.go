package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/pkg/response"
)

// crudHooks binds the four generic verbs of one collection to its
// usecase. add and update receive the raw JSON payload argument.
type crudHooks struct {
	guard  func() error
	list   func(cmd *cobra.Command) (interface{}, error)
	add    func(cmd *cobra.Command, raw string) (interface{}, error)
	update func(cmd *cobra.Command, raw string) (interface{}, error)
	remove func(cmd *cobra.Command, id string) error
}

func newCrudCommand(app *bootstrap.App, use, singular string, hooks crudHooks) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage " + use,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Root restore first, then the role gate for this collection.
			if parent := cmd.Root(); parent.PersistentPreRunE != nil {
				if err := parent.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			return hooks.guard()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List " + use + " known locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hooks.list(cmd)
			if err != nil {
				return err
			}
			return response.Success(cmd.OutOrStdout(), "", data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <json>",
		Short: "Create a " + singular,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hooks.add(cmd, args[0])
			return render(app, cmd, err, singular+" created", data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <json>",
		Short: "Replace a " + singular + " by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hooks.update(cmd, args[0])
			return render(app, cmd, err, singular+" updated", data)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a " + singular + " (cascading where the domain requires it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := hooks.remove(cmd, args[0])
			return render(app, cmd, err, singular+" removed", nil)
		},
	})

	return cmd
}
