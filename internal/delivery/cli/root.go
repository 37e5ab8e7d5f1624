// Package cli is the delivery layer: thin cobra glue that dispatches
// intents to the usecases and renders their outcomes. Everything with
// real invariants lives below it.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/pkg/apierr"
	"clinic-ops-client/pkg/response"
)

// Execute runs the root command. Generic failures render as one
// error envelope (the page-level banner of the original UI); scheduling
// conflicts are rendered inline by the commands themselves.
func Execute(app *bootstrap.App) error {
	root := NewRootCommand(app)
	if err := root.Execute(); err != nil {
		_ = response.Error(os.Stderr, "command failed", err.Error())
		return err
	}
	return nil
}

func NewRootCommand(app *bootstrap.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clinicctl",
		Short:         "Clinic operations client",
		Long:          "Manage units, staff, patients, consultation forms and appointment calendars against the clinic's system of record.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Pick up a persisted session; commands that need one gate
			// on it themselves, so login works without.
			_, err := app.Auth.Restore(cmd.Context())
			return err
		},
	}

	cmd.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newChangePasswordCommand(app),
		newRefreshCommand(app),
		newUnitsCommand(app),
		newDoctorsCommand(app),
		newReceptionistsCommand(app),
		newSpecialtiesCommand(app),
		newTemplatesCommand(app),
		newPatientsCommand(app),
		newVisitsCommand(app),
		newAppointmentsCommand(app),
		newConstraintsCommand(app),
	)
	return cmd
}

func newRefreshCommand(app *bootstrap.App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload all collections from the system of record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Refresh.Refresh(cmd.Context()); err != nil {
				return err
			}
			return response.Success(cmd.OutOrStdout(), "Collections refreshed", app.Store.Snapshot())
		},
	}
}

func decodeArg(raw string, out interface{}) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// render maps a usecase outcome onto the response envelope. Conflicts
// and validation problems are terminal for the attempt but not command
// failures, matching how the original surfaced them inline.
func render(app *bootstrap.App, cmd *cobra.Command, err error, message string, data interface{}) error {
	if err == nil {
		return response.Success(cmd.OutOrStdout(), message, data)
	}
	if apierr.IsConflict(err) {
		return response.Conflict(cmd.OutOrStdout(), apierr.ConflictReason(err))
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return response.ValidationError(cmd.OutOrStdout(), app.Validator.FormatValidationErrors(verrs))
	}
	return err
}
