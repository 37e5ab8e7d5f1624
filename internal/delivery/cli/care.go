package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/domain/entity"
)

// Care records: patients and visit histories. Mutation is gated on the
// doctor's permission flags, the way the original UI gated its forms.

func newPatientsCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "patients", "patient", crudHooks{
		guard: func() error { return requirePatientEditor(app) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Patients(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var patient entity.Patient
			if err := decodeArg(raw, &patient); err != nil {
				return nil, err
			}
			return app.Patients.Add(cmd.Context(), patient)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var patient entity.Patient
			if err := decodeArg(raw, &patient); err != nil {
				return nil, err
			}
			return app.Patients.Update(cmd.Context(), patient)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Patients.Remove(cmd.Context(), id)
		},
	})
}

func newVisitsCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "visits", "visit", crudHooks{
		guard: func() error { return requireVisitManager(app) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Visits(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var visit entity.VisitEntry
			if err := decodeArg(raw, &visit); err != nil {
				return nil, err
			}
			return app.Visits.Add(cmd.Context(), visit)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var visit entity.VisitEntry
			if err := decodeArg(raw, &visit); err != nil {
				return nil, err
			}
			return app.Visits.Update(cmd.Context(), visit)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Visits.Remove(cmd.Context(), id)
		},
	})
}
