package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/domain/entity"
)

func newAppointmentsCommand(app *bootstrap.App) *cobra.Command {
	// Booking is front-desk territory, but doctors may read their own
	// schedule, so mutation is gated per verb rather than on the group.
	mutationGuard := func() error {
		return requireRole(app, entity.RoleAdmin, entity.RoleReceptionist)
	}

	return newCrudCommand(app, "appointments", "appointment", crudHooks{
		guard: func() error {
			return requireRole(app, entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor)
		},
		list: func(cmd *cobra.Command) (interface{}, error) {
			if sess := app.Auth.Current(); sess.Role == entity.RoleDoctor {
				return app.Store.AppointmentsForDoctor(sess.DoctorID, ""), nil
			}
			return app.Store.Appointments(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			if err := mutationGuard(); err != nil {
				return nil, err
			}
			var appointment entity.Appointment
			if err := decodeArg(raw, &appointment); err != nil {
				return nil, err
			}
			return app.Appointments.Add(cmd.Context(), appointment)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			if err := mutationGuard(); err != nil {
				return nil, err
			}
			var appointment entity.Appointment
			if err := decodeArg(raw, &appointment); err != nil {
				return nil, err
			}
			return app.Appointments.Update(cmd.Context(), appointment)
		},
		remove: func(cmd *cobra.Command, id string) error {
			if err := mutationGuard(); err != nil {
				return err
			}
			return app.Appointments.Remove(cmd.Context(), id)
		},
	})
}
