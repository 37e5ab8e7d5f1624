package cli

import (
	"github.com/spf13/cobra"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/domain/entity"
)

// Directory management: units, doctors, receptionists, specialties and
// consultation form templates. Admin territory in the original UI.

func newUnitsCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "units", "unit", crudHooks{
		guard: func() error { return requireRole(app, entity.RoleAdmin) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Units(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var unit entity.Unit
			if err := decodeArg(raw, &unit); err != nil {
				return nil, err
			}
			return app.Units.Add(cmd.Context(), unit)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var unit entity.Unit
			if err := decodeArg(raw, &unit); err != nil {
				return nil, err
			}
			return app.Units.Update(cmd.Context(), unit)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Units.Remove(cmd.Context(), id)
		},
	})
}

func newDoctorsCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "doctors", "doctor", crudHooks{
		guard: func() error { return requireRole(app, entity.RoleAdmin) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Doctors(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var doctor entity.Doctor
			if err := decodeArg(raw, &doctor); err != nil {
				return nil, err
			}
			return app.Doctors.Add(cmd.Context(), doctor)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var doctor entity.Doctor
			if err := decodeArg(raw, &doctor); err != nil {
				return nil, err
			}
			return app.Doctors.Update(cmd.Context(), doctor)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Doctors.Remove(cmd.Context(), id)
		},
	})
}

func newReceptionistsCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "receptionists", "receptionist", crudHooks{
		guard: func() error { return requireRole(app, entity.RoleAdmin) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Receptionists(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var receptionist entity.Receptionist
			if err := decodeArg(raw, &receptionist); err != nil {
				return nil, err
			}
			return app.Receptionists.Add(cmd.Context(), receptionist)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var receptionist entity.Receptionist
			if err := decodeArg(raw, &receptionist); err != nil {
				return nil, err
			}
			return app.Receptionists.Update(cmd.Context(), receptionist)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Receptionists.Remove(cmd.Context(), id)
		},
	})
}

func newSpecialtiesCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "specialties", "specialty", crudHooks{
		guard: func() error { return requireRole(app, entity.RoleAdmin) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Specialties(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var specialty entity.Specialty
			if err := decodeArg(raw, &specialty); err != nil {
				return nil, err
			}
			return app.Specialties.Add(cmd.Context(), specialty)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var specialty entity.Specialty
			if err := decodeArg(raw, &specialty); err != nil {
				return nil, err
			}
			return app.Specialties.Update(cmd.Context(), specialty)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Specialties.Remove(cmd.Context(), id)
		},
	})
}

func newTemplatesCommand(app *bootstrap.App) *cobra.Command {
	return newCrudCommand(app, "templates", "template", crudHooks{
		guard: func() error { return requireRole(app, entity.RoleAdmin) },
		list: func(cmd *cobra.Command) (interface{}, error) {
			return app.Store.Templates(), nil
		},
		add: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var template entity.SpecialtyTemplate
			if err := decodeArg(raw, &template); err != nil {
				return nil, err
			}
			return app.Specialties.AddTemplate(cmd.Context(), template)
		},
		update: func(cmd *cobra.Command, raw string) (interface{}, error) {
			var template entity.SpecialtyTemplate
			if err := decodeArg(raw, &template); err != nil {
				return nil, err
			}
			return app.Specialties.UpdateTemplate(cmd.Context(), template)
		},
		remove: func(cmd *cobra.Command, id string) error {
			return app.Specialties.RemoveTemplate(cmd.Context(), id)
		},
	})
}
