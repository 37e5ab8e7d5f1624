package cli

import (
	"errors"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/internal/domain/entity"
)

var (
	errLoginRequired = errors.New("login required")
	errForbidden     = errors.New("your role does not permit this operation")
)

// requireRole checks the current session against the allowed roles
func requireRole(app *bootstrap.App, allowed ...entity.Role) error {
	sess := app.Auth.Current()
	if !sess.IsAuthenticated() {
		return errLoginRequired
	}
	for _, role := range allowed {
		if sess.Role == role {
			return nil
		}
	}
	return errForbidden
}

// requirePatientEditor allows admins always and doctors only when their
// record carries the canEditPatients flag.
func requirePatientEditor(app *bootstrap.App) error {
	if err := requireRole(app, entity.RoleAdmin, entity.RoleDoctor); err != nil {
		return err
	}
	sess := app.Auth.Current()
	if sess.Role != entity.RoleDoctor {
		return nil
	}
	doctor, ok := app.Store.DoctorByID(sess.DoctorID)
	if !ok || !doctor.CanEditPatients {
		return errForbidden
	}
	return nil
}

// requireVisitManager allows admins always and doctors only when their
// record carries the canManageVisits flag.
func requireVisitManager(app *bootstrap.App) error {
	if err := requireRole(app, entity.RoleAdmin, entity.RoleDoctor); err != nil {
		return err
	}
	sess := app.Auth.Current()
	if sess.Role != entity.RoleDoctor {
		return nil
	}
	doctor, ok := app.Store.DoctorByID(sess.DoctorID)
	if !ok || !doctor.CanManageVisits {
		return errForbidden
	}
	return nil
}
