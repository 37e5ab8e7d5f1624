// Package converter maps between wire-level representations and domain
// entities where the two are not the same shape.
package converter

import (
	"strconv"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
)

// Storage keys for the persisted session. They mirror the key names the
// original client family uses, so a session file survives client swaps.
const (
	KeyRole               = "med.role"
	KeyDoctorID           = "med.doctorId"
	KeyUnitID             = "med.unitId"
	KeyReceptionistID     = "med.receptionistId"
	KeyToken              = "med.token"
	KeyMustChangePassword = "med.mustChangePassword"
)

// LoginToSession converts the authority's login response into the
// client-side session record.
func LoginToSession(res remote.LoginResponse) entity.Session {
	return entity.Session{
		Role:               res.Role,
		DoctorID:           res.DoctorID,
		UnitID:             res.UnitID,
		ReceptionistID:     res.ReceptionistID,
		Token:              res.Token,
		MustChangePassword: res.MustChangePassword,
	}
}

// SessionToValues flattens a session into the key-value rows the durable
// store persists. Empty fields are omitted so a reload of an admin
// session does not resurrect stale doctor/unit ids.
func SessionToValues(s entity.Session) map[string]string {
	values := map[string]string{
		KeyRole:  string(s.Role),
		KeyToken: s.Token,
	}
	if s.DoctorID != "" {
		values[KeyDoctorID] = s.DoctorID
	}
	if s.UnitID != "" {
		values[KeyUnitID] = s.UnitID
	}
	if s.ReceptionistID != "" {
		values[KeyReceptionistID] = s.ReceptionistID
	}
	if s.MustChangePassword {
		values[KeyMustChangePassword] = "true"
	}
	return values
}

// SessionFromValues rebuilds a session from persisted rows
func SessionFromValues(values map[string]string) entity.Session {
	mustChange, _ := strconv.ParseBool(values[KeyMustChangePassword])
	return entity.Session{
		Role:               entity.Role(values[KeyRole]),
		DoctorID:           values[KeyDoctorID],
		UnitID:             values[KeyUnitID],
		ReceptionistID:     values[KeyReceptionistID],
		Token:              values[KeyToken],
		MustChangePassword: mustChange,
	}
}
