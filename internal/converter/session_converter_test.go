package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
)

func TestLoginToSession(t *testing.T) {
	sess := LoginToSession(remote.LoginResponse{
		Token:              "tok-1",
		Role:               entity.RoleDoctor,
		DoctorID:           "d1",
		UnitID:             "u1",
		MustChangePassword: true,
	})

	assert.Equal(t, entity.RoleDoctor, sess.Role)
	assert.Equal(t, "d1", sess.DoctorID)
	assert.Equal(t, "u1", sess.UnitID)
	assert.True(t, sess.MustChangePassword)
	assert.True(t, sess.IsAuthenticated())
}

func TestSessionValues_RoundTrip(t *testing.T) {
	sess := entity.Session{
		Role:               entity.RoleReceptionist,
		ReceptionistID:     "r1",
		UnitID:             "u1",
		Token:              "tok-1",
		MustChangePassword: true,
	}

	assert.Equal(t, sess, SessionFromValues(SessionToValues(sess)))
}

func TestSessionToValues_OmitsEmptyIdentity(t *testing.T) {
	values := SessionToValues(entity.Session{Role: entity.RoleAdmin, Token: "tok-1"})

	assert.Equal(t, "admin", values[KeyRole])
	assert.Equal(t, "tok-1", values[KeyToken])
	assert.NotContains(t, values, KeyDoctorID)
	assert.NotContains(t, values, KeyUnitID)
	assert.NotContains(t, values, KeyReceptionistID)
	assert.NotContains(t, values, KeyMustChangePassword)
}
