package usecase

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/internal/domain/entity"
)

func scriptDoctorLogin(f *fixture) {
	f.authority.RespondToLogin(map[string]interface{}{
		"token":              "tok-1",
		"role":               "doctor",
		"doctorId":           "d1",
		"unitId":             "u1",
		"mustChangePassword": true,
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	scriptDoctorLogin(f)

	sess, err := u.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, sess.Role)
	assert.Equal(t, "d1", sess.DoctorID)
	assert.True(t, sess.MustChangePassword)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, sess, u.Current())

	// The token is installed on the remote client.
	_, err = f.remote.ListUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", f.authority.LastAuthorization())

	// And the session survived to durable storage.
	persisted, err := f.sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, persisted)
}

func TestAuthUsecase_LoginValidation(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)

	_, err := u.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.Empty(t, f.authority.Requests())
}

func TestAuthUsecase_LoginRejected(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	f.authority.RejectLogin("bad credentials")

	_, err := u.Login(context.Background(), "doc@clinic.test", "wrong")
	require.Error(t, err)
	assert.False(t, u.Current().IsAuthenticated())
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	scriptDoctorLogin(f)

	_, err := u.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword(context.Background(), "secret", "longenough"))
	assert.False(t, u.Current().MustChangePassword)

	persisted, err := f.sessions.Load()
	require.NoError(t, err)
	assert.False(t, persisted.MustChangePassword)
}

func TestAuthUsecase_ChangePasswordRequiresLogin(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)

	err := u.ChangePassword(context.Background(), "secret", "longenough")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAuthUsecase_ChangePasswordTooShort(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	scriptDoctorLogin(f)

	_, err := u.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)
	seen := len(f.authority.Requests())

	err = u.ChangePassword(context.Background(), "secret", "short")
	require.Error(t, err)
	assert.Len(t, f.authority.Requests(), seen)
}

func TestAuthUsecase_Logout(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	scriptDoctorLogin(f)

	_, err := u.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)
	require.NoError(t, u.Logout(context.Background()))

	assert.False(t, u.Current().IsAuthenticated())

	persisted, err := f.sessions.Load()
	require.NoError(t, err)
	assert.False(t, persisted.IsAuthenticated())

	// The bearer token no longer accompanies requests.
	_, err = f.remote.ListUnits(context.Background())
	require.NoError(t, err)
	assert.Empty(t, f.authority.LastAuthorization())
}

func TestAuthUsecase_Restore(t *testing.T) {
	f := newFixture(t)
	scriptDoctorLogin(f)

	first := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	_, err := first.Login(context.Background(), "doc@clinic.test", "secret")
	require.NoError(t, err)

	// A fresh usecase over the same durable store picks the session up.
	second := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	restored, err := second.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, restored.Role)
	assert.Equal(t, "tok-1", restored.Token)
	assert.Equal(t, restored, second.Current())
}

func TestAuthUsecase_RestoreExpiredToken(t *testing.T) {
	f := newFixture(t)

	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		Subject:   "d1",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("authority-key"))
	require.NoError(t, err)

	require.NoError(t, f.sessions.Save(entity.Session{
		Role:     entity.RoleDoctor,
		DoctorID: "d1",
		Token:    expired,
	}))

	// Expiry only earns a warning; the session is restored and the token
	// installed, leaving the authority's 401 as the real verdict.
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)
	restored, err := u.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expired, restored.Token)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, restored, u.Current())

	_, err = f.remote.ListUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+expired, f.authority.LastAuthorization())
}

func TestAuthUsecase_RestoreWithoutSession(t *testing.T) {
	f := newFixture(t)
	u := NewAuthUsecase(f.sessions, f.remote, f.log, f.validate)

	restored, err := u.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Session{}, restored)
	assert.False(t, u.Current().IsAuthenticated())
}
