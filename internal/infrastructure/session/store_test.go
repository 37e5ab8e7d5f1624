package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/internal/domain/entity"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_SaveAndLoad(t *testing.T) {
	s, _ := openStore(t)

	sess := entity.Session{
		Role:               entity.RoleDoctor,
		DoctorID:           "d1",
		UnitID:             "u1",
		Token:              "tok-1",
		MustChangePassword: true,
	}
	require.NoError(t, s.Save(sess))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
}

func TestStore_SaveReplacesPrevious(t *testing.T) {
	s, _ := openStore(t)

	require.NoError(t, s.Save(entity.Session{
		Role:     entity.RoleDoctor,
		DoctorID: "d1",
		UnitID:   "u1",
		Token:    "tok-1",
	}))
	require.NoError(t, s.Save(entity.Session{
		Role:  entity.RoleAdmin,
		Token: "tok-2",
	}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, loaded.Role)
	assert.Equal(t, "tok-2", loaded.Token)
	assert.Empty(t, loaded.DoctorID, "ids from the previous role must not survive")
	assert.Empty(t, loaded.UnitID)
}

func TestStore_LoadEmpty(t *testing.T) {
	s, _ := openStore(t)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, entity.Session{}, loaded)
	assert.False(t, loaded.IsAuthenticated())
}

func TestStore_Clear(t *testing.T) {
	s, _ := openStore(t)

	require.NoError(t, s.Save(entity.Session{Role: entity.RoleAdmin, Token: "tok-1"}))
	require.NoError(t, s.Clear())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.False(t, loaded.IsAuthenticated())
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(entity.Session{Role: entity.RoleReceptionist, ReceptionistID: "r1", Token: "tok-1"}))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load()
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReceptionist, loaded.Role)
	assert.Equal(t, "r1", loaded.ReceptionistID)
}
