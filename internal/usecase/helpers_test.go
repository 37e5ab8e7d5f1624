package usecase

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/config"
	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/infrastructure/remote/remotetest"
	"clinic-ops-client/internal/infrastructure/session"
	"clinic-ops-client/internal/schedule"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/validator"
)

// fixture wires one usecase stack against a scriptable fake authority.
type fixture struct {
	authority *remotetest.Authority
	remote    *remote.Client
	store     *store.Store
	resolver  *schedule.Resolver
	sessions  *session.Store
	log       *logrus.Logger
	validate  *validator.CustomValidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	authority := remotetest.Start(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client := remote.NewClient(config.RemoteConfig{
		BaseURL: authority.URL(),
		Timeout: 5 * time.Second,
	}, log)

	sessions, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })

	s := store.New(entity.DefaultConstraints())
	return &fixture{
		authority: authority,
		remote:    client,
		store:     s,
		resolver:  schedule.NewResolver(s),
		sessions:  sessions,
		log:       log,
		validate:  validator.NewValidator(),
	}
}

func (f *fixture) slot(hour int) (time.Time, time.Time) {
	start := time.Date(2026, time.March, 9, hour, 0, 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}
