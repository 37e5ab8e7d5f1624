package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/store"
)

// RefreshUsecase reloads all eight collections from the authority in one
// all-or-nothing step: if any fetch fails, nothing is applied and a
// single error is surfaced.
type RefreshUsecase interface {
	Refresh(ctx context.Context) error
	Loading() bool
}

type refreshUsecase struct {
	store  *store.Store
	remote *remote.Client
	log    *logrus.Logger

	// generation orders refreshes by issuance. A response belonging to a
	// superseded generation is discarded, so rapid repeated refreshes
	// resolve to the latest-issued one no matter how completions land.
	generation atomic.Uint64
	inflight   atomic.Int32
	applyMu    sync.Mutex
}

func NewRefreshUsecase(s *store.Store, r *remote.Client, log *logrus.Logger) RefreshUsecase {
	return &refreshUsecase{
		store:  s,
		remote: r,
		log:    log,
	}
}

// Loading reports whether at least one refresh is still in flight
func (u *refreshUsecase) Loading() bool {
	return u.inflight.Load() > 0
}

func (u *refreshUsecase) Refresh(ctx context.Context) error {
	gen := u.generation.Add(1)
	u.inflight.Add(1)
	defer u.inflight.Add(-1)

	var c store.Collections
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		c.Units, err = u.remote.ListUnits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Doctors, err = u.remote.ListDoctors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Patients, err = u.remote.ListPatients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Receptionists, err = u.remote.ListReceptionists(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Specialties, err = u.remote.ListSpecialties(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Templates, err = u.remote.ListTemplates(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Visits, err = u.remote.ListVisits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		c.Appointments, err = u.remote.ListAppointments(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Refresh failed, keeping previous collections: %v", err)
		return fmt.Errorf("refresh: %w", err)
	}

	u.applyMu.Lock()
	defer u.applyMu.Unlock()
	if gen != u.generation.Load() {
		u.log.Debugf("Discarding superseded refresh (generation %d)", gen)
		return nil
	}

	u.store.ReplaceAll(c)
	u.log.Infof("Collections refreshed: units=%d, doctors=%d, patients=%d, appointments=%d",
		len(c.Units), len(c.Doctors), len(c.Patients), len(c.Appointments))
	return nil
}
