package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"clinic-ops-client/internal/converter"
	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/infrastructure/session"
	"clinic-ops-client/pkg/jwt"
	"clinic-ops-client/pkg/validator"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	Logout(ctx context.Context) error
	// Restore loads a persisted session from the durable store and
	// installs its token. Returns a zero session when none is stored.
	Restore(ctx context.Context) (entity.Session, error)
	Current() entity.Session
}

type authUsecase struct {
	sessions *session.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator

	mu      sync.RWMutex
	current entity.Session
}

func NewAuthUsecase(sessions *session.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator) AuthUsecase {
	return &authUsecase{
		sessions: sessions,
		remote:   r,
		log:      log,
		validate: validate,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (entity.Session, error) {
	req := remote.LoginRequest{Email: email, Password: password}
	if err := u.validate.Validate(&req); err != nil {
		return entity.Session{}, err
	}

	res, err := u.remote.Login(ctx, req)
	if err != nil {
		u.log.Warnf("Login failed for %s: %v", email, err)
		return entity.Session{}, fmt.Errorf("login: %w", err)
	}

	sess := converter.LoginToSession(res)
	u.remote.SetToken(sess.Token)
	u.setCurrent(sess)

	// Persistence is a convenience; the in-memory session keeps working
	// for this process even when the save fails.
	if err := u.sessions.Save(sess); err != nil {
		u.log.Warnf("Failed to persist session: %v", err)
	}

	u.log.Infof("Logged in: role=%s", sess.Role)
	return sess, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	current := u.Current()
	if !current.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	req := remote.ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	if err := u.validate.Validate(&req); err != nil {
		return err
	}

	if err := u.remote.ChangePassword(ctx, req); err != nil {
		u.log.Warnf("Password change rejected: %v", err)
		return fmt.Errorf("change password: %w", err)
	}

	current.MustChangePassword = false
	u.setCurrent(current)
	if err := u.sessions.Save(current); err != nil {
		u.log.Warnf("Failed to persist session after password change: %v", err)
	}
	return nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	u.remote.ClearToken()
	u.setCurrent(entity.Session{})

	if err := u.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (u *authUsecase) Restore(ctx context.Context) (entity.Session, error) {
	sess, err := u.sessions.Load()
	if err != nil {
		return entity.Session{}, fmt.Errorf("restore session: %w", err)
	}
	if !sess.IsAuthenticated() {
		return entity.Session{}, nil
	}

	// A 401 on the next request is the authoritative signal, but an
	// already-expired token is worth a warning up front.
	if info, err := jwt.Inspect(sess.Token); err == nil && info.Expired(time.Now()) {
		u.log.Warnf("Stored token expired at %s; requests will be rejected until re-login", info.ExpiresAt)
	}

	u.remote.SetToken(sess.Token)
	u.setCurrent(sess)
	u.log.Infof("Session restored: role=%s", sess.Role)
	return sess, nil
}

func (u *authUsecase) Current() entity.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

func (u *authUsecase) setCurrent(sess entity.Session) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.current = sess
}
